// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/internal/passasm"
	"github.com/gogpu/vkicd/vkabi"
)

// GfxCreateRenderPass implements vkCreateRenderPass. internal/passasm does
// the VkRenderPassCreateInfo -> hal.RenderPassCreateDescriptor translation
// and panics on an unsupported construct, per spec.md §7 fatal-precondition
// handling; this entry point only owns the handle bookkeeping around it.
func GfxCreateRenderPass(dev vkabi.Device, info *vkabi.RenderPassCreateInfo) (vkabi.RenderPass, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	desc := passasm.AssembleRenderPass(info)

	halPass, err := gpu.HAL.CreateRenderPass(desc)
	if err != nil {
		return 0, resultFromHALError(err)
	}

	h := handle.MakeNonDispatchable(objects.RenderPass{HAL: halPass, Descriptor: desc})
	return vkabi.RenderPass(h), vkabi.Success
}

// GfxDestroyRenderPass implements vkDestroyRenderPass.
func GfxDestroyRenderPass(dev vkabi.Device, pass vkabi.RenderPass) {
	if handle.IsNullNonDispatchable(uintptr(pass)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	p := handle.ReleaseNonDispatchable[objects.RenderPass](uintptr(pass))
	gpu.HAL.DestroyRenderPass(p.HAL)
}

// GfxCreateFramebuffer implements vkCreateFramebuffer.
func GfxCreateFramebuffer(dev vkabi.Device, info *vkabi.FramebufferCreateInfo) (vkabi.Framebuffer, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	renderPass := handle.DerefNonDispatchable[objects.RenderPass](uintptr(info.RenderPass))

	views := make([]*objects.ImageView, len(info.Attachments))
	halViews := make([]hal.TextureView, len(info.Attachments))
	for i, a := range info.Attachments {
		views[i] = handle.DerefNonDispatchable[objects.ImageView](uintptr(a))
		halViews[i] = views[i].HAL
	}

	halFB, err := gpu.HAL.CreateFramebuffer(&hal.FramebufferDescriptor{
		RenderPass:  renderPass.HAL,
		Attachments: halViews,
		Width:       info.Width,
		Height:      info.Height,
		Layers:      info.Layers,
	})
	if err != nil {
		return 0, resultFromHALError(err)
	}

	h := handle.MakeNonDispatchable(objects.Framebuffer{
		HAL:         halFB,
		RenderPass:  renderPass,
		Attachments: views,
		Width:       info.Width,
		Height:      info.Height,
		Layers:      info.Layers,
	})
	return vkabi.Framebuffer(h), vkabi.Success
}

// GfxDestroyFramebuffer implements vkDestroyFramebuffer.
func GfxDestroyFramebuffer(dev vkabi.Device, fb vkabi.Framebuffer) {
	if handle.IsNullNonDispatchable(uintptr(fb)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	f := handle.ReleaseNonDispatchable[objects.Framebuffer](uintptr(fb))
	gpu.HAL.DestroyFramebuffer(f.HAL)
}
