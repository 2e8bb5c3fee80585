// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/internal/passasm"
	"github.com/gogpu/vkicd/vkabi"
)

// pipelineResolver builds the passasm.Resolver a pipeline batch needs out of
// this package's own handle tables, keeping internal/passasm free of any
// dependency on internal/handle.
func pipelineResolver() passasm.Resolver {
	return passasm.Resolver{
		ShaderModule: func(m vkabi.ShaderModule) hal.ShaderModule {
			return *handle.DerefNonDispatchable[hal.ShaderModule](uintptr(m))
		},
		Layout: func(l vkabi.PipelineLayout) hal.PipelineLayout {
			return handle.DerefNonDispatchable[objects.PipelineLayout](uintptr(l)).HAL
		},
		RenderPassTargets: func(pass vkabi.RenderPass, subpass uint32) ([]gputypes.TextureFormat, *gputypes.TextureFormat) {
			p := handle.DerefNonDispatchable[objects.RenderPass](uintptr(pass))
			return passasm.RenderPassTargetFormats(p.Descriptor, subpass)
		},
	}
}

// resolveParent turns a passasm.Parent plus the batch's own in-progress
// result handles into the base pipeline handle a derivative pipeline's
// bookkeeping might eventually need. The HAL has no pipeline-derivative
// concept (see DESIGN.md), so this core only validates the reference
// resolves to a real pipeline and otherwise ignores it.
func resolveParent(parent passasm.Parent, batch []vkabi.Pipeline) {
	switch parent.Kind {
	case passasm.ParentHandle:
		if handle.IsNullNonDispatchable(uintptr(parent.Handle)) {
			fatalf("vkCreateGraphicsPipelines", "base pipeline handle is null")
		}
	case passasm.ParentIndex:
		if int(parent.Index) >= len(batch) || batch[parent.Index] == 0 {
			fatalf("vkCreateGraphicsPipelines", "base pipeline index does not name an already-created sibling")
		}
	}
}

// GfxCreateGraphicsPipelines implements vkCreateGraphicsPipelines. Per
// spec.md §4.3/§8 scenario 6, a per-entry assembly failure localizes to a
// null handle for that slot; it never aborts the batch's sibling entries.
// The overall call still reports a single VkResult, downgraded to
// VK_ERROR_INITIALIZATION_FAILED when any slot failed, mirroring
// vkCreateGraphicsPipelines' own contract that a batch with partial
// failures returns VK_ERROR_* but still populates the pipelines that did
// succeed.
func GfxCreateGraphicsPipelines(dev vkabi.Device, infos []vkabi.GraphicsPipelineCreateInfo) ([]vkabi.Pipeline, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	slots := passasm.AssembleGraphicsPipelines(infos, pipelineResolver())

	out := make([]vkabi.Pipeline, len(slots))
	result := vkabi.Success
	for i, slot := range slots {
		if slot.Err != nil {
			hal.Logger().Error("vkCreateGraphicsPipelines: pipeline assembly failed", "index", i, "err", slot.Err)
			out[i] = 0
			result = vkabi.ErrorInitializationFailed
			continue
		}
		resolveParent(slot.Parent, out)

		p, err := gpu.HAL.CreateRenderPipeline(slot.Descriptor)
		if err != nil {
			hal.Logger().Error("vkCreateGraphicsPipelines: HAL creation failed", "index", i, "err", err)
			out[i] = 0
			result = resultFromHALError(err)
			continue
		}

		h := handle.MakeNonDispatchable(objects.NewGraphicsPipeline(p))
		out[i] = vkabi.Pipeline(h)
	}
	return out, result
}

// GfxCreateComputePipelines implements vkCreateComputePipelines.
func GfxCreateComputePipelines(dev vkabi.Device, infos []vkabi.ComputePipelineCreateInfo) ([]vkabi.Pipeline, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	slots := passasm.AssembleComputePipelines(infos, pipelineResolver())

	out := make([]vkabi.Pipeline, len(slots))
	result := vkabi.Success
	for i, slot := range slots {
		if slot.Err != nil {
			hal.Logger().Error("vkCreateComputePipelines: pipeline assembly failed", "index", i, "err", slot.Err)
			out[i] = 0
			result = vkabi.ErrorInitializationFailed
			continue
		}
		resolveParent(slot.Parent, out)

		p, err := gpu.HAL.CreateComputePipeline(slot.Descriptor)
		if err != nil {
			hal.Logger().Error("vkCreateComputePipelines: HAL creation failed", "index", i, "err", err)
			out[i] = 0
			result = resultFromHALError(err)
			continue
		}

		h := handle.MakeNonDispatchable(objects.NewComputePipeline(p))
		out[i] = vkabi.Pipeline(h)
	}
	return out, result
}

// GfxDestroyPipeline implements vkDestroyPipeline.
func GfxDestroyPipeline(dev vkabi.Device, p vkabi.Pipeline) {
	if handle.IsNullNonDispatchable(uintptr(p)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	pipeline := handle.ReleaseNonDispatchable[*objects.Pipeline](uintptr(p))
	pipeline.Destroy(gpu.HAL)
}
