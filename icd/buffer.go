// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/internal/convert"
	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/vkabi"
)

// GfxCreateBuffer implements vkCreateBuffer, producing an Unbound buffer per
// spec.md §3.2; the HAL resource is not created until vkBindBufferMemory.
func GfxCreateBuffer(info *vkabi.BufferCreateInfo) (vkabi.Buffer, vkabi.Result) {
	h := handle.MakeNonDispatchable(*objects.NewBuffer(info))
	return vkabi.Buffer(h), vkabi.Success
}

// GfxDestroyBuffer implements vkDestroyBuffer.
func GfxDestroyBuffer(gpu vkabi.Device, buf vkabi.Buffer) {
	if handle.IsNullNonDispatchable(uintptr(buf)) {
		return
	}
	b := handle.ReleaseNonDispatchable[objects.Buffer](uintptr(buf))
	if b.IsBound() {
		handle.DerefDispatchable[objects.Gpu](uintptr(gpu)).HAL.DestroyBuffer(b.HAL)
	}
}

// GfxGetBufferMemoryRequirements implements vkGetBufferMemoryRequirements.
// Valid on an Unbound buffer per spec.md §3.2. This driver's synthetic
// VkDeviceMemory (internal/objects.DeviceMemory) has no type restrictions of
// its own, so every memory type index is reported compatible.
func GfxGetBufferMemoryRequirements(buf vkabi.Buffer) vkabi.MemoryRequirements {
	b := handle.DerefNonDispatchable[objects.Buffer](uintptr(buf))
	return vkabi.MemoryRequirements{
		Size:           b.Size,
		Alignment:      256,
		MemoryTypeBits: 0xFFFFFFFF,
	}
}

// GfxBindBufferMemory implements vkBindBufferMemory: combines the buffer's
// spec with the device and creates the real HAL resource, per spec.md §3.2's
// Unbound -> Bound transition. A second bind attempt is fatal
// (internal/objects.Buffer.Bind enforces it).
func GfxBindBufferMemory(dev vkabi.Device, buf vkabi.Buffer, mem vkabi.DeviceMemory, offset uint64) vkabi.Result {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	b := handle.DerefNonDispatchable[objects.Buffer](uintptr(buf))
	m := handle.DerefNonDispatchable[objects.DeviceMemory](uintptr(mem))

	halBuf, err := gpu.HAL.CreateBuffer(&hal.BufferDescriptor{
		Size:  b.Size,
		Usage: convert.BufferUsageFromVulkan(b.Usage),
	})
	if err != nil {
		return resultFromHALError(err)
	}
	b.Bind(halBuf)
	m.Bindings = append(m.Bindings, objects.MemoryBinding{Buffer: b, Offset: offset})
	return vkabi.Success
}

// GfxCreateBufferView implements vkCreateBufferView, the texel-buffer-view
// supplemented feature SPEC_FULL.md names: a thin non-dispatchable wrapper,
// since the HAL has no separate buffer-view resource of its own (texel
// buffer reads/writes are described at bind-group-entry time instead).
func GfxCreateBufferView(info *vkabi.BufferViewCreateInfo) (vkabi.BufferView, vkabi.Result) {
	b := handle.DerefNonDispatchable[objects.Buffer](uintptr(info.Buffer))
	if !b.IsBound() {
		fatalf("vkCreateBufferView", "buffer view created over an unbound buffer")
	}
	view := objects.BufferView{Buffer: b, Format: info.Format, Offset: info.Offset, Range: info.Range}
	h := handle.MakeNonDispatchable(view)
	return vkabi.BufferView(h), vkabi.Success
}

// GfxDestroyBufferView implements vkDestroyBufferView.
func GfxDestroyBufferView(view vkabi.BufferView) {
	if handle.IsNullNonDispatchable(uintptr(view)) {
		return
	}
	handle.ReleaseNonDispatchable[objects.BufferView](uintptr(view))
}
