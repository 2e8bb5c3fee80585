// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/vkabi"
)

// GfxCreateDevice implements vkCreateDevice. This core synthesizes a single
// queue family (objects.Gpu's doc comment explains why) and ignores
// QueueFamilyIndex values above 0, since the HAL never reports a second one
// to request in the first place.
func GfxCreateDevice(pd vkabi.PhysicalDevice, info *vkabi.DeviceCreateInfo) (vkabi.Device, vkabi.Result) {
	a := handle.DerefDispatchable[objects.Adapter](uintptr(pd))

	features := featuresFromVulkan(info.EnabledFeatures)
	opened, err := a.HAL.Open(features, gputypes.DefaultLimits())
	if err != nil {
		return 0, resultFromHALError(err)
	}

	h := handle.MakeDispatchable(objects.Gpu{HAL: opened.Device})
	gpu := handle.DerefDispatchable[objects.Gpu](h)
	for _, qci := range info.QueueCreateInfos {
		if qci.QueueFamilyIndex != objects.QueueFamilyIndex {
			fatalf("vkCreateDevice", "queue family %d does not exist", qci.QueueFamilyIndex)
		}
		for range qci.QueuePriorities {
			gpu.Queues = append(gpu.Queues, handle.MakeDispatchable(objects.Queue{HAL: opened.Queue, Gpu: gpu}))
		}
	}

	return vkabi.Device(h), vkabi.Success
}

// featuresFromVulkan maps the handful of VkPhysicalDeviceFeatures bits this
// core round-trips (GfxGetPhysicalDeviceFeatures's doc comment names the
// same subset) back onto gputypes.Features. A nil pEnabledFeatures requests
// nothing.
func featuresFromVulkan(f *vkabi.PhysicalDeviceFeatures) gputypes.Features {
	if f == nil {
		return 0
	}
	var out gputypes.Features
	if f.MultiDrawIndirect {
		out |= gputypes.FeatureIndirectFirstInstance
	}
	if f.ShaderFloat64 {
		out |= gputypes.FeatureShaderFloat64
	}
	return out
}

// GfxDestroyDevice implements vkDestroyDevice.
func GfxDestroyDevice(dev vkabi.Device) {
	if handle.IsNullDispatchable(uintptr(dev)) {
		return
	}
	gpu := handle.ReleaseDispatchable[objects.Gpu](uintptr(dev))
	for _, q := range gpu.Queues {
		handle.ReleaseDispatchable[objects.Queue](q)
	}
	gpu.HAL.Destroy()
}

// GfxGetDeviceQueue implements vkGetDeviceQueue.
func GfxGetDeviceQueue(dev vkabi.Device, queueFamilyIndex, queueIndex uint32) vkabi.Queue {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	if queueFamilyIndex != objects.QueueFamilyIndex {
		fatalf("vkGetDeviceQueue", "queue family %d does not exist", queueFamilyIndex)
	}
	if int(queueIndex) >= len(gpu.Queues) {
		fatalf("vkGetDeviceQueue", "queue index %d was never requested at device creation", queueIndex)
	}
	return vkabi.Queue(gpu.Queue(queueIndex))
}

// GfxDeviceWaitIdle implements vkDeviceWaitIdle. The HAL has no global
// device-idle primitive; this core approximates it with a fence the device
// itself owns, created lazily and reused across calls.
func GfxDeviceWaitIdle(dev vkabi.Device) vkabi.Result {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	fence, err := gpu.HAL.CreateFence()
	if err != nil {
		return resultFromHALError(err)
	}
	defer gpu.HAL.DestroyFence(fence)

	ok, err := gpu.HAL.Wait(fence, 0, time.Duration(^uint64(0)>>1))
	if err != nil {
		return resultFromHALError(err)
	}
	if !ok {
		return vkabi.Timeout
	}
	return vkabi.Success
}

// GfxAllocateMemory implements vkAllocateMemory. The HAL folds allocation
// into resource creation (Device.CreateBuffer/CreateTexture take a
// size/usage descriptor and hand back an already-backed resource), so this
// core's VkDeviceMemory is a host-side byte shadow (internal/objects.
// DeviceMemory's doc comment explains the mapping/flush model) rather than
// a real GPU allocation; vkBindBufferMemory/vkBindImageMemory are what
// actually create the HAL resource.
func GfxAllocateMemory(dev vkabi.Device, info *vkabi.MemoryAllocateInfo) (vkabi.DeviceMemory, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	mem := objects.DeviceMemory{
		Gpu:       gpu,
		Size:      info.AllocationSize,
		TypeIndex: info.MemoryTypeIndex,
		Data:      make([]byte, info.AllocationSize),
	}
	h := handle.MakeNonDispatchable(mem)
	return vkabi.DeviceMemory(h), vkabi.Success
}

// GfxFreeMemory implements vkFreeMemory.
func GfxFreeMemory(mem vkabi.DeviceMemory) {
	if handle.IsNullNonDispatchable(uintptr(mem)) {
		return
	}
	handle.ReleaseNonDispatchable[objects.DeviceMemory](uintptr(mem))
}

// GfxMapMemory implements vkMapMemory. Mapping the same VkDeviceMemory
// twice without an intervening unmap is a precondition violation per the
// Vulkan spec this core mirrors.
func GfxMapMemory(mem vkabi.DeviceMemory, offset, size uint64) ([]byte, vkabi.Result) {
	m := handle.DerefNonDispatchable[objects.DeviceMemory](uintptr(mem))
	if m.Mapped {
		fatalf("vkMapMemory", "memory object is already mapped")
	}
	if size == vkabi.WholeSize {
		size = m.Size - offset
	}
	if offset+size > m.Size {
		fatalf("vkMapMemory", "range [%d, %d) exceeds allocation size %d", offset, offset+size, m.Size)
	}
	m.Mapped = true
	return m.Data[offset : offset+size], vkabi.Success
}

// GfxUnmapMemory implements vkUnmapMemory: releases the mapping and flushes
// the host shadow to every HAL buffer bound into this memory, since the HAL
// has no shared-memory view of its own for the core to rely on.
func GfxUnmapMemory(dev vkabi.Device, mem vkabi.DeviceMemory) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	m := handle.DerefNonDispatchable[objects.DeviceMemory](uintptr(mem))
	if !m.Mapped {
		return
	}
	m.Mapped = false
	flushMemoryBindings(gpu, m)
}

func flushMemoryBindings(gpu *objects.Gpu, m *objects.DeviceMemory) {
	if len(gpu.Queues) == 0 {
		return
	}
	q := handle.DerefDispatchable[objects.Queue](gpu.Queues[0])
	for _, b := range m.Bindings {
		end := b.Offset + b.Buffer.Size
		if end > uint64(len(m.Data)) {
			end = uint64(len(m.Data))
		}
		q.HAL.WriteBuffer(b.Buffer.HAL, 0, m.Data[b.Offset:end])
	}
}

// GfxFlushMappedMemoryRanges implements vkFlushMappedMemoryRanges: pushes
// the current host shadow to bound buffers without releasing the mapping,
// for applications that map once and flush repeatedly.
func GfxFlushMappedMemoryRanges(dev vkabi.Device, mems []vkabi.DeviceMemory) vkabi.Result {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	for _, mem := range mems {
		m := handle.DerefNonDispatchable[objects.DeviceMemory](uintptr(mem))
		flushMemoryBindings(gpu, m)
	}
	return vkabi.Success
}
