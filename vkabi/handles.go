// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkabi

// Handle types, declared the same way cmd/vk-gen emits them for the
// loader-facing bindings in hal/vulkan/vk: a flat uintptr per handle.
// On this side of the ABI the uintptr is produced by internal/handle -
// dispatchable handles carry the ICD magic word at offset 0, non-dispatchable
// handles are a bare pointer - and callers never dereference it themselves.

type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr
)

type (
	DeviceMemory        uintptr
	Buffer              uintptr
	BufferView          uintptr
	Image               uintptr
	ImageView           uintptr
	ShaderModule        uintptr
	PipelineCache       uintptr
	PipelineLayout      uintptr
	RenderPass          uintptr
	Pipeline            uintptr
	DescriptorSetLayout uintptr
	Sampler             uintptr
	DescriptorPool      uintptr
	DescriptorSet       uintptr
	Framebuffer         uintptr
	CommandPool         uintptr
	Fence               uintptr
	Semaphore           uintptr
	Event               uintptr
	QueryPool           uintptr
	SurfaceKHR          uintptr
	SwapchainKHR        uintptr
)

// NullHandle is the zero value shared by every handle type above.
const NullHandle = 0
