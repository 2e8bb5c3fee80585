// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkabi

// CommandPoolCreateInfo mirrors VkCommandPoolCreateInfo.
type CommandPoolCreateInfo struct {
	SType            StructureType
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

// CommandBufferAllocateInfo mirrors VkCommandBufferAllocateInfo.
type CommandBufferAllocateInfo struct {
	SType              StructureType
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

// CommandBufferInheritanceInfo mirrors VkCommandBufferInheritanceInfo.
type CommandBufferInheritanceInfo struct {
	SType      StructureType
	RenderPass RenderPass
	Subpass    uint32
	Framebuffer Framebuffer
}

// CommandBufferBeginInfo mirrors VkCommandBufferBeginInfo.
type CommandBufferBeginInfo struct {
	SType           StructureType
	Flags           CommandBufferUsageFlags
	InheritanceInfo *CommandBufferInheritanceInfo
}

// SubmitInfo mirrors VkSubmitInfo.
type SubmitInfo struct {
	SType                StructureType
	WaitSemaphores       []Semaphore
	WaitDstStageMask     []PipelineStageFlags
	CommandBuffers       []CommandBuffer
	SignalSemaphores     []Semaphore
}

// FenceCreateInfo mirrors VkFenceCreateInfo.
type FenceCreateInfo struct {
	SType StructureType
	Flags FenceCreateFlags
}

// SemaphoreCreateInfo mirrors VkSemaphoreCreateInfo.
type SemaphoreCreateInfo struct {
	SType StructureType
	Flags Flags
}

// SwapchainCreateInfoKHR mirrors VkSwapchainCreateInfoKHR.
type SwapchainCreateInfoKHR struct {
	SType                 StructureType
	Flags                 Flags
	Surface               SurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       ColorSpaceKHR
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            ImageUsageFlags
	ImageSharingMode      SharingMode
	QueueFamilyIndices    []uint32
	PreTransform          SurfaceTransformFlagsKHR
	CompositeAlpha        CompositeAlphaFlagsKHR
	PresentMode           PresentModeKHR
	Clipped               bool
	OldSwapchain          SwapchainKHR
}

// PresentInfoKHR mirrors VkPresentInfoKHR.
type PresentInfoKHR struct {
	SType          StructureType
	WaitSemaphores []Semaphore
	Swapchains     []SwapchainKHR
	ImageIndices   []uint32
	Results        []Result
}

// SurfaceCapabilitiesKHR mirrors VkSurfaceCapabilitiesKHR.
type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlagsKHR
	CurrentTransform        SurfaceTransformFlagsKHR
	SupportedCompositeAlpha CompositeAlphaFlagsKHR
	SupportedUsageFlags     ImageUsageFlags
}

// SurfaceFormatKHR mirrors VkSurfaceFormatKHR.
type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace ColorSpaceKHR
}
