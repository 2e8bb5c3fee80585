// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkabi

// Flags is the common 32-bit bitmask underlying every Vk*Flags typedef.
type Flags uint32

// ImageUsageFlags mirrors VkImageUsageFlags.
type ImageUsageFlags Flags

const (
	ImageUsageTransferSrc ImageUsageFlags = 1 << iota
	ImageUsageTransferDst
	ImageUsageSampled
	ImageUsageStorage
	ImageUsageColorAttachment
	ImageUsageDepthStencilAttachment
	ImageUsageTransientAttachment
	ImageUsageInputAttachment
)

// ImageAspectFlags mirrors VkImageAspectFlags.
type ImageAspectFlags Flags

const (
	ImageAspectColor ImageAspectFlags = 1 << iota
	ImageAspectDepth
	ImageAspectStencil
	ImageAspectMetadata
)

// ImageCreateFlags mirrors VkImageCreateFlags.
type ImageCreateFlags Flags

const (
	ImageCreateSparseBinding ImageCreateFlags = 1 << iota
	ImageCreateSparseResidency
	ImageCreateSparseAliased
	ImageCreateMutableFormat
	ImageCreateCubeCompatible
)

// SampleCountFlags mirrors VkSampleCountFlags.
type SampleCountFlags Flags

const (
	SampleCount1 SampleCountFlags = 1 << iota
	SampleCount2
	SampleCount4
	SampleCount8
	SampleCount16
	SampleCount32
	SampleCount64
)

// MemoryPropertyFlags mirrors VkMemoryPropertyFlags.
type MemoryPropertyFlags Flags

const (
	MemoryPropertyDeviceLocal MemoryPropertyFlags = 1 << iota
	MemoryPropertyHostVisible
	MemoryPropertyHostCoherent
	MemoryPropertyHostCached
	MemoryPropertyLazilyAllocated
)

// MemoryHeapFlags mirrors VkMemoryHeapFlags.
type MemoryHeapFlags Flags

const (
	MemoryHeapDeviceLocal MemoryHeapFlags = 1 << iota
)

// PipelineStageFlags mirrors VkPipelineStageFlags.
type PipelineStageFlags Flags

const (
	PipelineStageTopOfPipe PipelineStageFlags = 1 << iota
	PipelineStageDrawIndirect
	PipelineStageVertexInput
	PipelineStageVertexShader
	PipelineStageTessellationControlShader
	PipelineStageTessellationEvaluationShader
	PipelineStageGeometryShader
	PipelineStageFragmentShader
	PipelineStageEarlyFragmentTests
	PipelineStageLateFragmentTests
	PipelineStageColorAttachmentOutput
	PipelineStageComputeShader
	PipelineStageTransfer
	PipelineStageBottomOfPipe
	PipelineStageHost
	PipelineStageAllGraphics
	PipelineStageAllCommands
)

// AccessFlags mirrors VkAccessFlags.
type AccessFlags Flags

const (
	AccessIndirectCommandRead AccessFlags = 1 << iota
	AccessIndexRead
	AccessVertexAttributeRead
	AccessUniformRead
	AccessInputAttachmentRead
	AccessShaderRead
	AccessShaderWrite
	AccessColorAttachmentRead
	AccessColorAttachmentWrite
	AccessDepthStencilAttachmentRead
	AccessDepthStencilAttachmentWrite
	AccessTransferRead
	AccessTransferWrite
	AccessHostRead
	AccessHostWrite
	AccessMemoryRead
	AccessMemoryWrite
)

// ShaderStageFlags mirrors VkShaderStageFlags.
type ShaderStageFlags Flags

const (
	ShaderStageVertex ShaderStageFlags = 1 << iota
	ShaderStageTessellationControl
	ShaderStageTessellationEvaluation
	ShaderStageGeometry
	ShaderStageFragment
	ShaderStageCompute
	ShaderStageAllGraphics ShaderStageFlags = 0x1F
	ShaderStageAll         ShaderStageFlags = 0x7FFFFFFF
)

// CullModeFlags mirrors VkCullModeFlags.
type CullModeFlags Flags

const (
	CullModeNone         CullModeFlags = 0
	CullModeFront        CullModeFlags = 1 << 0
	CullModeBack         CullModeFlags = 1 << 1
	CullModeFrontAndBack CullModeFlags = CullModeFront | CullModeBack
)

// ColorComponentFlags mirrors VkColorComponentFlags.
type ColorComponentFlags Flags

const (
	ColorComponentR ColorComponentFlags = 1 << iota
	ColorComponentG
	ColorComponentB
	ColorComponentA
)

// BufferUsageFlags mirrors VkBufferUsageFlags.
type BufferUsageFlags Flags

const (
	BufferUsageTransferSrc BufferUsageFlags = 1 << iota
	BufferUsageTransferDst
	BufferUsageUniformTexelBuffer
	BufferUsageStorageTexelBuffer
	BufferUsageUniformBuffer
	BufferUsageStorageBuffer
	BufferUsageIndexBuffer
	BufferUsageVertexBuffer
	BufferUsageIndirectBuffer
)

// QueueFlags mirrors VkQueueFlags.
type QueueFlags Flags

const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// CommandPoolCreateFlags mirrors VkCommandPoolCreateFlags.
type CommandPoolCreateFlags Flags

const (
	CommandPoolCreateTransient          CommandPoolCreateFlags = 1 << 0
	CommandPoolCreateResetCommandBuffer CommandPoolCreateFlags = 1 << 1
)

// FenceCreateFlags mirrors VkFenceCreateFlags.
type FenceCreateFlags Flags

const (
	FenceCreateSignaled FenceCreateFlags = 1 << 0
)

// CommandBufferUsageFlags mirrors VkCommandBufferUsageFlags.
type CommandBufferUsageFlags Flags

const (
	CommandBufferUsageOneTimeSubmit      CommandBufferUsageFlags = 1 << 0
	CommandBufferUsageRenderPassContinue CommandBufferUsageFlags = 1 << 1
	CommandBufferUsageSimultaneousUse    CommandBufferUsageFlags = 1 << 2
)

// PipelineCreateFlags mirrors VkPipelineCreateFlags.
type PipelineCreateFlags Flags

const (
	PipelineCreateDisableOptimization PipelineCreateFlags = 1 << 0
	PipelineCreateAllowDerivatives    PipelineCreateFlags = 1 << 1
	PipelineCreateDerivative          PipelineCreateFlags = 1 << 2
)

// DescriptorPoolCreateFlags mirrors VkDescriptorPoolCreateFlags.
type DescriptorPoolCreateFlags Flags

const (
	DescriptorPoolCreateFreeDescriptorSet DescriptorPoolCreateFlags = 1 << 0
)

// CompositeAlphaFlagsKHR mirrors VkCompositeAlphaFlagsKHR.
type CompositeAlphaFlagsKHR Flags

const (
	CompositeAlphaOpaqueKHR CompositeAlphaFlagsKHR = 1 << iota
	CompositeAlphaPreMultipliedKHR
	CompositeAlphaPostMultipliedKHR
	CompositeAlphaInheritKHR
)

// SurfaceTransformFlagsKHR mirrors VkSurfaceTransformFlagsKHR.
type SurfaceTransformFlagsKHR Flags

const (
	SurfaceTransformIdentityKHR SurfaceTransformFlagsKHR = 1 << iota
)
