// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkabi

// Extent2D mirrors VkExtent2D.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// Extent3D mirrors VkExtent3D.
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// Offset2D mirrors VkOffset2D.
type Offset2D struct {
	X int32
	Y int32
}

// Offset3D mirrors VkOffset3D.
type Offset3D struct {
	X int32
	Y int32
	Z int32
}

// Rect2D mirrors VkRect2D.
type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

// Viewport mirrors VkViewport.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

// ComponentMapping mirrors VkComponentMapping.
type ComponentMapping struct {
	R, G, B, A ComponentSwizzle
}

// ImageSubresourceRange mirrors VkImageSubresourceRange.
type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ImageSubresourceLayers mirrors VkImageSubresourceLayers.
type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ClearColorValue mirrors the VkClearColorValue union: same four-word
// layout regardless of which arm (float32/int32/uint32) is active.
type ClearColorValue struct {
	Float32 [4]float32
}

// ClearDepthStencilValue mirrors VkClearDepthStencilValue.
type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

// ClearValue mirrors the VkClearValue union; Color and DepthStencil alias
// the same storage in C, but recording code here only ever reads the arm
// written by the caller so a plain struct with both fields is sufficient.
type ClearValue struct {
	Color        ClearColorValue
	DepthStencil ClearDepthStencilValue
}

// ApplicationInfo mirrors VkApplicationInfo.
type ApplicationInfo struct {
	SType              StructureType
	PApplicationName   string
	ApplicationVersion uint32
	PEngineName        string
	EngineVersion      uint32
	ApiVersion         uint32
}

// InstanceCreateInfo mirrors VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	SType                   StructureType
	PApplicationInfo        *ApplicationInfo
	EnabledLayerNames       []string
	EnabledExtensionNames   []string
}

// PhysicalDeviceFeatures mirrors VkPhysicalDeviceFeatures (the fields the
// conversion layer and HAL contract actually consult; the remainder of the
// 55-field Vulkan struct is omitted since the HAL never populates it).
type PhysicalDeviceFeatures struct {
	RobustBufferAccess       bool
	FullDrawIndexUint32      bool
	ImageCubeArray           bool
	IndependentBlend         bool
	GeometryShader           bool
	TessellationShader       bool
	SampleRateShading        bool
	DualSrcBlend             bool
	MultiDrawIndirect        bool
	DepthClamp               bool
	DepthBiasClamp           bool
	FillModeNonSolid         bool
	WideLines                bool
	LargePoints              bool
	MultiViewport            bool
	SamplerAnisotropy        bool
	TextureCompressionBC     bool
	OcclusionQueryPrecise    bool
	PipelineStatisticsQuery  bool
	ShaderFloat64            bool
	ShaderInt64              bool
	ShaderInt16              bool
}

// PhysicalDeviceSparseProperties mirrors VkPhysicalDeviceSparseProperties.
// Per spec.md §9 this is left zero-initialized: sparse residency is a
// documented Non-goal.
type PhysicalDeviceSparseProperties struct {
	ResidencyStandard2DBlockShape   bool
	ResidencyStandard2DMultisampleBlockShape bool
	ResidencyStandard3DBlockShape   bool
	ResidencyAlignedMipSize         bool
	ResidencyNonResidentStrict      bool
}

// PhysicalDeviceLimits mirrors the subset of VkPhysicalDeviceLimits the
// conversion layer populates from the HAL's types.Limits.
type PhysicalDeviceLimits struct {
	MaxImageDimension1D                      uint32
	MaxImageDimension2D                      uint32
	MaxImageDimension3D                      uint32
	MaxImageArrayLayers                      uint32
	MaxTexelBufferElements                   uint32
	MaxUniformBufferRange                    uint32
	MaxStorageBufferRange                    uint32
	MaxPushConstantsSize                     uint32
	MaxBoundDescriptorSets                   uint32
	MaxPerStageDescriptorSamplers            uint32
	MaxPerStageDescriptorUniformBuffers      uint32
	MaxPerStageDescriptorStorageBuffers       uint32
	MaxPerStageDescriptorSampledImages       uint32
	MaxPerStageDescriptorStorageImages       uint32
	MaxVertexInputAttributes                 uint32
	MaxVertexInputBindings                   uint32
	MaxVertexInputAttributeOffset            uint32
	MaxVertexInputBindingStride              uint32
	MaxViewports                             uint32
	MaxViewportDimensions                    [2]uint32
	MinMemoryMapAlignment                    uint64
	MinUniformBufferOffsetAlignment          uint64
	MinStorageBufferOffsetAlignment          uint64
	MaxColorAttachments                      uint32
	MaxComputeWorkGroupCount                 [3]uint32
	MaxComputeWorkGroupInvocations           uint32
	MaxComputeWorkGroupSize                  [3]uint32
	FramebufferColorSampleCounts             SampleCountFlags
	FramebufferDepthSampleCounts             SampleCountFlags
}

// PhysicalDeviceProperties mirrors VkPhysicalDeviceProperties.
type PhysicalDeviceProperties struct {
	ApiVersion       uint32
	DriverVersion    uint32
	VendorID         uint32
	DeviceID         uint32
	DeviceType       PhysicalDeviceType
	DeviceName       [MaxPhysicalDeviceNameSize]byte
	PipelineCacheUUID [UUIDSize]byte
	Limits           PhysicalDeviceLimits
	SparseProperties PhysicalDeviceSparseProperties
}

// MemoryType mirrors VkMemoryType.
type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

// MemoryHeap mirrors VkMemoryHeap.
type MemoryHeap struct {
	Size  uint64
	Flags MemoryHeapFlags
}

// PhysicalDeviceMemoryProperties mirrors VkPhysicalDeviceMemoryProperties.
type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [MaxMemoryTypes]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [MaxMemoryHeaps]MemoryHeap
}

// QueueFamilyProperties mirrors VkQueueFamilyProperties.
type QueueFamilyProperties struct {
	QueueFlags                 QueueFlags
	QueueCount                 uint32
	TimestampValidBits         uint32
	MinImageTransferGranularity Extent3D
}

// DeviceQueueCreateInfo mirrors VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	SType            StructureType
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

// DeviceCreateInfo mirrors VkDeviceCreateInfo.
type DeviceCreateInfo struct {
	SType                 StructureType
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledExtensionNames []string
	EnabledFeatures       *PhysicalDeviceFeatures
}

// ExtensionProperties mirrors VkExtensionProperties.
type ExtensionProperties struct {
	ExtensionName [MaxExtensionNameSize]byte
	SpecVersion   uint32
}

// LayerProperties mirrors VkLayerProperties.
type LayerProperties struct {
	LayerName             [MaxExtensionNameSize]byte
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           [MaxDescriptionSize]byte
}

// MemoryAllocateInfo mirrors VkMemoryAllocateInfo.
type MemoryAllocateInfo struct {
	SType           StructureType
	AllocationSize  uint64
	MemoryTypeIndex uint32
}

// MemoryRequirements mirrors VkMemoryRequirements.
type MemoryRequirements struct {
	Size           uint64
	Alignment      uint64
	MemoryTypeBits uint32
}

// FormatProperties mirrors VkFormatProperties.
type FormatProperties struct {
	LinearTilingFeatures  FormatFeatureFlags
	OptimalTilingFeatures FormatFeatureFlags
	BufferFeatures        FormatFeatureFlags
}

// FormatFeatureFlags mirrors VkFormatFeatureFlags.
type FormatFeatureFlags Flags

const (
	FormatFeatureSampledImage FormatFeatureFlags = 1 << iota
	FormatFeatureStorageImage
	FormatFeatureStorageImageAtomic
	FormatFeatureUniformTexelBuffer
	FormatFeatureStorageTexelBuffer
	FormatFeatureStorageTexelBufferAtomic
	FormatFeatureVertexBuffer
	FormatFeatureColorAttachment
	FormatFeatureColorAttachmentBlend
	FormatFeatureDepthStencilAttachment
	FormatFeatureBlitSrc
	FormatFeatureBlitDst
	FormatFeatureSampledImageFilterLinear
)
