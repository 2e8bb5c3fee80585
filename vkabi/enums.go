// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkabi

// Result mirrors VkResult.
type Result int32

const (
	Success                   Result = 0
	NotReady                  Result = 1
	Timeout                   Result = 2
	EventSet                  Result = 3
	EventReset                Result = 4
	Incomplete                Result = 5
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorMemoryMapFailed      Result = -5
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorFeatureNotPresent    Result = -8
	ErrorIncompatibleDriver   Result = -9
	ErrorTooManyObjects       Result = -10
	ErrorFormatNotSupported   Result = -11
	ErrorFragmentedPool       Result = -12
	ErrorSurfaceLostKHR       Result = -1000000000
	ErrorOutOfDateKHR         Result = -1000001004
	SuboptimalKHR             Result = 1000001003
	ErrorUnknown              Result = -13
)

// StructureType mirrors the subset of VkStructureType this driver inspects.
type StructureType int32

const (
	StructureTypeApplicationInfo StructureType = iota + 1
	StructureTypeInstanceCreateInfo
	StructureTypeDeviceQueueCreateInfo
	StructureTypeDeviceCreateInfo
	StructureTypeSubmitInfo
	StructureTypeMemoryAllocateInfo
	StructureTypeMappedMemoryRange
	StructureTypeBindSparseInfo
	StructureTypeFenceCreateInfo
	StructureTypeSemaphoreCreateInfo
	StructureTypeEventCreateInfo
	StructureTypeQueryPoolCreateInfo
	StructureTypeBufferCreateInfo
	StructureTypeBufferViewCreateInfo
	StructureTypeImageCreateInfo
	StructureTypeImageViewCreateInfo
	StructureTypeShaderModuleCreateInfo
	StructureTypePipelineCacheCreateInfo
	StructureTypePipelineShaderStageCreateInfo
	StructureTypePipelineVertexInputStateCreateInfo
	StructureTypePipelineInputAssemblyStateCreateInfo
	StructureTypePipelineTessellationStateCreateInfo
	StructureTypePipelineViewportStateCreateInfo
	StructureTypePipelineRasterizationStateCreateInfo
	StructureTypePipelineMultisampleStateCreateInfo
	StructureTypePipelineDepthStencilStateCreateInfo
	StructureTypePipelineColorBlendStateCreateInfo
	StructureTypePipelineDynamicStateCreateInfo
	StructureTypeGraphicsPipelineCreateInfo
	StructureTypeComputePipelineCreateInfo
	StructureTypePipelineLayoutCreateInfo
	StructureTypeSamplerCreateInfo
	StructureTypeDescriptorSetLayoutCreateInfo
	StructureTypeDescriptorPoolCreateInfo
	StructureTypeDescriptorSetAllocateInfo
	StructureTypeWriteDescriptorSet
	StructureTypeCopyDescriptorSet
	StructureTypeFramebufferCreateInfo
	StructureTypeRenderPassCreateInfo
	StructureTypeCommandPoolCreateInfo
	StructureTypeCommandBufferAllocateInfo
	StructureTypeCommandBufferInheritanceInfo
	StructureTypeCommandBufferBeginInfo
	StructureTypeRenderPassBeginInfo
	StructureTypeSwapchainCreateInfoKHR StructureType = 1000001000
	StructureTypePresentInfoKHR         StructureType = 1000001001
)

// Format mirrors the subset of VkFormat this driver's conversion tables accept.
type Format int32

const (
	FormatUndefined Format = iota
	FormatR8Unorm   Format = 9
	FormatR8Snorm   Format = 10
	FormatR8Uint    Format = 13
	FormatR8Sint    Format = 14
	FormatR8G8Unorm Format = 16
	FormatR8G8Uint  Format = 20
	FormatR8G8B8A8Unorm Format = 37
	FormatR8G8B8A8Snorm Format = 38
	FormatR8G8B8A8Uint  Format = 41
	FormatR8G8B8A8Sint  Format = 42
	FormatR8G8B8A8Srgb  Format = 43
	FormatB8G8R8A8Unorm Format = 44
	FormatB8G8R8A8Srgb  Format = 50
	FormatA2B10G10R10UnormPack32 Format = 64
	FormatR16Uint       Format = 74
	FormatR16Sint       Format = 75
	FormatR16Sfloat     Format = 76
	FormatR16G16Sfloat  Format = 83
	FormatR16G16B16A16Uint   Format = 95
	FormatR16G16B16A16Sint   Format = 96
	FormatR16G16B16A16Sfloat Format = 97
	FormatR32Uint       Format = 98
	FormatR32Sint       Format = 99
	FormatR32Sfloat     Format = 100
	FormatR32G32Sfloat  Format = 103
	FormatR32G32B32Sfloat    Format = 106
	FormatR32G32B32A32Uint   Format = 107
	FormatR32G32B32A32Sint   Format = 108
	FormatR32G32B32A32Sfloat Format = 109
	FormatD16Unorm         Format = 124
	FormatX8D24UnormPack32 Format = 125
	FormatD32Sfloat        Format = 126
	FormatS8Uint           Format = 127
	FormatD24UnormS8Uint   Format = 129
	FormatD32SfloatS8Uint  Format = 130
	FormatBC1RGBAUnormBlock Format = 135
	FormatBC3UnormBlock     Format = 139
	FormatBC7UnormBlock     Format = 145
)

// ImageType mirrors VkImageType.
type ImageType int32

const (
	ImageType1D ImageType = iota
	ImageType2D
	ImageType3D
)

// ImageViewType mirrors VkImageViewType.
type ImageViewType int32

const (
	ImageViewType1D ImageViewType = iota
	ImageViewType2D
	ImageViewType3D
	ImageViewTypeCube
	ImageViewType1DArray
	ImageViewType2DArray
	ImageViewTypeCubeArray
)

// ImageTiling mirrors VkImageTiling.
type ImageTiling int32

const (
	ImageTilingOptimal ImageTiling = iota
	ImageTilingLinear
)

// ImageLayout mirrors VkImageLayout.
type ImageLayout int32

const (
	ImageLayoutUndefined ImageLayout = iota
	ImageLayoutGeneral
	ImageLayoutColorAttachmentOptimal
	ImageLayoutDepthStencilAttachmentOptimal
	ImageLayoutDepthStencilReadOnlyOptimal
	ImageLayoutShaderReadOnlyOptimal
	ImageLayoutTransferSrcOptimal
	ImageLayoutTransferDstOptimal
	ImageLayoutPreinitialized
	ImageLayoutPresentSrcKHR ImageLayout = 1000001002
)

// SharingMode mirrors VkSharingMode.
type SharingMode int32

const (
	SharingModeExclusive SharingMode = iota
	SharingModeConcurrent
)

// ComponentSwizzle mirrors VkComponentSwizzle.
type ComponentSwizzle int32

const (
	ComponentSwizzleIdentity ComponentSwizzle = iota
	ComponentSwizzleZero
	ComponentSwizzleOne
	ComponentSwizzleR
	ComponentSwizzleG
	ComponentSwizzleB
	ComponentSwizzleA
)

// CompareOp mirrors VkCompareOp.
type CompareOp int32

const (
	CompareOpNever CompareOp = iota
	CompareOpLess
	CompareOpEqual
	CompareOpLessOrEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterOrEqual
	CompareOpAlways
)

// StencilOp mirrors VkStencilOp.
type StencilOp int32

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementAndClamp
	StencilOpDecrementAndClamp
	StencilOpInvert
	StencilOpIncrementAndWrap
	StencilOpDecrementAndWrap
)

// BlendFactor mirrors VkBlendFactor.
type BlendFactor int32

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorConstantColor
	BlendFactorOneMinusConstantColor
	BlendFactorConstantAlpha
	BlendFactorOneMinusConstantAlpha
	BlendFactorSrcAlphaSaturate
)

// BlendOp mirrors VkBlendOp.
type BlendOp int32

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// LogicOp mirrors VkLogicOp.
type LogicOp int32

const (
	LogicOpClear LogicOp = iota
	LogicOpAnd
	LogicOpAndReverse
	LogicOpCopy
	LogicOpAndInverted
	LogicOpNoOp
	LogicOpXor
	LogicOpOr
	LogicOpNor
	LogicOpEquivalent
	LogicOpInvert
	LogicOpOrReverse
	LogicOpCopyInverted
	LogicOpOrInverted
	LogicOpNand
	LogicOpSet
)

// PrimitiveTopology mirrors VkPrimitiveTopology.
type PrimitiveTopology int32

const (
	PrimitiveTopologyPointList PrimitiveTopology = iota
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyTriangleFan
	PrimitiveTopologyLineListWithAdjacency
	PrimitiveTopologyLineStripWithAdjacency
	PrimitiveTopologyTriangleListWithAdjacency
	PrimitiveTopologyTriangleStripWithAdjacency
	PrimitiveTopologyPatchList
)

// PolygonMode mirrors VkPolygonMode.
type PolygonMode int32

const (
	PolygonModeFill PolygonMode = iota
	PolygonModeLine
	PolygonModePoint
)

// FrontFace mirrors VkFrontFace.
type FrontFace int32

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

// AttachmentLoadOp mirrors VkAttachmentLoadOp.
type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad AttachmentLoadOp = iota
	AttachmentLoadOpClear
	AttachmentLoadOpDontCare
)

// AttachmentStoreOp mirrors VkAttachmentStoreOp.
type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore AttachmentStoreOp = iota
	AttachmentStoreOpDontCare
)

// IndexType mirrors VkIndexType.
type IndexType int32

const (
	IndexTypeUint16 IndexType = iota
	IndexTypeUint32
)

// PipelineBindPoint mirrors VkPipelineBindPoint.
type PipelineBindPoint int32

const (
	PipelineBindPointGraphics PipelineBindPoint = iota
	PipelineBindPointCompute
)

// CommandBufferLevel mirrors VkCommandBufferLevel.
type CommandBufferLevel int32

const (
	CommandBufferLevelPrimary CommandBufferLevel = iota
	CommandBufferLevelSecondary
)

// SubpassContents mirrors VkSubpassContents.
type SubpassContents int32

const (
	SubpassContentsInline SubpassContents = iota
	SubpassContentsSecondaryCommandBuffers
)

// DescriptorType mirrors VkDescriptorType.
type DescriptorType int32

const (
	DescriptorTypeSampler DescriptorType = iota
	DescriptorTypeCombinedImageSampler
	DescriptorTypeSampledImage
	DescriptorTypeStorageImage
	DescriptorTypeUniformTexelBuffer
	DescriptorTypeStorageTexelBuffer
	DescriptorTypeUniformBuffer
	DescriptorTypeStorageBuffer
	DescriptorTypeUniformBufferDynamic
	DescriptorTypeStorageBufferDynamic
	DescriptorTypeInputAttachment
)

// PhysicalDeviceType mirrors VkPhysicalDeviceType.
type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther PhysicalDeviceType = iota
	PhysicalDeviceTypeIntegratedGPU
	PhysicalDeviceTypeDiscreteGPU
	PhysicalDeviceTypeVirtualGPU
	PhysicalDeviceTypeCPU
)

// VertexInputRate mirrors VkVertexInputRate.
type VertexInputRate int32

const (
	VertexInputRateVertex VertexInputRate = iota
	VertexInputRateInstance
)

// SamplerAddressMode mirrors VkSamplerAddressMode.
type SamplerAddressMode int32

const (
	SamplerAddressModeRepeat SamplerAddressMode = iota
	SamplerAddressModeMirroredRepeat
	SamplerAddressModeClampToEdge
	SamplerAddressModeClampToBorder
)

// Filter mirrors VkFilter.
type Filter int32

const (
	FilterNearest Filter = iota
	FilterLinear
)

// SamplerMipmapMode mirrors VkSamplerMipmapMode.
type SamplerMipmapMode int32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = iota
	SamplerMipmapModeLinear
)

// PresentModeKHR mirrors VkPresentModeKHR.
type PresentModeKHR int32

const (
	PresentModeImmediateKHR PresentModeKHR = iota
	PresentModeMailboxKHR
	PresentModeFifoKHR
	PresentModeFifoRelaxedKHR
)

// ColorSpaceKHR mirrors VkColorSpaceKHR.
type ColorSpaceKHR int32

const (
	ColorSpaceSRGBNonlinearKHR ColorSpaceKHR = iota
)
