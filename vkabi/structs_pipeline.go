// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkabi

// SpecializationMapEntry mirrors VkSpecializationMapEntry.
type SpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uintptr
}

// SpecializationInfo mirrors VkSpecializationInfo. Data is transient - only
// valid for the duration of the Create*Pipelines call that references it
// (spec.md §4.3 pass 1 / §9 "transient borrows").
type SpecializationInfo struct {
	MapEntries []SpecializationMapEntry
	Data       []byte
}

// PipelineShaderStageCreateInfo mirrors VkPipelineShaderStageCreateInfo.
type PipelineShaderStageCreateInfo struct {
	SType               StructureType
	Flags               Flags
	Stage               ShaderStageFlags
	Module              ShaderModule
	Name                string
	SpecializationInfo  *SpecializationInfo
}

// VertexInputBindingDescription mirrors VkVertexInputBindingDescription.
type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

// VertexInputAttributeDescription mirrors VkVertexInputAttributeDescription.
type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

// PipelineVertexInputStateCreateInfo mirrors VkPipelineVertexInputStateCreateInfo.
type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	Flags                           Flags
	VertexBindingDescriptions       []VertexInputBindingDescription
	VertexAttributeDescriptions     []VertexInputAttributeDescription
}

// PipelineInputAssemblyStateCreateInfo mirrors VkPipelineInputAssemblyStateCreateInfo.
type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	Flags                  Flags
	Topology               PrimitiveTopology
	PrimitiveRestartEnable bool
}

// PipelineTessellationStateCreateInfo mirrors VkPipelineTessellationStateCreateInfo.
type PipelineTessellationStateCreateInfo struct {
	SType              StructureType
	Flags              Flags
	PatchControlPoints uint32
}

// PipelineViewportStateCreateInfo mirrors VkPipelineViewportStateCreateInfo.
type PipelineViewportStateCreateInfo struct {
	SType       StructureType
	Flags       Flags
	Viewports   []Viewport
	Scissors    []Rect2D
}

// PipelineRasterizationStateCreateInfo mirrors VkPipelineRasterizationStateCreateInfo.
type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	Flags                   Flags
	DepthClampEnable        bool
	RasterizerDiscardEnable bool
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         bool
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

// PipelineMultisampleStateCreateInfo mirrors VkPipelineMultisampleStateCreateInfo.
type PipelineMultisampleStateCreateInfo struct {
	SType                 StructureType
	Flags                 Flags
	RasterizationSamples  SampleCountFlags
	SampleShadingEnable   bool
	MinSampleShading      float32
	SampleMask            []uint32
	AlphaToCoverageEnable bool
	AlphaToOneEnable      bool
}

// StencilOpState mirrors VkStencilOpState.
type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// PipelineDepthStencilStateCreateInfo mirrors VkPipelineDepthStencilStateCreateInfo.
type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	Flags                 Flags
	DepthTestEnable       bool
	DepthWriteEnable      bool
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable bool
	StencilTestEnable     bool
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

// PipelineColorBlendAttachmentState mirrors VkPipelineColorBlendAttachmentState.
type PipelineColorBlendAttachmentState struct {
	BlendEnable         bool
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

// PipelineColorBlendStateCreateInfo mirrors VkPipelineColorBlendStateCreateInfo.
type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	Flags           Flags
	LogicOpEnable   bool
	LogicOp         LogicOp
	Attachments     []PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

// DynamicState mirrors VkDynamicState.
type DynamicState int32

// PipelineDynamicStateCreateInfo mirrors VkPipelineDynamicStateCreateInfo.
type PipelineDynamicStateCreateInfo struct {
	SType           StructureType
	Flags           Flags
	DynamicStates   []DynamicState
}

// GraphicsPipelineCreateInfo mirrors VkGraphicsPipelineCreateInfo.
type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	Flags               PipelineCreateFlags
	Stages              []PipelineShaderStageCreateInfo
	VertexInputState    *PipelineVertexInputStateCreateInfo
	InputAssemblyState  *PipelineInputAssemblyStateCreateInfo
	TessellationState   *PipelineTessellationStateCreateInfo
	ViewportState       *PipelineViewportStateCreateInfo
	RasterizationState  *PipelineRasterizationStateCreateInfo
	MultisampleState    *PipelineMultisampleStateCreateInfo
	DepthStencilState   *PipelineDepthStencilStateCreateInfo
	ColorBlendState     *PipelineColorBlendStateCreateInfo
	DynamicState        *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}

// ComputePipelineCreateInfo mirrors VkComputePipelineCreateInfo.
type ComputePipelineCreateInfo struct {
	SType              StructureType
	Flags              PipelineCreateFlags
	Stage              PipelineShaderStageCreateInfo
	Layout             PipelineLayout
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}
