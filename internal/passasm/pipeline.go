// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package passasm

import (
	"sort"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/internal/convert"
	"github.com/gogpu/vkicd/vkabi"
)

// Resolver looks up the HAL objects a pipeline create-info references by
// their owning Vulkan handle. The icd package supplies this; passasm never
// touches internal/handle directly.
type Resolver struct {
	ShaderModule func(vkabi.ShaderModule) hal.ShaderModule
	Layout       func(vkabi.PipelineLayout) hal.PipelineLayout

	// RenderPassTargets returns the color target formats and, if present,
	// the depth/stencil format for the given render pass + subpass index,
	// resolved from the render pass's own attachment/subpass arrays. A
	// nil depth/stencil format pointer means the subpass has none.
	RenderPassTargets func(pass vkabi.RenderPass, subpass uint32) (color []gputypes.TextureFormat, depthStencil *gputypes.TextureFormat)
}

// ParentKind tags how a pipeline's Vulkan "base pipeline" was specified.
type ParentKind uint8

const (
	ParentNone ParentKind = iota
	ParentHandle
	ParentIndex
)

// Parent records a batch-create pipeline's derivative relationship, carried
// through because nothing in hal.RenderPipelineDescriptor/
// hal.ComputePipelineDescriptor has a slot for it (the HAL has no pipeline
// derivative concept) - see DESIGN.md.
type Parent struct {
	Kind   ParentKind
	Handle vkabi.Pipeline
	Index  int32
}

// GraphicsPipelineSlot is one pass-2 result: either a descriptor ready for
// pass 3's batch submit, or an error that must localize to a null handle
// for this slot alone per spec.md §7/§8 scenario 6.
type GraphicsPipelineSlot struct {
	Descriptor     *hal.RenderPipelineDescriptor
	Specialization map[vkabi.ShaderStageFlags][]OwnedSpecializationEntry
	Parent         Parent
	Flags          vkabi.PipelineCreateFlags
	Err            error
}

// AssembleGraphicsPipelines runs passes 1 and 2 of spec.md §4.3 over a
// vkCreateGraphicsPipelines batch: materialize each entry's transient
// borrows (shader stage selection, specialization data, vertex/rasterizer/
// blend/depth-stencil state) into an owned hal.RenderPipelineDescriptor. A
// per-entry failure (a precondition violation recovered from panic) is
// localized to that slot's Err; it never aborts sibling slots.
func AssembleGraphicsPipelines(infos []vkabi.GraphicsPipelineCreateInfo, r Resolver) []GraphicsPipelineSlot {
	slots := make([]GraphicsPipelineSlot, len(infos))
	for i := range infos {
		slots[i] = assembleOne(&infos[i], r)
	}
	return slots
}

func assembleOne(info *vkabi.GraphicsPipelineCreateInfo, r Resolver) (slot GraphicsPipelineSlot) {
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok {
				err = &stageError{rec}
			}
			slot = GraphicsPipelineSlot{Err: err}
		}
	}()

	desc := &hal.RenderPipelineDescriptor{
		Layout: r.Layout(info.Layout),
	}

	spec := make(map[vkabi.ShaderStageFlags][]OwnedSpecializationEntry)
	var vertexStage, fragmentStage *vkabi.PipelineShaderStageCreateInfo
	for i := range info.Stages {
		stage := &info.Stages[i]
		spec[stage.Stage] = materializeSpecialization(stage.SpecializationInfo)
		switch stage.Stage {
		case vkabi.ShaderStageVertex:
			vertexStage = stage
		case vkabi.ShaderStageFragment:
			fragmentStage = stage
		case vkabi.ShaderStageTessellationControl, vkabi.ShaderStageTessellationEvaluation, vkabi.ShaderStageGeometry:
			panic("vkCreateGraphicsPipelines: tessellation and geometry stages have no HAL equivalent")
		default:
			panic("vkCreateGraphicsPipelines: unknown or unsupported shader stage in pipeline")
		}
	}
	if vertexStage == nil {
		panic("vkCreateGraphicsPipelines: graphics pipeline requires a vertex stage")
	}

	desc.Vertex = hal.VertexState{
		Module:     r.ShaderModule(vertexStage.Module),
		EntryPoint: vertexStage.Name,
		Buffers:    assembleVertexBuffers(info.VertexInputState),
	}

	desc.Primitive = assemblePrimitive(info.InputAssemblyState, info.RasterizationState)

	desc.Multisample = assembleMultisample(info.MultisampleState)

	colorFormats, depthStencilFormat := r.RenderPassTargets(info.RenderPass, info.Subpass)

	if fragmentStage != nil {
		desc.Fragment = &hal.FragmentState{
			Module:     r.ShaderModule(fragmentStage.Module),
			EntryPoint: fragmentStage.Name,
			Targets:    assembleColorTargets(info.ColorBlendState, colorFormats),
		}
	}

	if info.DepthStencilState != nil {
		desc.DepthStencil = assembleDepthStencil(info.DepthStencilState, depthStencilFormat)
	}

	return GraphicsPipelineSlot{
		Descriptor:     desc,
		Specialization: spec,
		Parent:         assembleParent(info.Flags, info.BasePipelineHandle, info.BasePipelineIndex),
		Flags:          info.Flags,
	}
}

// stageError boxes a non-error panic value (a plain string, the common case
// for this codebase's fatal() precondition panics) into an error.
type stageError struct{ v any }

func (e *stageError) Error() string {
	if s, ok := e.v.(string); ok {
		return s
	}
	return "vkCreateGraphicsPipelines: pipeline assembly failed"
}

func assembleVertexBuffers(state *vkabi.PipelineVertexInputStateCreateInfo) []gputypes.VertexBufferLayout {
	if state == nil {
		return nil
	}

	byBinding := make(map[uint32]*gputypes.VertexBufferLayout, len(state.VertexBindingDescriptions))
	order := make([]uint32, 0, len(state.VertexBindingDescriptions))
	for _, b := range state.VertexBindingDescriptions {
		if _, exists := byBinding[b.Binding]; exists {
			panic("vkCreateGraphicsPipelines: duplicate vertex input binding")
		}
		stepMode := gputypes.VertexStepModeVertex
		if b.InputRate == vkabi.VertexInputRateInstance {
			stepMode = gputypes.VertexStepModeInstance
		}
		byBinding[b.Binding] = &gputypes.VertexBufferLayout{
			ArrayStride: uint64(b.Stride),
			StepMode:    stepMode,
		}
		order = append(order, b.Binding)
	}

	for _, a := range state.VertexAttributeDescriptions {
		layout, ok := byBinding[a.Binding]
		if !ok {
			panic("vkCreateGraphicsPipelines: vertex attribute references unknown binding")
		}
		layout.Attributes = append(layout.Attributes, gputypes.VertexAttribute{
			Format:         convert.VertexFormatFromVulkan(a.Format),
			Offset:         uint64(a.Offset),
			ShaderLocation: a.Location,
		})
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	out := make([]gputypes.VertexBufferLayout, 0, len(order))
	for _, binding := range order {
		out = append(out, *byBinding[binding])
	}
	return out
}

func assemblePrimitive(ia *vkabi.PipelineInputAssemblyStateCreateInfo, rs *vkabi.PipelineRasterizationStateCreateInfo) gputypes.PrimitiveState {
	prim := gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
	}
	if ia != nil {
		if ia.PrimitiveRestartEnable {
			panic("vkCreateGraphicsPipelines: primitive restart has no HAL equivalent")
		}
		prim.Topology = convert.PrimitiveTopologyFromVulkan(ia.Topology)
	}
	if rs != nil {
		if rs.RasterizerDiscardEnable {
			panic("vkCreateGraphicsPipelines: rasterizer discard has no HAL equivalent")
		}
		if rs.DepthBiasEnable {
			panic("vkCreateGraphicsPipelines: depth bias has no HAL equivalent in primitive state")
		}
		if rs.PolygonMode != vkabi.PolygonModeFill {
			panic("vkCreateGraphicsPipelines: only VK_POLYGON_MODE_FILL has a HAL equivalent")
		}
		prim.FrontFace = convert.FrontFaceFromVulkan(rs.FrontFace)
		prim.CullMode = convert.CullModeFromVulkan(rs.CullMode)
		prim.UnclippedDepth = rs.DepthClampEnable
	}
	return prim
}

func assembleMultisample(ms *vkabi.PipelineMultisampleStateCreateInfo) gputypes.MultisampleState {
	if ms == nil {
		return gputypes.DefaultMultisampleState()
	}
	if ms.AlphaToOneEnable {
		panic("vkCreateGraphicsPipelines: alphaToOne has no HAL equivalent")
	}
	mask := uint64(0xFFFFFFFF)
	if len(ms.SampleMask) > 0 {
		mask = uint64(ms.SampleMask[0])
	}
	return gputypes.MultisampleState{
		Count:                  uint32(ms.RasterizationSamples),
		Mask:                   mask,
		AlphaToCoverageEnabled: ms.AlphaToCoverageEnable,
	}
}

func assembleColorTargets(cb *vkabi.PipelineColorBlendStateCreateInfo, formats []gputypes.TextureFormat) []gputypes.ColorTargetState {
	if cb == nil {
		return nil
	}
	if len(cb.Attachments) != len(formats) {
		panic("vkCreateGraphicsPipelines: color blend attachment count does not match render pass subpass color attachments")
	}
	targets := make([]gputypes.ColorTargetState, len(cb.Attachments))
	for i, a := range cb.Attachments {
		target := gputypes.ColorTargetState{
			Format:    formats[i],
			WriteMask: convert.ColorWriteMaskFromVulkan(a.ColorWriteMask),
		}
		if a.BlendEnable {
			target.Blend = &gputypes.BlendState{
				Color: gputypes.BlendComponent{
					SrcFactor: convert.BlendFactorFromVulkan(a.SrcColorBlendFactor),
					DstFactor: convert.BlendFactorFromVulkan(a.DstColorBlendFactor),
					Operation: convert.BlendOpFromVulkan(a.ColorBlendOp),
				},
				Alpha: gputypes.BlendComponent{
					SrcFactor: convert.BlendFactorFromVulkan(a.SrcAlphaBlendFactor),
					DstFactor: convert.BlendFactorFromVulkan(a.DstAlphaBlendFactor),
					Operation: convert.BlendOpFromVulkan(a.AlphaBlendOp),
				},
			}
		}
		targets[i] = target
	}
	return targets
}

func assembleDepthStencil(ds *vkabi.PipelineDepthStencilStateCreateInfo, format *gputypes.TextureFormat) *hal.DepthStencilState {
	if format == nil {
		panic("vkCreateGraphicsPipelines: depth/stencil state set but subpass has no depth/stencil attachment")
	}
	if ds.DepthBoundsTestEnable {
		panic("vkCreateGraphicsPipelines: depth bounds test has no HAL equivalent")
	}
	compare := gputypes.CompareFunctionAlways
	if ds.DepthTestEnable {
		compare = convert.CompareOpFromVulkan(ds.DepthCompareOp)
	}
	return &hal.DepthStencilState{
		Format:            *format,
		DepthWriteEnabled: ds.DepthTestEnable && ds.DepthWriteEnable,
		DepthCompare:      compare,
		StencilFront:      assembleStencilFace(ds.Front, ds.StencilTestEnable),
		StencilBack:       assembleStencilFace(ds.Back, ds.StencilTestEnable),
		StencilReadMask:   ds.Front.CompareMask,
		StencilWriteMask:  ds.Front.WriteMask,
	}
}

func assembleStencilFace(face vkabi.StencilOpState, enabled bool) hal.StencilFaceState {
	if !enabled {
		return hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		}
	}
	return hal.StencilFaceState{
		Compare:     convert.CompareOpFromVulkan(face.CompareOp),
		FailOp:      convert.StencilOpFromVulkan(face.FailOp),
		DepthFailOp: convert.StencilOpFromVulkan(face.DepthFailOp),
		PassOp:      convert.StencilOpFromVulkan(face.PassOp),
	}
}

func assembleParent(flags vkabi.PipelineCreateFlags, base vkabi.Pipeline, baseIndex int32) Parent {
	if flags&vkabi.PipelineCreateDerivative == 0 {
		return Parent{Kind: ParentNone}
	}
	if base != vkabi.NullHandle {
		return Parent{Kind: ParentHandle, Handle: base}
	}
	if baseIndex >= 0 {
		return Parent{Kind: ParentIndex, Index: baseIndex}
	}
	return Parent{Kind: ParentNone}
}
