// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/vkabi"
)

// PrimitiveTopologyFromVulkan converts VkPrimitiveTopology to gputypes.PrimitiveTopology.
// The list-with-adjacency and patch-list topologies have no HAL equivalent
// (no geometry-shader stage, no tessellation patches) and are an explicit
// not-implemented path.
func PrimitiveTopologyFromVulkan(t vkabi.PrimitiveTopology) gputypes.PrimitiveTopology {
	switch t {
	case vkabi.PrimitiveTopologyPointList:
		return gputypes.PrimitiveTopologyPointList
	case vkabi.PrimitiveTopologyLineList:
		return gputypes.PrimitiveTopologyLineList
	case vkabi.PrimitiveTopologyLineStrip:
		return gputypes.PrimitiveTopologyLineStrip
	case vkabi.PrimitiveTopologyTriangleList:
		return gputypes.PrimitiveTopologyTriangleList
	case vkabi.PrimitiveTopologyTriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip
	default:
		fatal("PrimitiveTopologyFromVulkan", "topology %d has no HAL equivalent", t)
		return gputypes.PrimitiveTopologyTriangleList
	}
}

// FrontFaceFromVulkan converts VkFrontFace to gputypes.FrontFace.
func FrontFaceFromVulkan(f vkabi.FrontFace) gputypes.FrontFace {
	switch f {
	case vkabi.FrontFaceCounterClockwise:
		return gputypes.FrontFaceCCW
	case vkabi.FrontFaceClockwise:
		return gputypes.FrontFaceCW
	default:
		fatal("FrontFaceFromVulkan", "unrecognized VkFrontFace %d", f)
		return gputypes.FrontFaceCCW
	}
}

// CullModeFromVulkan converts VkCullModeFlags to gputypes.CullMode.
// FRONT_AND_BACK has no HAL equivalent; culling both faces is equivalent to
// never rasterizing, which the assembler rejects rather than approximates.
func CullModeFromVulkan(mask vkabi.CullModeFlags) gputypes.CullMode {
	switch mask {
	case vkabi.CullModeNone:
		return gputypes.CullModeNone
	case vkabi.CullModeFront:
		return gputypes.CullModeFront
	case vkabi.CullModeBack:
		return gputypes.CullModeBack
	default:
		fatal("CullModeFromVulkan", "cull mode mask %#x has no HAL equivalent", mask)
		return gputypes.CullModeNone
	}
}

// CompareOpFromVulkan converts VkCompareOp to gputypes.CompareFunction.
func CompareOpFromVulkan(op vkabi.CompareOp) gputypes.CompareFunction {
	switch op {
	case vkabi.CompareOpNever:
		return gputypes.CompareFunctionNever
	case vkabi.CompareOpLess:
		return gputypes.CompareFunctionLess
	case vkabi.CompareOpEqual:
		return gputypes.CompareFunctionEqual
	case vkabi.CompareOpLessOrEqual:
		return gputypes.CompareFunctionLessEqual
	case vkabi.CompareOpGreater:
		return gputypes.CompareFunctionGreater
	case vkabi.CompareOpNotEqual:
		return gputypes.CompareFunctionNotEqual
	case vkabi.CompareOpGreaterOrEqual:
		return gputypes.CompareFunctionGreaterEqual
	case vkabi.CompareOpAlways:
		return gputypes.CompareFunctionAlways
	default:
		fatal("CompareOpFromVulkan", "unrecognized VkCompareOp %d", op)
		return gputypes.CompareFunctionAlways
	}
}

// StencilOpFromVulkan converts VkStencilOp to hal.StencilOperation (a local
// hal type - gputypes has no stencil-operation enum of its own).
func StencilOpFromVulkan(op vkabi.StencilOp) hal.StencilOperation {
	switch op {
	case vkabi.StencilOpKeep:
		return hal.StencilOperationKeep
	case vkabi.StencilOpZero:
		return hal.StencilOperationZero
	case vkabi.StencilOpReplace:
		return hal.StencilOperationReplace
	case vkabi.StencilOpIncrementAndClamp:
		return hal.StencilOperationIncrementClamp
	case vkabi.StencilOpDecrementAndClamp:
		return hal.StencilOperationDecrementClamp
	case vkabi.StencilOpInvert:
		return hal.StencilOperationInvert
	case vkabi.StencilOpIncrementAndWrap:
		return hal.StencilOperationIncrementWrap
	case vkabi.StencilOpDecrementAndWrap:
		return hal.StencilOperationDecrementWrap
	default:
		fatal("StencilOpFromVulkan", "unrecognized VkStencilOp %d", op)
		return hal.StencilOperationKeep
	}
}

// BlendFactorFromVulkan converts VkBlendFactor to gputypes.BlendFactor.
// The dual-source-blending factors (SRC1_*) have no HAL equivalent.
func BlendFactorFromVulkan(f vkabi.BlendFactor) gputypes.BlendFactor {
	switch f {
	case vkabi.BlendFactorZero:
		return gputypes.BlendFactorZero
	case vkabi.BlendFactorOne:
		return gputypes.BlendFactorOne
	case vkabi.BlendFactorSrcColor:
		return gputypes.BlendFactorSrc
	case vkabi.BlendFactorOneMinusSrcColor:
		return gputypes.BlendFactorOneMinusSrc
	case vkabi.BlendFactorDstColor:
		return gputypes.BlendFactorDst
	case vkabi.BlendFactorOneMinusDstColor:
		return gputypes.BlendFactorOneMinusDst
	case vkabi.BlendFactorSrcAlpha:
		return gputypes.BlendFactorSrcAlpha
	case vkabi.BlendFactorOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha
	case vkabi.BlendFactorDstAlpha:
		return gputypes.BlendFactorDstAlpha
	case vkabi.BlendFactorOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha
	case vkabi.BlendFactorConstantColor:
		return gputypes.BlendFactorConstant
	case vkabi.BlendFactorOneMinusConstantColor:
		return gputypes.BlendFactorOneMinusConstant
	case vkabi.BlendFactorSrcAlphaSaturate:
		return gputypes.BlendFactorSrcAlphaSaturated
	default:
		fatal("BlendFactorFromVulkan", "blend factor %d has no HAL equivalent", f)
		return gputypes.BlendFactorOne
	}
}

// BlendOpFromVulkan converts VkBlendOp to gputypes.BlendOperation. The
// advanced blend-equation ops (EXT_blend_operation_advanced) are out of
// scope and fall to the default, explicit not-implemented path.
func BlendOpFromVulkan(op vkabi.BlendOp) gputypes.BlendOperation {
	switch op {
	case vkabi.BlendOpAdd:
		return gputypes.BlendOperationAdd
	case vkabi.BlendOpSubtract:
		return gputypes.BlendOperationSubtract
	case vkabi.BlendOpReverseSubtract:
		return gputypes.BlendOperationReverseSubtract
	case vkabi.BlendOpMin:
		return gputypes.BlendOperationMin
	case vkabi.BlendOpMax:
		return gputypes.BlendOperationMax
	default:
		fatal("BlendOpFromVulkan", "blend op %d has no HAL equivalent", op)
		return gputypes.BlendOperationAdd
	}
}

// ColorWriteMaskFromVulkan converts VkColorComponentFlags to gputypes.ColorWriteMask.
func ColorWriteMaskFromVulkan(mask vkabi.ColorComponentFlags) gputypes.ColorWriteMask {
	var out gputypes.ColorWriteMask
	if mask&vkabi.ColorComponentR != 0 {
		out |= gputypes.ColorWriteMaskRed
	}
	if mask&vkabi.ColorComponentG != 0 {
		out |= gputypes.ColorWriteMaskGreen
	}
	if mask&vkabi.ColorComponentB != 0 {
		out |= gputypes.ColorWriteMaskBlue
	}
	if mask&vkabi.ColorComponentA != 0 {
		out |= gputypes.ColorWriteMaskAlpha
	}
	return out
}

// IndexFormatFromVulkan converts VkIndexType to gputypes.IndexFormat. The
// UINT8_EXT and NONE_KHR index types are an explicit not-implemented path.
func IndexFormatFromVulkan(uint32Index bool) gputypes.IndexFormat {
	if uint32Index {
		return gputypes.IndexFormatUint32
	}
	return gputypes.IndexFormatUint16
}
