// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/vkabi"
)

// VertexFormatFromVulkan converts a VkFormat used as a vertex attribute
// element format to gputypes.VertexFormat. Only the subset of VkFormat
// values that are legal vertex-attribute formats are accepted; any other
// format (a color/depth texture format passed by mistake) is a fatal
// precondition violation.
func VertexFormatFromVulkan(f vkabi.Format) gputypes.VertexFormat {
	switch f {
	case vkabi.FormatR8G8Uint:
		return gputypes.VertexFormatUint8x2
	case vkabi.FormatR8G8B8A8Uint:
		return gputypes.VertexFormatUint8x4
	case vkabi.FormatR8G8B8A8Unorm:
		return gputypes.VertexFormatUnorm8x4
	case vkabi.FormatR16Uint:
		return gputypes.VertexFormatUint16x2
	case vkabi.FormatR16G16Sfloat:
		return gputypes.VertexFormatFloat16x2
	case vkabi.FormatR16G16B16A16Uint:
		return gputypes.VertexFormatUint16x4
	case vkabi.FormatR16G16B16A16Sfloat:
		return gputypes.VertexFormatFloat16x4
	case vkabi.FormatR32Uint:
		return gputypes.VertexFormatUint32
	case vkabi.FormatR32Sint:
		return gputypes.VertexFormatSint32
	case vkabi.FormatR32Sfloat:
		return gputypes.VertexFormatFloat32
	case vkabi.FormatR32G32Sfloat:
		return gputypes.VertexFormatFloat32x2
	case vkabi.FormatR32G32B32Sfloat:
		return gputypes.VertexFormatFloat32x3
	case vkabi.FormatR32G32B32A32Uint:
		return gputypes.VertexFormatUint32x4
	case vkabi.FormatR32G32B32A32Sint:
		return gputypes.VertexFormatSint32x4
	case vkabi.FormatR32G32B32A32Sfloat:
		return gputypes.VertexFormatFloat32x4
	default:
		fatal("VertexFormatFromVulkan", "format %d is not a valid vertex attribute format", f)
		return gputypes.VertexFormatFloat32
	}
}
