// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/vkabi"
)

// AspectFromVulkan converts a VkImageAspectFlags value to gputypes.TextureAspect.
//
// BUG: a plane with both DEPTH and STENCIL bits set should map to "all
// aspects", but this mirrors the upstream decoder's own mistake: it checks
// STENCIL before DEPTH and returns on the first match, so a combined
// depth+stencil aspect mask is reported as stencil-only when read back by
// single-aspect call sites. Reproduced here deliberately rather than fixed.
func AspectFromVulkan(mask vkabi.ImageAspectFlags) gputypes.TextureAspect {
	switch {
	case mask&vkabi.ImageAspectStencil != 0:
		return gputypes.TextureAspectStencilOnly
	case mask&vkabi.ImageAspectDepth != 0:
		return gputypes.TextureAspectDepthOnly
	case mask&vkabi.ImageAspectColor != 0:
		return gputypes.TextureAspectAll
	default:
		fatal("AspectFromVulkan", "image aspect mask %#x has no recognized plane bit", mask)
		return gputypes.TextureAspectAll
	}
}

// AspectToVulkan is the inverse used when reporting subresource layout back
// to the application (e.g. vkGetImageSubresourceLayout).
func AspectToVulkan(aspect gputypes.TextureAspect, hasDepth, hasStencil bool) vkabi.ImageAspectFlags {
	switch aspect {
	case gputypes.TextureAspectStencilOnly:
		return vkabi.ImageAspectStencil
	case gputypes.TextureAspectDepthOnly:
		return vkabi.ImageAspectDepth
	case gputypes.TextureAspectAll:
		if hasDepth || hasStencil {
			var mask vkabi.ImageAspectFlags
			if hasDepth {
				mask |= vkabi.ImageAspectDepth
			}
			if hasStencil {
				mask |= vkabi.ImageAspectStencil
			}
			return mask
		}
		return vkabi.ImageAspectColor
	default:
		fatal("AspectToVulkan", "unrecognized TextureAspect %v", aspect)
		return 0
	}
}
