// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/vkicd/vkabi"
)

// MipRange is a resolved [Base, Base+Count) mip-level range.
type MipRange struct {
	Base  uint32
	Count uint32
}

// LayerRange is a resolved [Base, Base+Count) array-layer range.
type LayerRange struct {
	Base  uint32
	Count uint32
}

// ResolveMipRange implements the subresource-range resolver's mip half: if
// levelCount is REMAINING_MIP_LEVELS the range runs to the image's total mip
// level count, otherwise it is exactly [baseMipLevel, baseMipLevel+levelCount).
func ResolveMipRange(baseMipLevel, levelCount, imageMipLevels uint32) MipRange {
	if levelCount == vkabi.RemainingMipLevels {
		if baseMipLevel > imageMipLevels {
			fatal("ResolveMipRange", "baseMipLevel %d exceeds image mip level count %d", baseMipLevel, imageMipLevels)
		}
		return MipRange{Base: baseMipLevel, Count: imageMipLevels - baseMipLevel}
	}
	if baseMipLevel+levelCount > imageMipLevels {
		fatal("ResolveMipRange", "range [%d,%d) exceeds image mip level count %d", baseMipLevel, baseMipLevel+levelCount, imageMipLevels)
	}
	return MipRange{Base: baseMipLevel, Count: levelCount}
}

// ResolveLayerRange is ResolveMipRange's array-layer counterpart, resolving
// REMAINING_ARRAY_LAYERS against the image's total array layer count.
func ResolveLayerRange(baseArrayLayer, layerCount, imageArrayLayers uint32) LayerRange {
	if layerCount == vkabi.RemainingArrayLayers {
		if baseArrayLayer > imageArrayLayers {
			fatal("ResolveLayerRange", "baseArrayLayer %d exceeds image array layer count %d", baseArrayLayer, imageArrayLayers)
		}
		return LayerRange{Base: baseArrayLayer, Count: imageArrayLayers - baseArrayLayer}
	}
	if baseArrayLayer+layerCount > imageArrayLayers {
		fatal("ResolveLayerRange", "range [%d,%d) exceeds image array layer count %d", baseArrayLayer, baseArrayLayer+layerCount, imageArrayLayers)
	}
	return LayerRange{Base: baseArrayLayer, Count: layerCount}
}

// ResolvedSubresourceRange is the fully-resolved form of
// VkImageSubresourceRange against a concrete image, ready to lower into the
// HAL's TextureRange.
type ResolvedSubresourceRange struct {
	Mips   MipRange
	Layers LayerRange
}

// ResolveSubresourceRange resolves both halves of a VkImageSubresourceRange
// against the owning image's mip and array layer counts.
func ResolveSubresourceRange(r vkabi.ImageSubresourceRange, imageMipLevels, imageArrayLayers uint32) ResolvedSubresourceRange {
	return ResolvedSubresourceRange{
		Mips:   ResolveMipRange(r.BaseMipLevel, r.LevelCount, imageMipLevels),
		Layers: ResolveLayerRange(r.BaseArrayLayer, r.LayerCount, imageArrayLayers),
	}
}
