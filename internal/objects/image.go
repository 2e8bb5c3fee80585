// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import (
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/vkabi"
)

// Image is the two-state (Unbound/Bound) wrapper spec.md §3.2 requires,
// with the two extra non-HAL fields (MipLevels, ArrayLayers) the spec
// calls out: they resolve the Vulkan REMAINING_MIP_LEVELS/
// REMAINING_ARRAY_LAYERS sentinels when mapping subresources, since the
// HAL itself does not track them on a bound texture.
type Image struct {
	ImageType   vkabi.ImageType
	Flags       vkabi.ImageCreateFlags
	Format      vkabi.Format
	Extent      vkabi.Extent3D
	MipLevels   uint32
	ArrayLayers uint32
	Samples     vkabi.SampleCountFlags
	Tiling      vkabi.ImageTiling
	Usage       vkabi.ImageUsageFlags

	bound bool
	HAL   hal.Texture
}

// NewImage constructs an Unbound image from a VkImageCreateInfo.
func NewImage(info *vkabi.ImageCreateInfo) *Image {
	return &Image{
		ImageType:   info.ImageType,
		Flags:       info.Flags,
		Format:      info.Format,
		Extent:      info.Extent,
		MipLevels:   info.MipLevels,
		ArrayLayers: info.ArrayLayers,
		Samples:     info.Samples,
		Tiling:      info.Tiling,
		Usage:       info.Usage,
	}
}

// IsBound reports whether memory has been bound to this image.
func (img *Image) IsBound() bool { return img.bound }

// Bind transitions Unbound -> Bound. Binding an already-bound image is a
// fatal precondition violation per spec.md §3.2.
func (img *Image) Bind(h hal.Texture) {
	if img.bound {
		panic("vkBindImageMemory: image is already bound")
	}
	img.HAL = h
	img.bound = true
}

// ImageView is a non-dispatchable wrapper binding a swizzle and resolved
// subresource range to a bound image.
type ImageView struct {
	Image  *Image
	Format vkabi.Format
	HAL    hal.TextureView
}
