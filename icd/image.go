// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/internal/convert"
	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/vkabi"
)

// GfxCreateImage implements vkCreateImage, producing an Unbound image per
// spec.md §3.2.
func GfxCreateImage(info *vkabi.ImageCreateInfo) (vkabi.Image, vkabi.Result) {
	h := handle.MakeNonDispatchable(*objects.NewImage(info))
	return vkabi.Image(h), vkabi.Success
}

// GfxDestroyImage implements vkDestroyImage.
func GfxDestroyImage(dev vkabi.Device, img vkabi.Image) {
	if handle.IsNullNonDispatchable(uintptr(img)) {
		return
	}
	i := handle.ReleaseNonDispatchable[objects.Image](uintptr(img))
	if i.IsBound() {
		handle.DerefDispatchable[objects.Gpu](uintptr(dev)).HAL.DestroyTexture(i.HAL)
	}
}

// GfxGetImageMemoryRequirements implements vkGetImageMemoryRequirements.
// Valid on an Unbound image per spec.md §3.2; this driver's synthetic
// VkDeviceMemory accepts any image, so every memory type index is reported
// compatible.
func GfxGetImageMemoryRequirements(img vkabi.Image) vkabi.MemoryRequirements {
	i := handle.DerefNonDispatchable[objects.Image](uintptr(img))
	texelSize := uint64(4) // conservative upper bound; this core does not track per-format byte size
	size := uint64(i.Extent.Width) * uint64(i.Extent.Height) * uint64(i.Extent.Depth) * uint64(i.ArrayLayers) * texelSize
	return vkabi.MemoryRequirements{
		Size:           size,
		Alignment:      256,
		MemoryTypeBits: 0xFFFFFFFF,
	}
}

// imageKind decodes an objects.Image's shape the way internal/convert's
// image-kind decoder expects: cube-compatibility from the create flags, the
// sample count already resolved to a scalar.
func imageKind(i *objects.Image) convert.ImageKind {
	cubeCompatible := i.Flags&vkabi.ImageCreateCubeCompatible != 0
	return convert.DecodeImageKind(i.ImageType, cubeCompatible, i.ArrayLayers, i.Samples)
}

// textureDepthOrArrayLayers folds Vulkan's separate Extent.Depth and
// ArrayLayers fields into the HAL's single DepthOrArrayLayers slot, the way
// WebGPU's texture size does: 3D images use depth, every 2D/1D/cube shape
// uses the array layer count.
func textureDepthOrArrayLayers(i *objects.Image, kind convert.ImageKind) uint32 {
	if kind == convert.KindD3 {
		return i.Extent.Depth
	}
	return i.ArrayLayers
}

// GfxBindImageMemory implements vkBindImageMemory: combines the image's
// spec with the device and creates the real HAL resource, per spec.md
// §3.2's Unbound -> Bound transition.
func GfxBindImageMemory(dev vkabi.Device, img vkabi.Image, mem vkabi.DeviceMemory, offset uint64) vkabi.Result {
	_ = mem
	_ = offset
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	i := handle.DerefNonDispatchable[objects.Image](uintptr(img))
	kind := imageKind(i)

	halTex, err := gpu.HAL.CreateTexture(&hal.TextureDescriptor{
		Size: hal.Extent3D{
			Width:              i.Extent.Width,
			Height:             i.Extent.Height,
			DepthOrArrayLayers: textureDepthOrArrayLayers(i, kind),
		},
		MipLevelCount: i.MipLevels,
		SampleCount:   convert.SampleCountFromVulkan(i.Samples),
		Dimension:     kind.TextureDimension(),
		Format:        convert.FormatFromVulkan(i.Format),
		Usage:         convert.ImageUsageFromVulkan(i.Usage),
	})
	if err != nil {
		return resultFromHALError(err)
	}
	i.Bind(halTex)
	return vkabi.Success
}

// GfxCreateImageView implements vkCreateImageView. Non-identity component
// mappings are not implemented by this HAL (internal/convert.Swizzle's doc
// comment explains why) and are rejected as a precondition violation rather
// than silently producing a view that samples the wrong channels.
func GfxCreateImageView(dev vkabi.Device, info *vkabi.ImageViewCreateInfo) (vkabi.ImageView, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	i := handle.DerefNonDispatchable[objects.Image](uintptr(info.Image))
	if !i.IsBound() {
		fatalf("vkCreateImageView", "image view created over an unbound image")
	}
	convert.RequireIdentitySwizzle(convert.SwizzleFromVulkan(info.Components))

	resolved := convert.ResolveSubresourceRange(info.SubresourceRange, i.MipLevels, i.ArrayLayers)

	halView, err := gpu.HAL.CreateTextureView(i.HAL, &hal.TextureViewDescriptor{
		Format:          convert.FormatFromVulkan(info.Format),
		Dimension:       viewDimensionFromViewType(info.ViewType),
		Aspect:          convert.AspectFromVulkan(info.SubresourceRange.AspectMask),
		BaseMipLevel:    resolved.Mips.Base,
		MipLevelCount:   resolved.Mips.Count,
		BaseArrayLayer:  resolved.Layers.Base,
		ArrayLayerCount: resolved.Layers.Count,
	})
	if err != nil {
		return 0, resultFromHALError(err)
	}

	h := handle.MakeNonDispatchable(objects.ImageView{Image: i, Format: info.Format, HAL: halView})
	return vkabi.ImageView(h), vkabi.Success
}

// viewDimensionFromViewType maps VkImageViewType onto gputypes.
// TextureViewDimension; the two enums enumerate the same seven shapes in a
// different order.
func viewDimensionFromViewType(t vkabi.ImageViewType) gputypes.TextureViewDimension {
	switch t {
	case vkabi.ImageViewType1D:
		return gputypes.TextureViewDimension1D
	case vkabi.ImageViewType2D:
		return gputypes.TextureViewDimension2D
	case vkabi.ImageViewType3D:
		return gputypes.TextureViewDimension3D
	case vkabi.ImageViewTypeCube:
		return gputypes.TextureViewDimensionCube
	case vkabi.ImageViewType1DArray:
		return gputypes.TextureViewDimension1D
	case vkabi.ImageViewType2DArray:
		return gputypes.TextureViewDimension2DArray
	case vkabi.ImageViewTypeCubeArray:
		return gputypes.TextureViewDimensionCubeArray
	default:
		fatalf("vkCreateImageView", "unrecognized VkImageViewType %d", t)
		return gputypes.TextureViewDimensionUndefined
	}
}

// GfxDestroyImageView implements vkDestroyImageView.
func GfxDestroyImageView(dev vkabi.Device, view vkabi.ImageView) {
	if handle.IsNullNonDispatchable(uintptr(view)) {
		return
	}
	v := handle.ReleaseNonDispatchable[objects.ImageView](uintptr(view))
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	gpu.HAL.DestroyTextureView(v.HAL)
}
