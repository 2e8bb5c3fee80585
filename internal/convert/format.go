// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/vkabi"
)

// formatFromVulkan maps vkabi.Format to gputypes.TextureFormat, the mirror
// image of hal/vulkan/convert.go's textureFormatMap (which goes the other
// way, HAL -> raw Vulkan, for talking to a real driver underneath gputypes).
var formatFromVulkan = map[vkabi.Format]gputypes.TextureFormat{
	vkabi.FormatR8Unorm:     gputypes.TextureFormatR8Unorm,
	vkabi.FormatR8Snorm:     gputypes.TextureFormatR8Snorm,
	vkabi.FormatR8Uint:      gputypes.TextureFormatR8Uint,
	vkabi.FormatR8Sint:      gputypes.TextureFormatR8Sint,
	vkabi.FormatR8G8Unorm:   gputypes.TextureFormatRG8Unorm,
	vkabi.FormatR8G8Uint:    gputypes.TextureFormatRG8Uint,
	vkabi.FormatR8G8B8A8Unorm: gputypes.TextureFormatRGBA8Unorm,
	vkabi.FormatR8G8B8A8Snorm: gputypes.TextureFormatRGBA8Snorm,
	vkabi.FormatR8G8B8A8Uint:  gputypes.TextureFormatRGBA8Uint,
	vkabi.FormatR8G8B8A8Sint:  gputypes.TextureFormatRGBA8Sint,
	vkabi.FormatR8G8B8A8Srgb:  gputypes.TextureFormatRGBA8UnormSrgb,
	vkabi.FormatB8G8R8A8Unorm: gputypes.TextureFormatBGRA8Unorm,
	vkabi.FormatB8G8R8A8Srgb:  gputypes.TextureFormatBGRA8UnormSrgb,
	vkabi.FormatA2B10G10R10UnormPack32: gputypes.TextureFormatRGB10A2Unorm,
	vkabi.FormatR16Uint:       gputypes.TextureFormatR16Uint,
	vkabi.FormatR16Sint:       gputypes.TextureFormatR16Sint,
	vkabi.FormatR16Sfloat:     gputypes.TextureFormatR16Float,
	vkabi.FormatR16G16Sfloat:  gputypes.TextureFormatRG16Float,
	vkabi.FormatR16G16B16A16Uint:   gputypes.TextureFormatRGBA16Uint,
	vkabi.FormatR16G16B16A16Sint:   gputypes.TextureFormatRGBA16Sint,
	vkabi.FormatR16G16B16A16Sfloat: gputypes.TextureFormatRGBA16Float,
	vkabi.FormatR32Uint:       gputypes.TextureFormatR32Uint,
	vkabi.FormatR32Sint:       gputypes.TextureFormatR32Sint,
	vkabi.FormatR32Sfloat:     gputypes.TextureFormatR32Float,
	vkabi.FormatR32G32Sfloat:  gputypes.TextureFormatRG32Float,
	vkabi.FormatR32G32B32A32Uint:   gputypes.TextureFormatRGBA32Uint,
	vkabi.FormatR32G32B32A32Sint:   gputypes.TextureFormatRGBA32Sint,
	vkabi.FormatR32G32B32A32Sfloat: gputypes.TextureFormatRGBA32Float,
	vkabi.FormatD16Unorm:         gputypes.TextureFormatDepth16Unorm,
	vkabi.FormatX8D24UnormPack32: gputypes.TextureFormatDepth24Plus,
	vkabi.FormatD32Sfloat:        gputypes.TextureFormatDepth32Float,
	vkabi.FormatS8Uint:           gputypes.TextureFormatStencil8,
	vkabi.FormatD24UnormS8Uint:   gputypes.TextureFormatDepth24PlusStencil8,
	vkabi.FormatD32SfloatS8Uint:  gputypes.TextureFormatDepth32FloatStencil8,
	vkabi.FormatBC1RGBAUnormBlock: gputypes.TextureFormatBC1RGBAUnorm,
	vkabi.FormatBC3UnormBlock:     gputypes.TextureFormatBC3RGBAUnorm,
	vkabi.FormatBC7UnormBlock:     gputypes.TextureFormatBC7RGBAUnorm,
}

// formatToVulkan is the reverse lookup, built once from formatFromVulkan.
var formatToVulkan = invertFormatMap(formatFromVulkan)

func invertFormatMap(m map[vkabi.Format]gputypes.TextureFormat) map[gputypes.TextureFormat]vkabi.Format {
	inv := make(map[gputypes.TextureFormat]vkabi.Format, len(m))
	for k, v := range m {
		inv[v] = k
	}
	return inv
}

// FormatFromVulkan converts a Vulkan format to its HAL equivalent.
// FormatUndefined is accepted and maps to gputypes.TextureFormatUndefined -
// some create-infos (e.g. depth-stencil-less framebuffers) legitimately
// carry it.
func FormatFromVulkan(f vkabi.Format) gputypes.TextureFormat {
	if f == vkabi.FormatUndefined {
		return gputypes.TextureFormatUndefined
	}
	hf, ok := formatFromVulkan[f]
	if !ok {
		fatal("FormatFromVulkan", "unsupported VkFormat %d", f)
	}
	return hf
}

// FormatToVulkan converts a HAL format back to Vulkan, the inverse used by
// vkGetPhysicalDeviceFormatProperties and swapchain image format reporting.
func FormatToVulkan(f gputypes.TextureFormat) vkabi.Format {
	if f == gputypes.TextureFormatUndefined {
		return vkabi.FormatUndefined
	}
	vf, ok := formatToVulkan[f]
	if !ok {
		fatal("FormatToVulkan", "HAL format %v has no Vulkan equivalent", f)
	}
	return vf
}

// FormatProperties implements vkGetPhysicalDeviceFormatProperties by
// round-tripping HAL capability flags through image_features_from_hal /
// buffer_features_from_hal (conv.rs) into VkFormatFeatureFlags.
func FormatProperties(caps hal.TextureFormatCapabilities) vkabi.FormatProperties {
	var optimal vkabi.FormatFeatureFlags
	if caps.Flags&hal.TextureFormatCapabilitySampled != 0 {
		optimal |= vkabi.FormatFeatureSampledImage
	}
	if caps.Flags&hal.TextureFormatCapabilityStorage != 0 {
		optimal |= vkabi.FormatFeatureStorageImage
	}
	if caps.Flags&hal.TextureFormatCapabilityStorageReadWrite != 0 {
		optimal |= vkabi.FormatFeatureStorageImageAtomic
	}
	if caps.Flags&hal.TextureFormatCapabilityRenderAttachment != 0 {
		optimal |= vkabi.FormatFeatureColorAttachment
	}
	if caps.Flags&hal.TextureFormatCapabilityBlendable != 0 {
		optimal |= vkabi.FormatFeatureColorAttachmentBlend
	}
	return vkabi.FormatProperties{
		OptimalTilingFeatures: optimal,
		LinearTilingFeatures:  optimal,
	}
}
