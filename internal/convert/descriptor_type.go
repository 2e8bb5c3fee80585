// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/vkabi"
)

// BindGroupLayoutEntryFromVulkan projects a VkDescriptorSetLayoutBinding
// onto the single gputypes.BindGroupLayoutEntry shape the HAL expects, where
// exactly one of Buffer/Sampler/Texture/StorageTexture is non-nil depending
// on descriptor type.
//
// COMBINED_IMAGE_SAMPLER has no single-entry HAL equivalent - WebGPU always
// binds samplers and sampled textures separately - so it is split into two
// synthetic entries by the caller (internal/objects) rather than handled
// here; this function only handles descriptor types with a 1:1 HAL binding.
func BindGroupLayoutEntryFromVulkan(b vkabi.DescriptorSetLayoutBinding) gputypes.BindGroupLayoutEntry {
	entry := gputypes.BindGroupLayoutEntry{
		Binding:    b.Binding,
		Visibility: shaderStageFromVulkan(b.StageFlags),
	}
	switch b.DescriptorType {
	case vkabi.DescriptorTypeUniformBuffer, vkabi.DescriptorTypeUniformBufferDynamic:
		entry.Buffer = &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}
	case vkabi.DescriptorTypeStorageBuffer, vkabi.DescriptorTypeStorageBufferDynamic:
		entry.Buffer = &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}
	case vkabi.DescriptorTypeSampler:
		entry.Sampler = &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering}
	case vkabi.DescriptorTypeSampledImage:
		entry.Texture = &gputypes.TextureBindingLayout{}
	case vkabi.DescriptorTypeStorageImage:
		entry.StorageTexture = &gputypes.StorageTextureBindingLayout{}
	default:
		fatal("BindGroupLayoutEntryFromVulkan", "descriptor type %d requires splitting or is not implemented", b.DescriptorType)
	}
	return entry
}

// shaderStageFromVulkan converts VkShaderStageFlags to gputypes.ShaderStage.
// Geometry and tessellation stages have no HAL equivalent and are dropped;
// a descriptor visible ONLY to those stages (and not vertex/fragment/compute)
// is a precondition violation since it would otherwise become invisible to
// every HAL stage.
func shaderStageFromVulkan(mask vkabi.ShaderStageFlags) gputypes.ShaderStage {
	var out gputypes.ShaderStage
	if mask&vkabi.ShaderStageVertex != 0 {
		out |= gputypes.ShaderStageVertex
	}
	if mask&vkabi.ShaderStageFragment != 0 {
		out |= gputypes.ShaderStageFragment
	}
	if mask&vkabi.ShaderStageCompute != 0 {
		out |= gputypes.ShaderStageCompute
	}
	if out == 0 {
		fatal("shaderStageFromVulkan", "stage mask %#x maps to no HAL-visible stage", mask)
	}
	return out
}

// AddressModeFromVulkan converts VkSamplerAddressMode to gputypes.AddressMode.
// CLAMP_TO_BORDER and MIRROR_CLAMP_TO_EDGE have no HAL equivalent.
func AddressModeFromVulkan(m vkabi.SamplerAddressMode) gputypes.AddressMode {
	switch m {
	case vkabi.SamplerAddressModeRepeat:
		return gputypes.AddressModeRepeat
	case vkabi.SamplerAddressModeMirroredRepeat:
		return gputypes.AddressModeMirrorRepeat
	case vkabi.SamplerAddressModeClampToEdge:
		return gputypes.AddressModeClampToEdge
	default:
		fatal("AddressModeFromVulkan", "address mode %d has no HAL equivalent", m)
		return gputypes.AddressModeClampToEdge
	}
}

// FilterModeFromVulkan converts VkFilter to gputypes.FilterMode.
func FilterModeFromVulkan(f vkabi.Filter) gputypes.FilterMode {
	switch f {
	case vkabi.FilterNearest:
		return gputypes.FilterModeNearest
	case vkabi.FilterLinear:
		return gputypes.FilterModeLinear
	default:
		fatal("FilterModeFromVulkan", "unrecognized VkFilter %d", f)
		return gputypes.FilterModeNearest
	}
}

// MipmapFilterModeFromVulkan converts VkSamplerMipmapMode to gputypes.FilterMode.
func MipmapFilterModeFromVulkan(m vkabi.SamplerMipmapMode) gputypes.FilterMode {
	switch m {
	case vkabi.SamplerMipmapModeNearest:
		return gputypes.FilterModeNearest
	case vkabi.SamplerMipmapModeLinear:
		return gputypes.FilterModeLinear
	default:
		fatal("MipmapFilterModeFromVulkan", "unrecognized VkSamplerMipmapMode %d", m)
		return gputypes.FilterModeNearest
	}
}
