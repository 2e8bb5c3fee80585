// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import (
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/vkabi"
)

// DescriptorBindingKind distinguishes a VkDescriptorSetLayoutBinding that
// maps onto a single HAL bind-group-layout entry from one that needed to be
// split across two, per internal/convert.BindGroupLayoutEntryFromVulkan's
// doc comment.
type DescriptorBindingKind uint8

const (
	// BindingDirect has a 1:1 HAL entry at HALBinding.
	BindingDirect DescriptorBindingKind = iota
	// BindingCombinedImageSampler has no single-entry HAL equivalent and was
	// split into a sampler entry at HALSamplerBinding and a texture entry
	// at HALTextureBinding.
	BindingCombinedImageSampler
)

// DescriptorBinding records how one Vulkan binding number within a
// descriptor set layout was projected onto the underlying HAL bind group
// layout, so a later vkUpdateDescriptorSets knows which HAL binding
// number(s) a given Vulkan binding actually landed on.
type DescriptorBinding struct {
	VulkanBinding     uint32
	Type              vkabi.DescriptorType
	Kind              DescriptorBindingKind
	HALBinding        uint32
	HALSamplerBinding uint32
	HALTextureBinding uint32
}

// DescriptorSetLayout wraps the HAL bind group layout plus the Vulkan ->
// HAL binding-number table GfxUpdateDescriptorSets needs to target writes
// correctly.
type DescriptorSetLayout struct {
	HAL      hal.BindGroupLayout
	Bindings []DescriptorBinding
}

// Binding looks up the binding-number mapping for a Vulkan binding, fatal
// at the call site (via the zero-value ok flag) if the set layout was never
// told about it.
func (l *DescriptorSetLayout) Binding(vulkanBinding uint32) (DescriptorBinding, bool) {
	for _, b := range l.Bindings {
		if b.VulkanBinding == vulkanBinding {
			return b, true
		}
	}
	return DescriptorBinding{}, false
}
