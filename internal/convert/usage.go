// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/vkabi"
)

// BufferUsageFromVulkan converts VkBufferUsageFlags to the HAL's
// gputypes.BufferUsage, bit by bit, the same shape as
// hal/vulkan/convert.go's bufferUsageToVk in the opposite direction.
func BufferUsageFromVulkan(usage vkabi.BufferUsageFlags) gputypes.BufferUsage {
	var out gputypes.BufferUsage
	if usage&vkabi.BufferUsageTransferSrc != 0 {
		out |= gputypes.BufferUsageCopySrc
	}
	if usage&vkabi.BufferUsageTransferDst != 0 {
		out |= gputypes.BufferUsageCopyDst
	}
	if usage&vkabi.BufferUsageIndexBuffer != 0 {
		out |= gputypes.BufferUsageIndex
	}
	if usage&vkabi.BufferUsageVertexBuffer != 0 {
		out |= gputypes.BufferUsageVertex
	}
	if usage&vkabi.BufferUsageUniformBuffer != 0 {
		out |= gputypes.BufferUsageUniform
	}
	if usage&vkabi.BufferUsageStorageBuffer != 0 {
		out |= gputypes.BufferUsageStorage
	}
	if usage&vkabi.BufferUsageIndirectBuffer != 0 {
		out |= gputypes.BufferUsageIndirect
	}
	return out
}

// ImageUsageFromVulkan converts VkImageUsageFlags to gputypes.TextureUsage.
//
// TRANSIENT_ATTACHMENT and INPUT_ATTACHMENT have no HAL equivalent - the
// original (conv.rs's map_image_usage) leaves them unimplemented. This
// reimplementation drops them silently rather than panicking: an
// application may legally set them alongside bits this driver does support,
// and transient/input-attachment semantics are pure optimizations a correct
// (if less efficient) implementation can ignore. This is the "documented
// portability gap" spec.md §4.4 calls out for the render-pass assembler.
func ImageUsageFromVulkan(usage vkabi.ImageUsageFlags) gputypes.TextureUsage {
	var out gputypes.TextureUsage
	if usage&vkabi.ImageUsageTransferSrc != 0 {
		out |= gputypes.TextureUsageCopySrc
	}
	if usage&vkabi.ImageUsageTransferDst != 0 {
		out |= gputypes.TextureUsageCopyDst
	}
	if usage&vkabi.ImageUsageSampled != 0 {
		out |= gputypes.TextureUsageTextureBinding
	}
	if usage&vkabi.ImageUsageStorage != 0 {
		out |= gputypes.TextureUsageStorageBinding
	}
	if usage&vkabi.ImageUsageColorAttachment != 0 {
		out |= gputypes.TextureUsageRenderAttachment
	}
	if usage&vkabi.ImageUsageDepthStencilAttachment != 0 {
		out |= gputypes.TextureUsageRenderAttachment
	}
	return out
}

// MemoryPropertiesFromVulkan converts VkMemoryPropertyFlags to the HAL's
// memory-type classification used when selecting a memory type index.
func MemoryPropertiesFromVulkan(flags vkabi.MemoryPropertyFlags) vkabi.MemoryPropertyFlags {
	return flags // HAL and Vulkan memory property bits are 1:1 by construction here.
}
