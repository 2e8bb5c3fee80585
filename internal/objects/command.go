// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// CommandPool owns a set of dispatchable CommandBuffer handles, mirroring
// VkCommandPool. Buffers holds the handles (not the objects) so
// vkResetCommandPool/vkDestroyCommandPool can release them through
// internal/handle without this package importing it.
type CommandPool struct {
	HAL     hal.CommandPool
	Gpu     *Gpu
	Buffers []uintptr
}

// CommandBuffer bridges the Vulkan persistent-pool recording model onto the
// HAL's single-shot CommandEncoder: a command buffer owns an Encoder from
// vkBeginCommandBuffer until vkEndCommandBuffer swaps it for the Recorded
// hal.CommandBuffer that EndEncoding() produced, which is what submission
// actually uses - the Placeholder token handed back by the pool's own
// Allocate stays around only so Free/Reset can name the slot.
type CommandBuffer struct {
	Pool        *CommandPool
	Placeholder hal.CommandBuffer

	Encoder  hal.CommandEncoder
	Recorded hal.CommandBuffer

	RenderEncoder  hal.RenderPassEncoder
	ComputeEncoder hal.ComputePassEncoder

	// Render pass instance state, valid between vkCmdBeginRenderPass and
	// vkCmdEndRenderPass. AttachmentTouched tracks which framebuffer
	// attachments have already been entered once in this instance, since a
	// subpass after the first must load rather than re-clear them - the
	// HAL's dynamic RenderPassDescriptor has no native multi-subpass
	// concept to do this for the core automatically.
	RenderPass        *RenderPass
	Framebuffer       *Framebuffer
	CurrentSubpass    uint32
	AttachmentTouched []bool
}

// Reset clears a command buffer's recording state back to initial, mirroring
// vkResetCommandBuffer / the implicit reset vkBeginCommandBuffer performs on
// an already-recorded buffer.
func (cb *CommandBuffer) Reset() {
	cb.Encoder = nil
	cb.Recorded = nil
	cb.RenderEncoder = nil
	cb.ComputeEncoder = nil
	cb.RenderPass = nil
	cb.Framebuffer = nil
	cb.CurrentSubpass = 0
	cb.AttachmentTouched = nil
}
