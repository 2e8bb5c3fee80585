// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// RenderPass wraps the HAL's opaque render pass object plus the assembled
// descriptor internal/passasm produced, kept around because
// vkCmdBeginRenderPass must reconstruct a dynamic-rendering
// hal.RenderPassDescriptor (load/store ops, clear values) from the
// image-independent object this create call built - the HAL's render-pass
// extension (SPEC_FULL.md §4.8) is a reusable description, not something
// BeginRenderPass can hand to CommandEncoder directly.
type RenderPass struct {
	HAL        hal.RenderPass
	Descriptor *hal.RenderPassCreateDescriptor
}

// Framebuffer binds a RenderPass's attachment slots to concrete image views.
type Framebuffer struct {
	HAL         hal.Framebuffer
	RenderPass  *RenderPass
	Attachments []*ImageView
	Width       uint32
	Height      uint32
	Layers      uint32
}
