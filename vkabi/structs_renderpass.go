// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkabi

// AttachmentDescription mirrors VkAttachmentDescription.
type AttachmentDescription struct {
	Flags          Flags
	Format         Format
	Samples        SampleCountFlags
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

// AttachmentReference mirrors VkAttachmentReference.
type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

// SubpassDescription mirrors VkSubpassDescription.
type SubpassDescription struct {
	Flags                Flags
	PipelineBindPoint    PipelineBindPoint
	InputAttachments     []AttachmentReference
	ColorAttachments     []AttachmentReference
	ResolveAttachments   []AttachmentReference
	DepthStencilAttachment *AttachmentReference
	PreserveAttachments  []uint32
}

// SubpassDependency mirrors VkSubpassDependency.
type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    PipelineStageFlags
	DstStageMask    PipelineStageFlags
	SrcAccessMask   AccessFlags
	DstAccessMask   AccessFlags
	DependencyFlags Flags
}

// RenderPassCreateInfo mirrors VkRenderPassCreateInfo.
type RenderPassCreateInfo struct {
	SType        StructureType
	Flags        Flags
	Attachments  []AttachmentDescription
	Subpasses    []SubpassDescription
	Dependencies []SubpassDependency
}

// FramebufferCreateInfo mirrors VkFramebufferCreateInfo.
type FramebufferCreateInfo struct {
	SType       StructureType
	Flags       Flags
	RenderPass  RenderPass
	Attachments []ImageView
	Width       uint32
	Height      uint32
	Layers      uint32
}

// RenderPassBeginInfo mirrors VkRenderPassBeginInfo.
type RenderPassBeginInfo struct {
	SType           StructureType
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValues     []ClearValue
}
