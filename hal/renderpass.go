package hal

import "github.com/gogpu/gputypes"

// AttachmentDescriptor mirrors VkAttachmentDescription: one slot in a
// render pass's flat attachment array, described independent of any
// concrete image.
type AttachmentDescriptor struct {
	// Format is the attachment's texture format.
	Format gputypes.TextureFormat

	// Samples is the attachment's sample count.
	Samples uint32

	// LoadOp specifies what happens to existing contents at pass start.
	LoadOp gputypes.LoadOp

	// StoreOp specifies what happens to contents at pass end.
	StoreOp gputypes.StoreOp

	// StencilLoadOp is the stencil-aspect load op, for depth/stencil formats.
	StencilLoadOp gputypes.LoadOp

	// StencilStoreOp is the stencil-aspect store op, for depth/stencil formats.
	StencilStoreOp gputypes.StoreOp

	// InitialLayout is the assumed layout of the image when the pass begins.
	InitialLayout ImageLayout

	// FinalLayout is the layout the image is transitioned to when the
	// pass ends.
	FinalLayout ImageLayout
}

// ImageLayout is the HAL's coarse counterpart to VkImageLayout: enough
// distinctions for subpass dependency bookkeeping, not a full usage model.
type ImageLayout uint8

const (
	ImageLayoutUndefined ImageLayout = iota
	ImageLayoutGeneral
	ImageLayoutColorAttachment
	ImageLayoutDepthStencilAttachment
	ImageLayoutDepthStencilReadOnly
	ImageLayoutShaderReadOnly
	ImageLayoutTransferSrc
	ImageLayoutTransferDst
	ImageLayoutPresentSrc
)

// AttachmentReference mirrors VkAttachmentReference: an index into the
// render pass's attachment array plus the layout it should be in during a
// given subpass.
type AttachmentReference struct {
	// Attachment is the index into RenderPassDescriptor.Attachments, or
	// AttachmentUnused if this reference slot is not used.
	Attachment uint32

	// Layout is the layout the attachment must be in during the subpass.
	Layout ImageLayout
}

// AttachmentUnused marks an AttachmentReference slot as unused, mirroring
// VK_ATTACHMENT_UNUSED.
const AttachmentUnused uint32 = 0xFFFFFFFF

// SubpassDescriptor mirrors VkSubpassDescription.
type SubpassDescriptor struct {
	// InputAttachments are read by shaders in this subpass.
	InputAttachments []AttachmentReference

	// ColorAttachments are written by this subpass's fragment shader.
	ColorAttachments []AttachmentReference

	// ResolveAttachments, if non-empty, must have the same length as
	// ColorAttachments and receives the resolved multisample result.
	ResolveAttachments []AttachmentReference

	// DepthStencilAttachment is the depth/stencil target, or nil if none.
	DepthStencilAttachment *AttachmentReference

	// PreserveAttachments lists attachment indices whose contents must
	// survive this subpass untouched even though it does not reference them.
	PreserveAttachments []uint32
}

// SubpassExternal marks a SubpassDependency endpoint as outside the render
// pass, mirroring VK_SUBPASS_EXTERNAL.
const SubpassExternal uint32 = 0xFFFFFFFF

// SubpassDependency mirrors VkSubpassDependency: an execution and memory
// dependency between two subpasses (or between a subpass and the work
// outside the render pass).
type SubpassDependency struct {
	SrcSubpass    uint32
	DstSubpass    uint32
	SrcStageMask  PipelineStage
	DstStageMask  PipelineStage
	SrcAccessMask Access
	DstAccessMask Access
}

// PipelineStage is the HAL's stage-flag counterpart to VkPipelineStageFlags,
// carried only for subpass dependency bookkeeping; hal's CommandEncoder
// barriers elsewhere are usage-transition based; there is no general
// stage/access pipeline barrier underneath.
type PipelineStage uint32

const (
	PipelineStageTopOfPipe PipelineStage = 1 << iota
	PipelineStageDrawIndirect
	PipelineStageVertexInput
	PipelineStageVertexShader
	PipelineStageFragmentShader
	PipelineStageEarlyFragmentTests
	PipelineStageLateFragmentTests
	PipelineStageColorAttachmentOutput
	PipelineStageComputeShader
	PipelineStageTransfer
	PipelineStageBottomOfPipe
	PipelineStageHost
)

// Access is the HAL's access-flag counterpart to VkAccessFlags.
type Access uint32

const (
	AccessIndirectCommandRead Access = 1 << iota
	AccessIndexRead
	AccessVertexAttributeRead
	AccessUniformRead
	AccessInputAttachmentRead
	AccessShaderRead
	AccessShaderWrite
	AccessColorAttachmentRead
	AccessColorAttachmentWrite
	AccessDepthStencilAttachmentRead
	AccessDepthStencilAttachmentWrite
	AccessTransferRead
	AccessTransferWrite
	AccessHostRead
	AccessHostWrite
	AccessMemoryRead
	AccessMemoryWrite
)

// RenderPassCreateDescriptor mirrors VkRenderPassCreateInfo: flat, parallel
// arrays describing attachments, subpasses, and the dependencies between
// them. Named distinctly from the existing RenderPassDescriptor
// (descriptor.go), which binds concrete TextureViews per encode for
// dynamic rendering - this one is Vulkan's image-independent object model.
type RenderPassCreateDescriptor struct {
	Label        string
	Attachments  []AttachmentDescriptor
	Subpasses    []SubpassDescriptor
	Dependencies []SubpassDependency
}

// RenderPass is an opaque, reusable description of a render pass's
// attachment and subpass structure, separate from any concrete image -
// Vulkan's object model, not hal's existing dynamic-rendering-only
// RenderPassDescriptor (descriptor.go) which binds concrete TextureViews
// per encode.
type RenderPass interface {
	Resource
}

// FramebufferDescriptor mirrors VkFramebufferCreateInfo: a RenderPass plus
// the concrete TextureViews that fill its attachment slots.
type FramebufferDescriptor struct {
	Label       string
	RenderPass  RenderPass
	Attachments []TextureView
	Width       uint32
	Height      uint32
	Layers      uint32
}

// Framebuffer binds a RenderPass's attachment slots to concrete texture
// views, mirroring VkFramebuffer.
type Framebuffer interface {
	Resource
}
