// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package passasm

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/internal/convert"
	"github.com/gogpu/vkicd/vkabi"
)

// AssembleRenderPass decodes a VkRenderPassCreateInfo into a
// hal.RenderPassCreateDescriptor, per spec.md §4.4: attachments translate
// one to one, and each subpass eagerly materializes its four owned
// reference arrays (input, color, depth/stencil, preserve) rather than
// keeping them as slices into the original create-info.
func AssembleRenderPass(info *vkabi.RenderPassCreateInfo) *hal.RenderPassCreateDescriptor {
	desc := &hal.RenderPassCreateDescriptor{
		Attachments:  make([]hal.AttachmentDescriptor, len(info.Attachments)),
		Subpasses:    make([]hal.SubpassDescriptor, len(info.Subpasses)),
		Dependencies: make([]hal.SubpassDependency, len(info.Dependencies)),
	}

	for i, a := range info.Attachments {
		desc.Attachments[i] = hal.AttachmentDescriptor{
			Format:         convert.FormatFromVulkan(a.Format),
			Samples:        uint32(a.Samples),
			LoadOp:         convert.LoadOpFromVulkan(a.LoadOp),
			StoreOp:        convert.StoreOpFromVulkan(a.StoreOp),
			StencilLoadOp:  convert.LoadOpFromVulkan(a.StencilLoadOp),
			StencilStoreOp: convert.StoreOpFromVulkan(a.StencilStoreOp),
			InitialLayout:  imageLayoutFromVulkan(a.InitialLayout),
			FinalLayout:    imageLayoutFromVulkan(a.FinalLayout),
		}
	}

	for i, s := range info.Subpasses {
		sub := hal.SubpassDescriptor{
			InputAttachments:    make([]hal.AttachmentReference, len(s.InputAttachments)),
			ColorAttachments:    make([]hal.AttachmentReference, len(s.ColorAttachments)),
			PreserveAttachments: append([]uint32(nil), s.PreserveAttachments...),
		}
		for j, ref := range s.InputAttachments {
			sub.InputAttachments[j] = assembleReference(ref)
		}
		for j, ref := range s.ColorAttachments {
			sub.ColorAttachments[j] = assembleReference(ref)
		}
		if len(s.ResolveAttachments) > 0 {
			if len(s.ResolveAttachments) != len(s.ColorAttachments) {
				panic("vkCreateRenderPass: resolve attachment count must match color attachment count")
			}
			sub.ResolveAttachments = make([]hal.AttachmentReference, len(s.ResolveAttachments))
			for j, ref := range s.ResolveAttachments {
				sub.ResolveAttachments[j] = assembleReference(ref)
			}
		}
		if s.DepthStencilAttachment != nil {
			ref := assembleReference(*s.DepthStencilAttachment)
			sub.DepthStencilAttachment = &ref
		}
		desc.Subpasses[i] = sub
	}

	for i, d := range info.Dependencies {
		desc.Dependencies[i] = hal.SubpassDependency{
			SrcSubpass:    d.SrcSubpass,
			DstSubpass:    d.DstSubpass,
			SrcStageMask:  pipelineStageFromVulkan(d.SrcStageMask),
			DstStageMask:  pipelineStageFromVulkan(d.DstStageMask),
			SrcAccessMask: accessFromVulkan(d.SrcAccessMask),
			DstAccessMask: accessFromVulkan(d.DstAccessMask),
		}
	}

	return desc
}

func assembleReference(ref vkabi.AttachmentReference) hal.AttachmentReference {
	return hal.AttachmentReference{
		Attachment: ref.Attachment,
		Layout:     imageLayoutFromVulkan(ref.Layout),
	}
}

// RenderPassTargetFormats resolves the color and depth/stencil attachment
// formats a subpass renders to, by walking the owned subpass reference
// array this file just built - the lookup AssembleGraphicsPipelines'
// Resolver.RenderPassTargets needs, since VkGraphicsPipelineCreateInfo
// itself carries no target-format list (Vulkan derives it from the render
// pass + subpass instead).
func RenderPassTargetFormats(desc *hal.RenderPassCreateDescriptor, subpass uint32) (color []gputypes.TextureFormat, depthStencil *gputypes.TextureFormat) {
	if int(subpass) >= len(desc.Subpasses) {
		panic("vkCreateGraphicsPipelines: subpass index out of range for render pass")
	}
	sp := desc.Subpasses[subpass]
	color = make([]gputypes.TextureFormat, len(sp.ColorAttachments))
	for i, ref := range sp.ColorAttachments {
		if ref.Attachment == hal.AttachmentUnused {
			continue
		}
		color[i] = desc.Attachments[ref.Attachment].Format
	}
	if sp.DepthStencilAttachment != nil && sp.DepthStencilAttachment.Attachment != hal.AttachmentUnused {
		format := desc.Attachments[sp.DepthStencilAttachment.Attachment].Format
		depthStencil = &format
	}
	return color, depthStencil
}

func imageLayoutFromVulkan(l vkabi.ImageLayout) hal.ImageLayout {
	switch l {
	case vkabi.ImageLayoutUndefined, vkabi.ImageLayoutPreinitialized:
		return hal.ImageLayoutUndefined
	case vkabi.ImageLayoutGeneral:
		return hal.ImageLayoutGeneral
	case vkabi.ImageLayoutColorAttachmentOptimal:
		return hal.ImageLayoutColorAttachment
	case vkabi.ImageLayoutDepthStencilAttachmentOptimal:
		return hal.ImageLayoutDepthStencilAttachment
	case vkabi.ImageLayoutDepthStencilReadOnlyOptimal:
		return hal.ImageLayoutDepthStencilReadOnly
	case vkabi.ImageLayoutShaderReadOnlyOptimal:
		return hal.ImageLayoutShaderReadOnly
	case vkabi.ImageLayoutTransferSrcOptimal:
		return hal.ImageLayoutTransferSrc
	case vkabi.ImageLayoutTransferDstOptimal:
		return hal.ImageLayoutTransferDst
	case vkabi.ImageLayoutPresentSrcKHR:
		return hal.ImageLayoutPresentSrc
	default:
		panic("vkCreateRenderPass: image layout has no HAL equivalent")
	}
}

func pipelineStageFromVulkan(mask vkabi.PipelineStageFlags) hal.PipelineStage {
	var out hal.PipelineStage
	add := func(bit vkabi.PipelineStageFlags, target hal.PipelineStage) {
		if mask&bit != 0 {
			out |= target
		}
	}
	add(vkabi.PipelineStageTopOfPipe, hal.PipelineStageTopOfPipe)
	add(vkabi.PipelineStageDrawIndirect, hal.PipelineStageDrawIndirect)
	add(vkabi.PipelineStageVertexInput, hal.PipelineStageVertexInput)
	add(vkabi.PipelineStageVertexShader, hal.PipelineStageVertexShader)
	add(vkabi.PipelineStageFragmentShader, hal.PipelineStageFragmentShader)
	add(vkabi.PipelineStageEarlyFragmentTests, hal.PipelineStageEarlyFragmentTests)
	add(vkabi.PipelineStageLateFragmentTests, hal.PipelineStageLateFragmentTests)
	add(vkabi.PipelineStageColorAttachmentOutput, hal.PipelineStageColorAttachmentOutput)
	add(vkabi.PipelineStageComputeShader, hal.PipelineStageComputeShader)
	add(vkabi.PipelineStageTransfer, hal.PipelineStageTransfer)
	add(vkabi.PipelineStageBottomOfPipe, hal.PipelineStageBottomOfPipe)
	add(vkabi.PipelineStageHost, hal.PipelineStageHost)
	return out
}

func accessFromVulkan(mask vkabi.AccessFlags) hal.Access {
	var out hal.Access
	add := func(bit vkabi.AccessFlags, target hal.Access) {
		if mask&bit != 0 {
			out |= target
		}
	}
	add(vkabi.AccessIndirectCommandRead, hal.AccessIndirectCommandRead)
	add(vkabi.AccessIndexRead, hal.AccessIndexRead)
	add(vkabi.AccessVertexAttributeRead, hal.AccessVertexAttributeRead)
	add(vkabi.AccessUniformRead, hal.AccessUniformRead)
	add(vkabi.AccessInputAttachmentRead, hal.AccessInputAttachmentRead)
	add(vkabi.AccessShaderRead, hal.AccessShaderRead)
	add(vkabi.AccessShaderWrite, hal.AccessShaderWrite)
	add(vkabi.AccessColorAttachmentRead, hal.AccessColorAttachmentRead)
	add(vkabi.AccessColorAttachmentWrite, hal.AccessColorAttachmentWrite)
	add(vkabi.AccessDepthStencilAttachmentRead, hal.AccessDepthStencilAttachmentRead)
	add(vkabi.AccessDepthStencilAttachmentWrite, hal.AccessDepthStencilAttachmentWrite)
	add(vkabi.AccessTransferRead, hal.AccessTransferRead)
	add(vkabi.AccessTransferWrite, hal.AccessTransferWrite)
	add(vkabi.AccessHostRead, hal.AccessHostRead)
	add(vkabi.AccessHostWrite, hal.AccessHostWrite)
	add(vkabi.AccessMemoryRead, hal.AccessMemoryRead)
	add(vkabi.AccessMemoryWrite, hal.AccessMemoryWrite)
	return out
}
