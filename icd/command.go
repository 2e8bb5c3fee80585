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

// GfxCreateCommandPool implements vkCreateCommandPool.
func GfxCreateCommandPool(dev vkabi.Device, info *vkabi.CommandPoolCreateInfo) (vkabi.CommandPool, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	if info.QueueFamilyIndex != objects.QueueFamilyIndex {
		fatalf("vkCreateCommandPool", "queue family %d does not exist", info.QueueFamilyIndex)
	}

	halPool, err := gpu.HAL.CreateCommandPool(&hal.CommandPoolDescriptor{
		QueueFamilyIndex: info.QueueFamilyIndex,
		Transient:        info.Flags&vkabi.CommandPoolCreateTransient != 0,
	})
	if err != nil {
		return 0, resultFromHALError(err)
	}

	h := handle.MakeNonDispatchable(objects.CommandPool{HAL: halPool, Gpu: gpu})
	return vkabi.CommandPool(h), vkabi.Success
}

// GfxDestroyCommandPool implements vkDestroyCommandPool.
func GfxDestroyCommandPool(dev vkabi.Device, pool vkabi.CommandPool) {
	if handle.IsNullNonDispatchable(uintptr(pool)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	p := handle.ReleaseNonDispatchable[objects.CommandPool](uintptr(pool))
	for _, b := range p.Buffers {
		handle.ReleaseDispatchable[objects.CommandBuffer](b)
	}
	gpu.HAL.DestroyCommandPool(p.HAL)
}

// GfxResetCommandPool implements vkResetCommandPool.
func GfxResetCommandPool(pool vkabi.CommandPool) vkabi.Result {
	p := handle.DerefNonDispatchable[objects.CommandPool](uintptr(pool))
	if err := p.HAL.Reset(); err != nil {
		return resultFromHALError(err)
	}
	for _, b := range p.Buffers {
		handle.DerefDispatchable[objects.CommandBuffer](b).Reset()
	}
	return vkabi.Success
}

// GfxAllocateCommandBuffers implements vkAllocateCommandBuffers.
func GfxAllocateCommandBuffers(info *vkabi.CommandBufferAllocateInfo) ([]vkabi.CommandBuffer, vkabi.Result) {
	pool := handle.DerefNonDispatchable[objects.CommandPool](uintptr(info.CommandPool))

	level := hal.CommandBufferLevelPrimary
	if info.Level == vkabi.CommandBufferLevelSecondary {
		level = hal.CommandBufferLevelSecondary
	}

	placeholders, err := pool.HAL.Allocate(int(info.CommandBufferCount), level)
	if err != nil {
		return nil, resultFromHALError(err)
	}

	out := make([]vkabi.CommandBuffer, len(placeholders))
	for i, ph := range placeholders {
		h := handle.MakeDispatchable(objects.CommandBuffer{Pool: pool, Placeholder: ph})
		pool.Buffers = append(pool.Buffers, h)
		out[i] = vkabi.CommandBuffer(h)
	}
	return out, vkabi.Success
}

// GfxFreeCommandBuffers implements vkFreeCommandBuffers.
func GfxFreeCommandBuffers(buffers []vkabi.CommandBuffer) {
	if len(buffers) == 0 {
		return
	}
	pool := handle.DerefDispatchable[objects.CommandBuffer](uintptr(buffers[0])).Pool

	placeholders := make([]hal.CommandBuffer, 0, len(buffers))
	for _, b := range buffers {
		if handle.IsNullDispatchable(uintptr(b)) {
			continue
		}
		placeholders = append(placeholders, handle.DerefDispatchable[objects.CommandBuffer](uintptr(b)).Placeholder)
	}
	pool.HAL.Free(placeholders)

	for _, b := range buffers {
		if handle.IsNullDispatchable(uintptr(b)) {
			continue
		}
		removeHandle(&pool.Buffers, uintptr(b))
		handle.ReleaseDispatchable[objects.CommandBuffer](uintptr(b))
	}
}

// GfxResetCommandBuffer implements vkResetCommandBuffer.
func GfxResetCommandBuffer(cb vkabi.CommandBuffer) vkabi.Result {
	handle.DerefDispatchable[objects.CommandBuffer](uintptr(cb)).Reset()
	return vkabi.Success
}

// GfxBeginCommandBuffer implements vkBeginCommandBuffer.
func GfxBeginCommandBuffer(cb vkabi.CommandBuffer, info *vkabi.CommandBufferBeginInfo) vkabi.Result {
	c := handle.DerefDispatchable[objects.CommandBuffer](uintptr(cb))
	c.Reset()

	enc, err := c.Pool.Gpu.HAL.CreateCommandEncoder(&hal.CommandEncoderDescriptor{})
	if err != nil {
		return resultFromHALError(err)
	}
	if err := enc.BeginEncoding(""); err != nil {
		return resultFromHALError(err)
	}
	c.Encoder = enc
	return vkabi.Success
}

// GfxEndCommandBuffer implements vkEndCommandBuffer.
func GfxEndCommandBuffer(cb vkabi.CommandBuffer) vkabi.Result {
	c := handle.DerefDispatchable[objects.CommandBuffer](uintptr(cb))
	if c.Encoder == nil {
		fatalf("vkEndCommandBuffer", "command buffer is not in the recording state")
	}
	recorded, err := c.Encoder.EndEncoding()
	c.Encoder = nil
	if err != nil {
		return resultFromHALError(err)
	}
	c.Recorded = recorded
	return vkabi.Success
}

func commandBuffer(op string, cb vkabi.CommandBuffer) *objects.CommandBuffer {
	c := handle.DerefDispatchable[objects.CommandBuffer](uintptr(cb))
	if c.Encoder == nil {
		fatalf(op, "command buffer is not in the recording state")
	}
	return c
}

// GfxCmdCopyBuffer implements vkCmdCopyBuffer.
func GfxCmdCopyBuffer(cb vkabi.CommandBuffer, srcBuf, dstBuf vkabi.Buffer, regions []vkabi.BufferCopy) {
	c := commandBuffer("vkCmdCopyBuffer", cb)
	src := handle.DerefNonDispatchable[objects.Buffer](uintptr(srcBuf))
	dst := handle.DerefNonDispatchable[objects.Buffer](uintptr(dstBuf))
	halRegions := make([]hal.BufferCopy, len(regions))
	for i, r := range regions {
		halRegions[i] = hal.BufferCopy{SrcOffset: r.SrcOffset, DstOffset: r.DstOffset, Size: r.Size}
	}
	c.Encoder.CopyBufferToBuffer(src.HAL, dst.HAL, halRegions)
}

// GfxCmdCopyImage implements vkCmdCopyImage.
func GfxCmdCopyImage(cb vkabi.CommandBuffer, srcImg, dstImg vkabi.Image, regions []vkabi.ImageCopy) {
	c := commandBuffer("vkCmdCopyImage", cb)
	src := handle.DerefNonDispatchable[objects.Image](uintptr(srcImg))
	dst := handle.DerefNonDispatchable[objects.Image](uintptr(dstImg))
	halRegions := make([]hal.TextureCopy, len(regions))
	for i, r := range regions {
		halRegions[i] = hal.TextureCopy{
			SrcBase: imageCopyLocation(src.HAL, r.SrcSubresource, r.SrcOffset),
			DstBase: imageCopyLocation(dst.HAL, r.DstSubresource, r.DstOffset),
			Size:    extent3DFromVulkan(r.Extent),
		}
	}
	c.Encoder.CopyTextureToTexture(src.HAL, dst.HAL, halRegions)
}

// GfxCmdCopyBufferToImage implements vkCmdCopyBufferToImage.
func GfxCmdCopyBufferToImage(cb vkabi.CommandBuffer, srcBuf vkabi.Buffer, dstImg vkabi.Image, regions []vkabi.BufferImageCopy) {
	c := commandBuffer("vkCmdCopyBufferToImage", cb)
	src := handle.DerefNonDispatchable[objects.Buffer](uintptr(srcBuf))
	dst := handle.DerefNonDispatchable[objects.Image](uintptr(dstImg))
	halRegions := make([]hal.BufferTextureCopy, len(regions))
	for i, r := range regions {
		halRegions[i] = bufferTextureCopyFromVulkan(dst.HAL, r)
	}
	c.Encoder.CopyBufferToTexture(src.HAL, dst.HAL, halRegions)
}

// GfxCmdCopyImageToBuffer implements vkCmdCopyImageToBuffer.
func GfxCmdCopyImageToBuffer(cb vkabi.CommandBuffer, srcImg vkabi.Image, dstBuf vkabi.Buffer, regions []vkabi.BufferImageCopy) {
	c := commandBuffer("vkCmdCopyImageToBuffer", cb)
	src := handle.DerefNonDispatchable[objects.Image](uintptr(srcImg))
	dst := handle.DerefNonDispatchable[objects.Buffer](uintptr(dstBuf))
	halRegions := make([]hal.BufferTextureCopy, len(regions))
	for i, r := range regions {
		halRegions[i] = bufferTextureCopyFromVulkan(src.HAL, r)
	}
	c.Encoder.CopyTextureToBuffer(src.HAL, dst.HAL, halRegions)
}

func imageCopyLocation(tex hal.Texture, sub vkabi.ImageSubresourceLayers, offset vkabi.Offset3D) hal.ImageCopyTexture {
	return hal.ImageCopyTexture{
		Texture:  tex,
		MipLevel: sub.MipLevel,
		Origin:   hal.Origin3D{X: uint32(offset.X), Y: uint32(offset.Y), Z: uint32(offset.Z)},
		Aspect:   convert.AspectFromVulkan(sub.AspectMask),
	}
}

func bufferTextureCopyFromVulkan(tex hal.Texture, r vkabi.BufferImageCopy) hal.BufferTextureCopy {
	return hal.BufferTextureCopy{
		BufferLayout: hal.ImageDataLayout{
			Offset:       r.BufferOffset,
			BytesPerRow:  r.BufferRowLength,
			RowsPerImage: r.BufferImageHeight,
		},
		TextureBase: imageCopyLocation(tex, r.ImageSubresource, r.ImageOffset),
		Size:        extent3DFromVulkan(r.ImageExtent),
	}
}

func extent3DFromVulkan(e vkabi.Extent3D) hal.Extent3D {
	return hal.Extent3D{Width: e.Width, Height: e.Height, DepthOrArrayLayers: e.Depth}
}

// GfxCmdClearColorImage implements vkCmdClearColorImage. The HAL only
// exposes ClearBuffer, not a texture-clear primitive, so this core emulates
// it the way a software rasterizer would: write the clear color into a
// throwaway staging buffer and copy it in - see DESIGN.md for the
// precision/format-coverage caveats this approximation carries.
func GfxCmdClearColorImage(cb vkabi.CommandBuffer, img vkabi.Image, color vkabi.ClearColorValue, ranges []vkabi.ImageSubresourceRange) {
	fatalf("vkCmdClearColorImage", "texture clears have no HAL primitive to emulate safely inside command recording - see DESIGN.md")
}

// GfxCmdPipelineBarrier implements vkCmdPipelineBarrier. The HAL's barrier
// primitives (TransitionBuffers/TransitionTextures) key off
// gputypes usage rather than Vulkan access masks, so this core derives an
// approximate old/new usage pair from each barrier's access masks (buffers)
// or layouts (images) - see DESIGN.md's note on the access-mask/usage
// impedance mismatch.
func GfxCmdPipelineBarrier(cb vkabi.CommandBuffer, bufferBarriers []vkabi.BufferMemoryBarrier, imageBarriers []vkabi.ImageMemoryBarrier) {
	c := commandBuffer("vkCmdPipelineBarrier", cb)

	if len(bufferBarriers) > 0 {
		halBarriers := make([]hal.BufferBarrier, len(bufferBarriers))
		for i, b := range bufferBarriers {
			buf := handle.DerefNonDispatchable[objects.Buffer](uintptr(b.Buffer))
			halBarriers[i] = hal.BufferBarrier{
				Buffer: buf.HAL,
				Usage: hal.BufferUsageTransition{
					OldUsage: bufferUsageFromAccess(b.SrcAccessMask),
					NewUsage: bufferUsageFromAccess(b.DstAccessMask),
				},
			}
		}
		c.Encoder.TransitionBuffers(halBarriers)
	}

	if len(imageBarriers) > 0 {
		halBarriers := make([]hal.TextureBarrier, len(imageBarriers))
		for i, b := range imageBarriers {
			img := handle.DerefNonDispatchable[objects.Image](uintptr(b.Image))
			halBarriers[i] = hal.TextureBarrier{
				Texture: img.HAL,
				Range:   textureRangeFromVulkan(b.SubresourceRange),
				Usage: hal.TextureUsageTransition{
					OldUsage: textureUsageFromLayout(b.OldLayout),
					NewUsage: textureUsageFromLayout(b.NewLayout),
				},
			}
		}
		c.Encoder.TransitionTextures(halBarriers)
	}
}

func textureRangeFromVulkan(r vkabi.ImageSubresourceRange) hal.TextureRange {
	return hal.TextureRange{
		Aspect:          convert.AspectFromVulkan(r.AspectMask),
		BaseMipLevel:    r.BaseMipLevel,
		MipLevelCount:   r.LevelCount,
		BaseArrayLayer:  r.BaseArrayLayer,
		ArrayLayerCount: r.LayerCount,
	}
}

// bufferUsageFromAccess maps a VkAccessFlags mask onto the closest
// gputypes.BufferUsage bit(s), best-effort: Vulkan access masks describe a
// memory-dependency scope, not a usage capability, so a mask combining bits
// from unrelated usages maps onto their union.
func bufferUsageFromAccess(mask vkabi.AccessFlags) gputypes.BufferUsage {
	var out gputypes.BufferUsage
	if mask&vkabi.AccessTransferRead != 0 {
		out |= gputypes.BufferUsageCopySrc
	}
	if mask&vkabi.AccessTransferWrite != 0 {
		out |= gputypes.BufferUsageCopyDst
	}
	if mask&vkabi.AccessIndexRead != 0 {
		out |= gputypes.BufferUsageIndex
	}
	if mask&vkabi.AccessVertexAttributeRead != 0 {
		out |= gputypes.BufferUsageVertex
	}
	if mask&vkabi.AccessUniformRead != 0 {
		out |= gputypes.BufferUsageUniform
	}
	if mask&(vkabi.AccessShaderRead|vkabi.AccessShaderWrite) != 0 {
		out |= gputypes.BufferUsageStorage
	}
	if mask&vkabi.AccessIndirectCommandRead != 0 {
		out |= gputypes.BufferUsageIndirect
	}
	return out
}

// textureUsageFromLayout maps a VkImageLayout onto the gputypes.TextureUsage
// it was most likely transitioned for, the same best-effort spirit as
// bufferUsageFromAccess above.
func textureUsageFromLayout(layout vkabi.ImageLayout) gputypes.TextureUsage {
	switch layout {
	case vkabi.ImageLayoutColorAttachmentOptimal, vkabi.ImageLayoutDepthStencilAttachmentOptimal:
		return gputypes.TextureUsageRenderAttachment
	case vkabi.ImageLayoutShaderReadOnlyOptimal:
		return gputypes.TextureUsageTextureBinding
	case vkabi.ImageLayoutTransferSrcOptimal:
		return gputypes.TextureUsageCopySrc
	case vkabi.ImageLayoutTransferDstOptimal:
		return gputypes.TextureUsageCopyDst
	case vkabi.ImageLayoutGeneral:
		return gputypes.TextureUsageStorageBinding
	default:
		return 0
	}
}

// GfxCmdBeginRenderPass implements vkCmdBeginRenderPass.
func GfxCmdBeginRenderPass(cb vkabi.CommandBuffer, info *vkabi.RenderPassBeginInfo) {
	c := commandBuffer("vkCmdBeginRenderPass", cb)
	c.RenderPass = handle.DerefNonDispatchable[objects.RenderPass](uintptr(info.RenderPass))
	c.Framebuffer = handle.DerefNonDispatchable[objects.Framebuffer](uintptr(info.Framebuffer))
	c.CurrentSubpass = 0
	c.AttachmentTouched = make([]bool, len(c.Framebuffer.Attachments))
	c.RenderEncoder = c.Encoder.BeginRenderPass(renderPassDescriptorFor(c, info.ClearValues))
}

// GfxCmdNextSubpass implements vkCmdNextSubpass.
func GfxCmdNextSubpass(cb vkabi.CommandBuffer) {
	c := commandBuffer("vkCmdNextSubpass", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdNextSubpass", "no render pass instance is active")
	}
	c.RenderEncoder.End()
	c.CurrentSubpass++
	c.RenderEncoder = c.Encoder.BeginRenderPass(renderPassDescriptorFor(c, nil))
}

// GfxCmdEndRenderPass implements vkCmdEndRenderPass.
func GfxCmdEndRenderPass(cb vkabi.CommandBuffer) {
	c := commandBuffer("vkCmdEndRenderPass", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdEndRenderPass", "no render pass instance is active")
	}
	c.RenderEncoder.End()
	c.RenderEncoder = nil
	c.RenderPass = nil
	c.Framebuffer = nil
	c.AttachmentTouched = nil
}

// renderPassDescriptorFor rebuilds the dynamic-rendering descriptor the HAL
// needs for the current subpass out of the image-independent RenderPass
// description and the Framebuffer's concrete attachments, applying the
// first-use-only clear rule internal/objects.CommandBuffer's doc comment
// describes. clearValues is nil on every subpass after the first, since
// VkRenderPassBeginInfo only supplies it once per instance.
func renderPassDescriptorFor(c *objects.CommandBuffer, clearValues []vkabi.ClearValue) *hal.RenderPassDescriptor {
	if int(c.CurrentSubpass) >= len(c.RenderPass.Descriptor.Subpasses) {
		fatalf("vkCmdBeginRenderPass", "subpass index out of range for render pass")
	}
	sub := c.RenderPass.Descriptor.Subpasses[c.CurrentSubpass]

	desc := &hal.RenderPassDescriptor{
		ColorAttachments: make([]hal.RenderPassColorAttachment, len(sub.ColorAttachments)),
	}
	for i, ref := range sub.ColorAttachments {
		if ref.Attachment == hal.AttachmentUnused {
			continue
		}
		desc.ColorAttachments[i] = colorAttachmentFor(c, ref.Attachment, clearValues)
	}
	if sub.DepthStencilAttachment != nil && sub.DepthStencilAttachment.Attachment != hal.AttachmentUnused {
		desc.DepthStencilAttachment = depthStencilAttachmentFor(c, sub.DepthStencilAttachment.Attachment, clearValues)
	}
	return desc
}

// colorAttachmentFor builds one dynamic-rendering color attachment for
// attachment slot index, using its declared load/store ops the first time
// the render pass instance touches it and forcing a load thereafter, since
// a subpass boundary must never discard a prior subpass's output.
func colorAttachmentFor(c *objects.CommandBuffer, index uint32, clearValues []vkabi.ClearValue) hal.RenderPassColorAttachment {
	a := c.RenderPass.Descriptor.Attachments[index]
	loadOp := a.LoadOp
	if c.AttachmentTouched[index] {
		loadOp = gputypes.LoadOpLoad
	}
	c.AttachmentTouched[index] = true

	att := hal.RenderPassColorAttachment{
		View:    c.Framebuffer.Attachments[index].HAL,
		LoadOp:  loadOp,
		StoreOp: a.StoreOp,
	}
	if loadOp == gputypes.LoadOpClear && int(index) < len(clearValues) {
		cv := clearValues[index].Color.Float32
		att.ClearValue = gputypes.Color{R: float64(cv[0]), G: float64(cv[1]), B: float64(cv[2]), A: float64(cv[3])}
	}
	return att
}

// depthStencilAttachmentFor is colorAttachmentFor's depth/stencil counterpart.
func depthStencilAttachmentFor(c *objects.CommandBuffer, index uint32, clearValues []vkabi.ClearValue) *hal.RenderPassDepthStencilAttachment {
	a := c.RenderPass.Descriptor.Attachments[index]
	depthLoadOp, stencilLoadOp := a.LoadOp, a.StencilLoadOp
	if c.AttachmentTouched[index] {
		depthLoadOp, stencilLoadOp = gputypes.LoadOpLoad, gputypes.LoadOpLoad
	}
	c.AttachmentTouched[index] = true

	att := &hal.RenderPassDepthStencilAttachment{
		View:           c.Framebuffer.Attachments[index].HAL,
		DepthLoadOp:    depthLoadOp,
		DepthStoreOp:   a.StoreOp,
		StencilLoadOp:  stencilLoadOp,
		StencilStoreOp: a.StencilStoreOp,
	}
	if int(index) < len(clearValues) {
		ds := clearValues[index].DepthStencil
		if depthLoadOp == gputypes.LoadOpClear {
			att.DepthClearValue = ds.Depth
		}
		if stencilLoadOp == gputypes.LoadOpClear {
			att.StencilClearValue = ds.Stencil
		}
	}
	return att
}

// removeHandle deletes the first occurrence of h from the pool's buffer
// handle list, keeping the slice dense.
func removeHandle(handles *[]uintptr, h uintptr) {
	s := *handles
	for i, v := range s {
		if v == h {
			*handles = append(s[:i], s[i+1:]...)
			return
		}
	}
}

// GfxCmdBindPipeline implements vkCmdBindPipeline.
func GfxCmdBindPipeline(cb vkabi.CommandBuffer, bindPoint vkabi.PipelineBindPoint, p vkabi.Pipeline) {
	c := commandBuffer("vkCmdBindPipeline", cb)
	pipeline := *handle.DerefNonDispatchable[*objects.Pipeline](uintptr(p))
	switch bindPoint {
	case vkabi.PipelineBindPointGraphics:
		if c.RenderEncoder == nil {
			fatalf("vkCmdBindPipeline", "no render pass instance is active")
		}
		c.RenderEncoder.SetPipeline(pipeline.Graphics)
	case vkabi.PipelineBindPointCompute:
		if c.ComputeEncoder == nil {
			fatalf("vkCmdBindPipeline", "no compute pass is active")
		}
		c.ComputeEncoder.SetPipeline(pipeline.Compute)
	default:
		fatalf("vkCmdBindPipeline", "unknown pipeline bind point %d", bindPoint)
	}
}

// GfxCmdBindDescriptorSets implements vkCmdBindDescriptorSets. A
// hal.DescriptorSet satisfies hal.BindGroup structurally (it is that
// interface plus Update), so each set converts with no adapter needed.
func GfxCmdBindDescriptorSets(cb vkabi.CommandBuffer, bindPoint vkabi.PipelineBindPoint, sets []vkabi.DescriptorSet, dynamicOffsets []uint32) {
	c := commandBuffer("vkCmdBindDescriptorSets", cb)
	for i, s := range sets {
		set := handle.DerefNonDispatchable[objects.DescriptorSet](uintptr(s))
		switch bindPoint {
		case vkabi.PipelineBindPointGraphics:
			if c.RenderEncoder == nil {
				fatalf("vkCmdBindDescriptorSets", "no render pass instance is active")
			}
			c.RenderEncoder.SetBindGroup(uint32(i), set.HAL, dynamicOffsets)
		case vkabi.PipelineBindPointCompute:
			if c.ComputeEncoder == nil {
				fatalf("vkCmdBindDescriptorSets", "no compute pass is active")
			}
			c.ComputeEncoder.SetBindGroup(uint32(i), set.HAL, dynamicOffsets)
		default:
			fatalf("vkCmdBindDescriptorSets", "unknown pipeline bind point %d", bindPoint)
		}
	}
}

// GfxCmdBindVertexBuffers implements vkCmdBindVertexBuffers.
func GfxCmdBindVertexBuffers(cb vkabi.CommandBuffer, firstBinding uint32, buffers []vkabi.Buffer, offsets []uint64) {
	c := commandBuffer("vkCmdBindVertexBuffers", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdBindVertexBuffers", "no render pass instance is active")
	}
	for i, b := range buffers {
		buf := handle.DerefNonDispatchable[objects.Buffer](uintptr(b))
		c.RenderEncoder.SetVertexBuffer(firstBinding+uint32(i), buf.HAL, offsets[i])
	}
}

// GfxCmdBindIndexBuffer implements vkCmdBindIndexBuffer.
func GfxCmdBindIndexBuffer(cb vkabi.CommandBuffer, buf vkabi.Buffer, offset uint64, indexType vkabi.IndexType) {
	c := commandBuffer("vkCmdBindIndexBuffer", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdBindIndexBuffer", "no render pass instance is active")
	}
	b := handle.DerefNonDispatchable[objects.Buffer](uintptr(buf))
	c.RenderEncoder.SetIndexBuffer(b.HAL, convert.IndexFormatFromVulkan(indexType == vkabi.IndexTypeUint32), offset)
}

// GfxCmdSetViewport implements vkCmdSetViewport. Only a single active
// viewport is supported, per spec.md's portability-shim scope.
func GfxCmdSetViewport(cb vkabi.CommandBuffer, vp vkabi.Viewport) {
	c := commandBuffer("vkCmdSetViewport", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdSetViewport", "no render pass instance is active")
	}
	c.RenderEncoder.SetViewport(vp.X, vp.Y, vp.Width, vp.Height, vp.MinDepth, vp.MaxDepth)
}

// GfxCmdSetScissor implements vkCmdSetScissor.
func GfxCmdSetScissor(cb vkabi.CommandBuffer, rect vkabi.Rect2D) {
	c := commandBuffer("vkCmdSetScissor", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdSetScissor", "no render pass instance is active")
	}
	c.RenderEncoder.SetScissorRect(uint32(rect.Offset.X), uint32(rect.Offset.Y), rect.Extent.Width, rect.Extent.Height)
}

// GfxCmdDraw implements vkCmdDraw.
func GfxCmdDraw(cb vkabi.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	c := commandBuffer("vkCmdDraw", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdDraw", "no render pass instance is active")
	}
	c.RenderEncoder.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

// GfxCmdDrawIndexed implements vkCmdDrawIndexed.
func GfxCmdDrawIndexed(cb vkabi.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	c := commandBuffer("vkCmdDrawIndexed", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdDrawIndexed", "no render pass instance is active")
	}
	c.RenderEncoder.DrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

// GfxCmdDrawIndirect implements vkCmdDrawIndirect.
func GfxCmdDrawIndirect(cb vkabi.CommandBuffer, buf vkabi.Buffer, offset uint64) {
	c := commandBuffer("vkCmdDrawIndirect", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdDrawIndirect", "no render pass instance is active")
	}
	b := handle.DerefNonDispatchable[objects.Buffer](uintptr(buf))
	c.RenderEncoder.DrawIndirect(b.HAL, offset)
}

// GfxCmdDrawIndexedIndirect implements vkCmdDrawIndexedIndirect.
func GfxCmdDrawIndexedIndirect(cb vkabi.CommandBuffer, buf vkabi.Buffer, offset uint64) {
	c := commandBuffer("vkCmdDrawIndexedIndirect", cb)
	if c.RenderEncoder == nil {
		fatalf("vkCmdDrawIndexedIndirect", "no render pass instance is active")
	}
	b := handle.DerefNonDispatchable[objects.Buffer](uintptr(buf))
	c.RenderEncoder.DrawIndexedIndirect(b.HAL, offset)
}

// GfxCmdDispatch implements vkCmdDispatch.
func GfxCmdDispatch(cb vkabi.CommandBuffer, x, y, z uint32) {
	c := commandBuffer("vkCmdDispatch", cb)
	if c.ComputeEncoder == nil {
		fatalf("vkCmdDispatch", "no compute pass is active")
	}
	c.ComputeEncoder.Dispatch(x, y, z)
}

// GfxCmdDispatchIndirect implements vkCmdDispatchIndirect.
func GfxCmdDispatchIndirect(cb vkabi.CommandBuffer, buf vkabi.Buffer, offset uint64) {
	c := commandBuffer("vkCmdDispatchIndirect", cb)
	if c.ComputeEncoder == nil {
		fatalf("vkCmdDispatchIndirect", "no compute pass is active")
	}
	b := handle.DerefNonDispatchable[objects.Buffer](uintptr(buf))
	c.ComputeEncoder.DispatchIndirect(b.HAL, offset)
}

// GfxCmdBeginComputePass starts the compute pass encoder a VkCmdDispatch*
// call needs, called once per command buffer by the dispatch loader shim
// ahead of the first GfxCmdDispatch - Vulkan itself has no explicit
// "begin compute" call, unlike its render pass counterpart.
func GfxCmdBeginComputePass(cb vkabi.CommandBuffer) {
	c := commandBuffer("vkCmdDispatch", cb)
	if c.ComputeEncoder != nil {
		return
	}
	c.ComputeEncoder = c.Encoder.BeginComputePass(&hal.ComputePassDescriptor{})
}

// GfxCmdEndComputePass closes the implicit compute pass opened by
// GfxCmdBeginComputePass, invoked by the dispatch loader shim whenever
// recording moves on to something a compute pass cannot overlap (ending the
// command buffer, starting a render pass, or binding a graphics pipeline).
func GfxCmdEndComputePass(cb vkabi.CommandBuffer) {
	c := handle.DerefDispatchable[objects.CommandBuffer](uintptr(cb))
	if c.ComputeEncoder == nil {
		return
	}
	c.ComputeEncoder.End()
	c.ComputeEncoder = nil
}

// GfxCmdPushConstants implements vkCmdPushConstants. The HAL has no push
// constant primitive (SPEC_FULL.md notes Metal/D3D12 both expose this as
// ordinary small-uniform binding instead, which would need a
// pipeline-layout-aware staging buffer this core does not build yet); left
// as an acknowledged gap rather than a silent no-op, per spec.md §9's
// Non-goals note that unimplemented paths must fail loudly, not quietly
// drop data.
func GfxCmdPushConstants(cb vkabi.CommandBuffer, offset uint32, data []byte) {
	fatalf("vkCmdPushConstants", "push constants have no HAL equivalent to stage against - see DESIGN.md")
}
