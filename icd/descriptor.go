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

// GfxCreateSampler implements vkCreateSampler.
func GfxCreateSampler(dev vkabi.Device, info *vkabi.SamplerCreateInfo) (vkabi.Sampler, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	desc := &hal.SamplerDescriptor{
		AddressModeU: convert.AddressModeFromVulkan(info.AddressModeU),
		AddressModeV: convert.AddressModeFromVulkan(info.AddressModeV),
		AddressModeW: convert.AddressModeFromVulkan(info.AddressModeW),
		MagFilter:    convert.FilterModeFromVulkan(info.MagFilter),
		MinFilter:    convert.FilterModeFromVulkan(info.MinFilter),
		MipmapFilter: convert.MipmapFilterModeFromVulkan(info.MipmapMode),
		LodMinClamp:  info.MinLod,
		LodMaxClamp:  info.MaxLod,
		Anisotropy:   1,
	}
	if info.AnisotropyEnable {
		desc.Anisotropy = uint16(info.MaxAnisotropy)
	}
	if info.CompareEnable {
		desc.Compare = convert.CompareOpFromVulkan(info.CompareOp)
	}

	s, err := gpu.HAL.CreateSampler(desc)
	if err != nil {
		return 0, resultFromHALError(err)
	}
	h := handle.MakeNonDispatchable(objects.Sampler{HAL: s})
	return vkabi.Sampler(h), vkabi.Success
}

// GfxDestroySampler implements vkDestroySampler.
func GfxDestroySampler(dev vkabi.Device, s vkabi.Sampler) {
	if handle.IsNullNonDispatchable(uintptr(s)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	sampler := handle.ReleaseNonDispatchable[objects.Sampler](uintptr(s))
	gpu.HAL.DestroySampler(sampler.HAL)
}

// combinedImageSamplerSplitBase is the binding number the sampler half of a
// split COMBINED_IMAGE_SAMPLER entry starts counting from, chosen well above
// any realistic Vulkan binding count so it never collides with a real
// binding in the same layout. The texture half immediately follows it.
const combinedImageSamplerSplitBase = 1 << 16

// GfxCreateDescriptorSetLayout implements vkCreateDescriptorSetLayout.
// COMBINED_IMAGE_SAMPLER bindings have no 1:1 HAL entry
// (internal/convert.BindGroupLayoutEntryFromVulkan's doc comment explains
// why) so this core splits each one into a synthetic sampler entry and a
// synthetic texture entry, recording the split in the returned
// objects.DescriptorSetLayout so vkUpdateDescriptorSets can target both
// halves from a single VkWriteDescriptorSet.
func GfxCreateDescriptorSetLayout(dev vkabi.Device, info *vkabi.DescriptorSetLayoutCreateInfo) (vkabi.DescriptorSetLayout, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))

	var entries []gputypes.BindGroupLayoutEntry
	var bindings []objects.DescriptorBinding
	splitCounter := uint32(0)

	for _, b := range info.Bindings {
		if b.DescriptorType == vkabi.DescriptorTypeCombinedImageSampler {
			samplerBinding := combinedImageSamplerSplitBase + splitCounter*2
			textureBinding := samplerBinding + 1
			splitCounter++

			visibility := shaderVisibilityFromVulkan(b.StageFlags)
			entries = append(entries,
				gputypes.BindGroupLayoutEntry{
					Binding:    samplerBinding,
					Visibility: visibility,
					Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
				},
				gputypes.BindGroupLayoutEntry{
					Binding:    textureBinding,
					Visibility: visibility,
					Texture:    &gputypes.TextureBindingLayout{},
				},
			)
			bindings = append(bindings, objects.DescriptorBinding{
				VulkanBinding:     b.Binding,
				Type:              b.DescriptorType,
				Kind:              objects.BindingCombinedImageSampler,
				HALSamplerBinding: samplerBinding,
				HALTextureBinding: textureBinding,
			})
			continue
		}

		entries = append(entries, convert.BindGroupLayoutEntryFromVulkan(b))
		bindings = append(bindings, objects.DescriptorBinding{
			VulkanBinding: b.Binding,
			Type:          b.DescriptorType,
			Kind:          objects.BindingDirect,
			HALBinding:    b.Binding,
		})
	}

	halLayout, err := gpu.HAL.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{Entries: entries})
	if err != nil {
		return 0, resultFromHALError(err)
	}

	h := handle.MakeNonDispatchable(objects.DescriptorSetLayout{HAL: halLayout, Bindings: bindings})
	return vkabi.DescriptorSetLayout(h), vkabi.Success
}

// shaderVisibilityFromVulkan is internal/convert.shaderStageFromVulkan
// exported under a local name for the synthetic split entries above, which
// have no VkDescriptorSetLayoutBinding of their own to pass through
// convert's exported entry point.
func shaderVisibilityFromVulkan(mask vkabi.ShaderStageFlags) gputypes.ShaderStage {
	entry := convert.BindGroupLayoutEntryFromVulkan(vkabi.DescriptorSetLayoutBinding{
		DescriptorType: vkabi.DescriptorTypeSampler,
		StageFlags:     mask,
	})
	return entry.Visibility
}

// GfxDestroyDescriptorSetLayout implements vkDestroyDescriptorSetLayout.
func GfxDestroyDescriptorSetLayout(dev vkabi.Device, layout vkabi.DescriptorSetLayout) {
	if handle.IsNullNonDispatchable(uintptr(layout)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	l := handle.ReleaseNonDispatchable[objects.DescriptorSetLayout](uintptr(layout))
	gpu.HAL.DestroyBindGroupLayout(l.HAL)
}

// descriptorPoolSizesFromVulkan expands one VkDescriptorPoolSize into the
// HAL pool sizes it requires. COMBINED_IMAGE_SAMPLER needs one sampler slot
// and one sampled-image slot per descriptor, matching the two-entry split
// GfxCreateDescriptorSetLayout performs.
func descriptorPoolSizesFromVulkan(ps vkabi.DescriptorPoolSize) []hal.DescriptorPoolSize {
	switch ps.Type {
	case vkabi.DescriptorTypeCombinedImageSampler:
		return []hal.DescriptorPoolSize{
			{Type: hal.DescriptorTypeSampler, DescriptorCount: ps.DescriptorCount},
			{Type: hal.DescriptorTypeSampledImage, DescriptorCount: ps.DescriptorCount},
		}
	case vkabi.DescriptorTypeSampler:
		return []hal.DescriptorPoolSize{{Type: hal.DescriptorTypeSampler, DescriptorCount: ps.DescriptorCount}}
	case vkabi.DescriptorTypeSampledImage:
		return []hal.DescriptorPoolSize{{Type: hal.DescriptorTypeSampledImage, DescriptorCount: ps.DescriptorCount}}
	case vkabi.DescriptorTypeStorageImage:
		return []hal.DescriptorPoolSize{{Type: hal.DescriptorTypeStorageImage, DescriptorCount: ps.DescriptorCount}}
	case vkabi.DescriptorTypeUniformBuffer:
		return []hal.DescriptorPoolSize{{Type: hal.DescriptorTypeUniformBuffer, DescriptorCount: ps.DescriptorCount}}
	case vkabi.DescriptorTypeStorageBuffer:
		return []hal.DescriptorPoolSize{{Type: hal.DescriptorTypeStorageBuffer, DescriptorCount: ps.DescriptorCount}}
	case vkabi.DescriptorTypeUniformBufferDynamic:
		return []hal.DescriptorPoolSize{{Type: hal.DescriptorTypeUniformBufferDynamic, DescriptorCount: ps.DescriptorCount}}
	case vkabi.DescriptorTypeStorageBufferDynamic:
		return []hal.DescriptorPoolSize{{Type: hal.DescriptorTypeStorageBufferDynamic, DescriptorCount: ps.DescriptorCount}}
	default:
		fatalf("vkCreateDescriptorPool", "descriptor type %d has no HAL pool equivalent", ps.Type)
		return nil
	}
}

// GfxCreateDescriptorPool implements vkCreateDescriptorPool.
func GfxCreateDescriptorPool(dev vkabi.Device, info *vkabi.DescriptorPoolCreateInfo) (vkabi.DescriptorPool, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))

	var sizes []hal.DescriptorPoolSize
	for _, ps := range info.PoolSizes {
		sizes = append(sizes, descriptorPoolSizesFromVulkan(ps)...)
	}

	freeIndividually := info.Flags&vkabi.DescriptorPoolCreateFreeDescriptorSet != 0
	halPool, err := gpu.HAL.CreateDescriptorPool(&hal.DescriptorPoolDescriptor{
		MaxSets:            info.MaxSets,
		Sizes:              sizes,
		FreeIndividualSets: freeIndividually,
	})
	if err != nil {
		return 0, resultFromHALError(err)
	}

	h := handle.MakeNonDispatchable(objects.DescriptorPool{HAL: halPool, FreeIndividually: freeIndividually})
	return vkabi.DescriptorPool(h), vkabi.Success
}

// GfxDestroyDescriptorPool implements vkDestroyDescriptorPool.
func GfxDestroyDescriptorPool(dev vkabi.Device, pool vkabi.DescriptorPool) {
	if handle.IsNullNonDispatchable(uintptr(pool)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	p := handle.ReleaseNonDispatchable[objects.DescriptorPool](uintptr(pool))
	for _, s := range p.Sets {
		handle.ReleaseNonDispatchable[objects.DescriptorSet](s)
	}
	gpu.HAL.DestroyDescriptorPool(p.HAL)
}

// GfxAllocateDescriptorSets implements vkAllocateDescriptorSets.
func GfxAllocateDescriptorSets(info *vkabi.DescriptorSetAllocateInfo) ([]vkabi.DescriptorSet, vkabi.Result) {
	pool := handle.DerefNonDispatchable[objects.DescriptorPool](uintptr(info.DescriptorPool))

	objLayouts := make([]*objects.DescriptorSetLayout, len(info.SetLayouts))
	layouts := make([]hal.BindGroupLayout, len(info.SetLayouts))
	for i, l := range info.SetLayouts {
		objLayouts[i] = handle.DerefNonDispatchable[objects.DescriptorSetLayout](uintptr(l))
		layouts[i] = objLayouts[i].HAL
	}

	halSets, err := pool.HAL.Allocate(layouts)
	if err != nil {
		return nil, resultFromHALError(err)
	}

	out := make([]vkabi.DescriptorSet, len(halSets))
	for i, hs := range halSets {
		h := handle.MakeNonDispatchable(objects.DescriptorSet{Pool: pool, HAL: hs, Layout: objLayouts[i]})
		pool.Sets = append(pool.Sets, h)
		out[i] = vkabi.DescriptorSet(h)
	}
	return out, vkabi.Success
}

// GfxFreeDescriptorSets implements vkFreeDescriptorSets.
func GfxFreeDescriptorSets(sets []vkabi.DescriptorSet) vkabi.Result {
	if len(sets) == 0 {
		return vkabi.Success
	}
	pool := handle.DerefNonDispatchable[objects.DescriptorSet](uintptr(sets[0])).Pool

	halSets := make([]hal.DescriptorSet, 0, len(sets))
	for _, s := range sets {
		if handle.IsNullNonDispatchable(uintptr(s)) {
			continue
		}
		halSets = append(halSets, handle.DerefNonDispatchable[objects.DescriptorSet](uintptr(s)).HAL)
	}
	if err := pool.HAL.Free(halSets); err != nil {
		return resultFromHALError(err)
	}

	for _, s := range sets {
		if handle.IsNullNonDispatchable(uintptr(s)) {
			continue
		}
		removeHandle(&pool.Sets, uintptr(s))
		handle.ReleaseNonDispatchable[objects.DescriptorSet](uintptr(s))
	}
	return vkabi.Success
}

func removeHandle(handles *[]uintptr, h uintptr) {
	for i, v := range *handles {
		if v == h {
			*handles = append((*handles)[:i], (*handles)[i+1:]...)
			return
		}
	}
}

// GfxResetDescriptorPool implements vkResetDescriptorPool.
func GfxResetDescriptorPool(pool vkabi.DescriptorPool) vkabi.Result {
	p := handle.DerefNonDispatchable[objects.DescriptorPool](uintptr(pool))
	if err := p.HAL.Reset(); err != nil {
		return resultFromHALError(err)
	}
	for _, s := range p.Sets {
		handle.ReleaseNonDispatchable[objects.DescriptorSet](s)
	}
	p.Sets = nil
	return vkabi.Success
}

// GfxCreatePipelineLayout implements vkCreatePipelineLayout.
func GfxCreatePipelineLayout(dev vkabi.Device, info *vkabi.PipelineLayoutCreateInfo) (vkabi.PipelineLayout, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))

	setLayouts := make([]hal.BindGroupLayout, len(info.SetLayouts))
	for i, l := range info.SetLayouts {
		setLayouts[i] = handle.DerefNonDispatchable[objects.DescriptorSetLayout](uintptr(l)).HAL
	}
	ranges := make([]hal.PushConstantRange, len(info.PushConstantRanges))
	for i, r := range info.PushConstantRanges {
		ranges[i] = hal.PushConstantRange{
			Stages: shaderVisibilityFromVulkan(r.StageFlags),
			Range:  hal.Range{Start: r.Offset, End: r.Offset + r.Size},
		}
	}

	halLayout, err := gpu.HAL.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		BindGroupLayouts:   setLayouts,
		PushConstantRanges: ranges,
	})
	if err != nil {
		return 0, resultFromHALError(err)
	}

	h := handle.MakeNonDispatchable(objects.PipelineLayout{HAL: halLayout})
	return vkabi.PipelineLayout(h), vkabi.Success
}

// GfxDestroyPipelineLayout implements vkDestroyPipelineLayout.
func GfxDestroyPipelineLayout(dev vkabi.Device, layout vkabi.PipelineLayout) {
	if handle.IsNullNonDispatchable(uintptr(layout)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	l := handle.ReleaseNonDispatchable[objects.PipelineLayout](uintptr(layout))
	gpu.HAL.DestroyPipelineLayout(l.HAL)
}

// nativeBufferHandle resolves the backend-native numeric handle a bound
// buffer needs for a gputypes.BufferBinding, the same convention
// hal/gles.Buffer.NativeHandle exposes. Backends that have not wired a
// native handle accessor yet reject the write outright (a fatal
// precondition violation) rather than forge a meaningless handle value -
// DESIGN.md records this as an open portability gap in the HAL's
// descriptor-write surface.
func nativeBufferHandle(op string, b hal.Buffer) uintptr {
	n, ok := b.(interface{ NativeHandle() uintptr })
	if !ok {
		fatalf(op, "active backend does not expose a native buffer handle for descriptor binding")
	}
	return n.NativeHandle()
}

// descriptorWritesFromVulkan expands one VkWriteDescriptorSet into the one
// or two hal.DescriptorWrite entries it becomes, consulting the destination
// set's layout for the COMBINED_IMAGE_SAMPLER split.
func descriptorWritesFromVulkan(layout *objects.DescriptorSetLayout, w vkabi.WriteDescriptorSet) []hal.DescriptorWrite {
	b, ok := layout.Binding(w.DstBinding)
	if !ok {
		fatalf("vkUpdateDescriptorSets", "binding %d is not declared in the target set's layout", w.DstBinding)
	}

	if b.Kind == objects.BindingCombinedImageSampler {
		var samplers []hal.Sampler
		var views []hal.TextureView
		for _, ii := range w.ImageInfo {
			samplers = append(samplers, handle.DerefNonDispatchable[objects.Sampler](uintptr(ii.Sampler)).HAL)
			views = append(views, handle.DerefNonDispatchable[objects.ImageView](uintptr(ii.ImageView)).HAL)
		}
		return []hal.DescriptorWrite{
			{Binding: b.HALSamplerBinding, ArrayElement: w.DstArrayElement, Type: hal.DescriptorTypeSampler, SamplerBindings: samplers},
			{Binding: b.HALTextureBinding, ArrayElement: w.DstArrayElement, Type: hal.DescriptorTypeSampledImage, TextureBindings: views},
		}
	}

	halType, ok := descriptorTypeToHAL(b.Type)
	if !ok {
		fatalf("vkUpdateDescriptorSets", "descriptor type %d has no HAL equivalent", b.Type)
	}

	write := hal.DescriptorWrite{Binding: b.HALBinding, ArrayElement: w.DstArrayElement, Type: halType}
	switch b.Type {
	case vkabi.DescriptorTypeSampler:
		for _, ii := range w.ImageInfo {
			write.SamplerBindings = append(write.SamplerBindings, handle.DerefNonDispatchable[objects.Sampler](uintptr(ii.Sampler)).HAL)
		}
	case vkabi.DescriptorTypeSampledImage, vkabi.DescriptorTypeStorageImage:
		for _, ii := range w.ImageInfo {
			write.TextureBindings = append(write.TextureBindings, handle.DerefNonDispatchable[objects.ImageView](uintptr(ii.ImageView)).HAL)
		}
	default:
		for _, bi := range w.BufferInfo {
			buf := handle.DerefNonDispatchable[objects.Buffer](uintptr(bi.Buffer))
			size := bi.Range
			if size == vkabi.WholeSize {
				size = buf.Size - bi.Offset
			}
			write.BufferBindings = append(write.BufferBindings, gputypes.BufferBinding{
				Buffer: nativeBufferHandle("vkUpdateDescriptorSets", buf.HAL),
				Offset: bi.Offset,
				Size:   size,
			})
		}
	}
	return []hal.DescriptorWrite{write}
}

func descriptorTypeToHAL(t vkabi.DescriptorType) (hal.DescriptorType, bool) {
	switch t {
	case vkabi.DescriptorTypeSampler:
		return hal.DescriptorTypeSampler, true
	case vkabi.DescriptorTypeSampledImage:
		return hal.DescriptorTypeSampledImage, true
	case vkabi.DescriptorTypeStorageImage:
		return hal.DescriptorTypeStorageImage, true
	case vkabi.DescriptorTypeUniformBuffer:
		return hal.DescriptorTypeUniformBuffer, true
	case vkabi.DescriptorTypeStorageBuffer:
		return hal.DescriptorTypeStorageBuffer, true
	case vkabi.DescriptorTypeUniformBufferDynamic:
		return hal.DescriptorTypeUniformBufferDynamic, true
	case vkabi.DescriptorTypeStorageBufferDynamic:
		return hal.DescriptorTypeStorageBufferDynamic, true
	default:
		return 0, false
	}
}

// GfxUpdateDescriptorSets implements vkUpdateDescriptorSets.
func GfxUpdateDescriptorSets(writes []vkabi.WriteDescriptorSet, copies []vkabi.CopyDescriptorSet) {
	for _, w := range writes {
		set := handle.DerefNonDispatchable[objects.DescriptorSet](uintptr(w.DstSet))
		layout := layoutOfSet(set)
		set.HAL.Update(descriptorWritesFromVulkan(layout, w))
	}
	for _, c := range copies {
		copyDescriptorSet(c)
	}
}

// copyDescriptorSet would implement one VkCopyDescriptorSet, but
// hal.DescriptorSet exposes no read-back of its current bindings (the same
// write-only posture internal/objects.DeviceMemory documents for
// host-visible memory), so there is nothing to copy from. Rejected outright
// rather than silently dropped; applications needing this path should issue
// the equivalent vkUpdateDescriptorSets writes directly.
func copyDescriptorSet(c vkabi.CopyDescriptorSet) {
	fatalf("vkUpdateDescriptorSets", "vkCopyDescriptorSet is not supported - the HAL exposes no descriptor-set read-back")
}

// layoutOfSet recovers a descriptor set's layout. Sets do not carry a back
// pointer to the layout they were allocated against (only the pool they
// came from), so GfxAllocateDescriptorSets stashes it on the set itself via
// objects.DescriptorSet.Pool's sibling field - see
// internal/objects.DescriptorSet.
func layoutOfSet(s *objects.DescriptorSet) *objects.DescriptorSetLayout {
	if s.Layout == nil {
		fatalf("vkUpdateDescriptorSets", "descriptor set has no recorded layout")
	}
	return s.Layout
}
