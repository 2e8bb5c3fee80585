package noop

import (
	"github.com/gogpu/vkicd/hal"
)

// CommandPool implements hal.CommandPool for the noop backend: command
// buffers are placeholder resources, allocation never fails.
type CommandPool struct {
	Resource
	buffers []hal.CommandBuffer
}

// CreateCommandPool creates a noop command pool.
func (d *Device) CreateCommandPool(_ *hal.CommandPoolDescriptor) (hal.CommandPool, error) {
	return &CommandPool{}, nil
}

// DestroyCommandPool is a no-op.
func (d *Device) DestroyCommandPool(_ hal.CommandPool) {}

// Allocate reserves count placeholder command buffers.
func (p *CommandPool) Allocate(count int, _ hal.CommandBufferLevel) ([]hal.CommandBuffer, error) {
	out := make([]hal.CommandBuffer, count)
	for i := range out {
		cb := &CommandBuffer{}
		out[i] = cb
		p.buffers = append(p.buffers, cb)
	}
	return out, nil
}

// Free removes buffers from the pool's bookkeeping list.
func (p *CommandPool) Free(buffers []hal.CommandBuffer) {
	for _, b := range buffers {
		for i, owned := range p.buffers {
			if owned == b {
				p.buffers = append(p.buffers[:i], p.buffers[i+1:]...)
				break
			}
		}
	}
}

// Reset is a no-op; noop command buffers carry no recorded state.
func (p *CommandPool) Reset() error { return nil }

// CommandBuffer implements hal.CommandBuffer as an inert placeholder.
type CommandBuffer struct {
	Resource
}

// RenderPass implements hal.RenderPass as an opaque placeholder.
type RenderPass struct {
	Resource
	Desc *hal.RenderPassCreateDescriptor
}

// CreateRenderPass creates a noop render pass, retaining the descriptor
// only so tests can assert on attachment/subpass counts.
func (d *Device) CreateRenderPass(desc *hal.RenderPassCreateDescriptor) (hal.RenderPass, error) {
	return &RenderPass{Desc: desc}, nil
}

// DestroyRenderPass is a no-op.
func (d *Device) DestroyRenderPass(_ hal.RenderPass) {}

// Framebuffer implements hal.Framebuffer as an opaque placeholder.
type Framebuffer struct {
	Resource
	Desc *hal.FramebufferDescriptor
}

// CreateFramebuffer creates a noop framebuffer.
func (d *Device) CreateFramebuffer(desc *hal.FramebufferDescriptor) (hal.Framebuffer, error) {
	return &Framebuffer{Desc: desc}, nil
}

// DestroyFramebuffer is a no-op.
func (d *Device) DestroyFramebuffer(_ hal.Framebuffer) {}

// DescriptorPool implements hal.DescriptorPool for the noop backend.
type DescriptorPool struct {
	Resource
	desc *hal.DescriptorPoolDescriptor
	sets []hal.DescriptorSet
}

// CreateDescriptorPool creates a noop descriptor pool.
func (d *Device) CreateDescriptorPool(desc *hal.DescriptorPoolDescriptor) (hal.DescriptorPool, error) {
	return &DescriptorPool{desc: desc}, nil
}

// DestroyDescriptorPool is a no-op.
func (d *Device) DestroyDescriptorPool(_ hal.DescriptorPool) {}

// Allocate creates one placeholder descriptor set per layout.
func (p *DescriptorPool) Allocate(layouts []hal.BindGroupLayout) ([]hal.DescriptorSet, error) {
	out := make([]hal.DescriptorSet, len(layouts))
	for i := range layouts {
		ds := &DescriptorSet{}
		out[i] = ds
		p.sets = append(p.sets, ds)
	}
	return out, nil
}

// Free removes sets from the pool's bookkeeping, honoring
// FreeIndividualSets the way a real backend would reject the call
// otherwise.
func (p *DescriptorPool) Free(sets []hal.DescriptorSet) error {
	if p.desc != nil && !p.desc.FreeIndividualSets {
		return hal.ErrFreeIndividualSetsNotEnabled
	}
	for _, s := range sets {
		for i, owned := range p.sets {
			if owned == s {
				p.sets = append(p.sets[:i], p.sets[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Reset releases every set allocated from the pool.
func (p *DescriptorPool) Reset() error {
	p.sets = nil
	return nil
}

// DescriptorSet implements hal.DescriptorSet as an in-memory binding table.
type DescriptorSet struct {
	Resource
	writes []hal.DescriptorWrite
}

// Update stores the writes; noop backend does not simulate actual binding.
func (s *DescriptorSet) Update(writes []hal.DescriptorWrite) {
	s.writes = append(s.writes, writes...)
}
