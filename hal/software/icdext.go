//go:build software

package software

import "github.com/gogpu/vkicd/hal"

// CommandPool implements hal.CommandPool for the software backend by
// tracking every buffer it has allocated so Reset/Free can be honored.
type CommandPool struct {
	Resource
	buffers []hal.CommandBuffer
}

// CreateCommandPool creates a software command pool.
func (d *Device) CreateCommandPool(_ *hal.CommandPoolDescriptor) (hal.CommandPool, error) {
	return &CommandPool{}, nil
}

// DestroyCommandPool is a no-op (Go GC handles cleanup).
func (d *Device) DestroyCommandPool(_ hal.CommandPool) {}

// Allocate creates count command buffers and tracks them in the pool.
func (p *CommandPool) Allocate(count int, _ hal.CommandBufferLevel) ([]hal.CommandBuffer, error) {
	out := make([]hal.CommandBuffer, count)
	for i := range out {
		cb := &CommandBuffer{}
		out[i] = cb
		p.buffers = append(p.buffers, cb)
	}
	return out, nil
}

// Free drops the given buffers from the pool's tracking list.
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

// Reset clears every buffer's recorded state without freeing them.
func (p *CommandPool) Reset() error {
	for _, b := range p.buffers {
		if cb, ok := b.(*CommandBuffer); ok {
			cb.recorded = nil
		}
	}
	return nil
}

// CommandBuffer implements hal.CommandBuffer; recording happens through
// the encoder returned by Device.CreateCommandEncoder, this type only
// tracks pool ownership.
type CommandBuffer struct {
	Resource
	recorded []string
}

// RenderPass implements hal.RenderPass, retaining its create info so a
// Framebuffer created against it can be validated for attachment count.
type RenderPass struct {
	Resource
	Desc *hal.RenderPassCreateDescriptor
}

// CreateRenderPass creates a software render pass.
func (d *Device) CreateRenderPass(desc *hal.RenderPassCreateDescriptor) (hal.RenderPass, error) {
	return &RenderPass{Desc: desc}, nil
}

// DestroyRenderPass is a no-op.
func (d *Device) DestroyRenderPass(_ hal.RenderPass) {}

// Framebuffer implements hal.Framebuffer, binding concrete texture views
// to a RenderPass's attachment slots.
type Framebuffer struct {
	Resource
	Desc *hal.FramebufferDescriptor
}

// CreateFramebuffer creates a software framebuffer.
func (d *Device) CreateFramebuffer(desc *hal.FramebufferDescriptor) (hal.Framebuffer, error) {
	return &Framebuffer{Desc: desc}, nil
}

// DestroyFramebuffer is a no-op.
func (d *Device) DestroyFramebuffer(_ hal.Framebuffer) {}

// DescriptorPool implements hal.DescriptorPool with a real in-memory set
// list so Free/Reset accounting matches Vulkan semantics.
type DescriptorPool struct {
	Resource
	desc *hal.DescriptorPoolDescriptor
	sets []hal.DescriptorSet
}

// CreateDescriptorPool creates a software descriptor pool.
func (d *Device) CreateDescriptorPool(desc *hal.DescriptorPoolDescriptor) (hal.DescriptorPool, error) {
	return &DescriptorPool{desc: desc}, nil
}

// DestroyDescriptorPool is a no-op.
func (d *Device) DestroyDescriptorPool(_ hal.DescriptorPool) {}

// Allocate creates one descriptor set per layout, failing once MaxSets
// would be exceeded.
func (p *DescriptorPool) Allocate(layouts []hal.BindGroupLayout) ([]hal.DescriptorSet, error) {
	if p.desc != nil && p.desc.MaxSets > 0 && uint32(len(p.sets)+len(layouts)) > p.desc.MaxSets {
		return nil, hal.ErrDeviceOutOfMemory
	}
	out := make([]hal.DescriptorSet, len(layouts))
	for i := range layouts {
		ds := &DescriptorSet{}
		out[i] = ds
		p.sets = append(p.sets, ds)
	}
	return out, nil
}

// Free releases the given sets back to the pool, as long as the pool
// was created with FreeIndividualSets.
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

// Reset releases every set ever allocated from the pool.
func (p *DescriptorPool) Reset() error {
	p.sets = nil
	return nil
}

// DescriptorSet implements hal.DescriptorSet, storing writes so they can
// be inspected by the objects that consume them during draw/dispatch.
type DescriptorSet struct {
	Resource
	writes []hal.DescriptorWrite
}

// Update records the writes into the set's current binding table.
func (s *DescriptorSet) Update(writes []hal.DescriptorWrite) {
	s.writes = append(s.writes, writes...)
}
