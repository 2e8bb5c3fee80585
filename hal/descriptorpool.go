package hal

import "github.com/gogpu/gputypes"

// DescriptorType mirrors the Vulkan descriptor-type enum at the HAL level,
// used only for descriptor pool sizing - the actual binding shape for a
// bind group layout entry is gputypes.BindGroupLayoutEntry.
type DescriptorType uint8

const (
	DescriptorTypeSampler DescriptorType = iota
	DescriptorTypeSampledImage
	DescriptorTypeStorageImage
	DescriptorTypeUniformBuffer
	DescriptorTypeStorageBuffer
	DescriptorTypeUniformBufferDynamic
	DescriptorTypeStorageBufferDynamic
)

// DescriptorPoolSize is one entry in a DescriptorPoolDescriptor: how many
// descriptors of a given type the pool must be able to hand out.
type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

// DescriptorPoolDescriptor mirrors VkDescriptorPoolCreateInfo.
type DescriptorPoolDescriptor struct {
	Label string

	// MaxSets bounds the total number of descriptor sets allocatable from
	// this pool.
	MaxSets uint32

	// Sizes bounds the total descriptor count per type.
	Sizes []DescriptorPoolSize

	// FreeIndividualSets allows Free to release single sets; otherwise
	// sets are only reclaimed by Reset or by destroying the pool.
	FreeIndividualSets bool
}

// DescriptorSet is a concrete set of resource bindings allocated from a
// DescriptorPool and matching a BindGroupLayout, mirroring VkDescriptorSet.
// Unlike hal.BindGroup (built once, immutable, dynamic per-encode),
// DescriptorSet has persistent pool-tied lifetime and supports in-place
// updates via Update.
type DescriptorSet interface {
	Resource

	// Update rewrites a subset of this set's bindings in place, mirroring
	// vkUpdateDescriptorSets applied to a single set.
	Update(writes []DescriptorWrite)
}

// DescriptorWrite mirrors one VkWriteDescriptorSet entry.
type DescriptorWrite struct {
	Binding         uint32
	ArrayElement    uint32
	Type            DescriptorType
	BufferBindings  []gputypes.BufferBinding
	SamplerBindings []Sampler
	TextureBindings []TextureView
}

// DescriptorPool allocates and owns DescriptorSets, mirroring
// VkDescriptorPool's pool-lifetime ownership model.
type DescriptorPool interface {
	Resource

	// Allocate creates one descriptor set per given layout.
	Allocate(layouts []BindGroupLayout) ([]DescriptorSet, error)

	// Free releases individual sets back to the pool. Valid only if the
	// pool was created with FreeIndividualSets.
	Free(sets []DescriptorSet) error

	// Reset releases every set allocated from the pool at once,
	// regardless of FreeIndividualSets.
	Reset() error
}
