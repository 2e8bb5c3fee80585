package hal

// CommandBufferLevel mirrors Vulkan's primary/secondary command buffer
// distinction, which the dynamic, single-shot CommandEncoder API has no
// reason to model on its own.
type CommandBufferLevel uint8

const (
	// CommandBufferLevelPrimary can be submitted to a queue directly.
	CommandBufferLevelPrimary CommandBufferLevel = iota

	// CommandBufferLevelSecondary can only be executed from within a
	// primary command buffer's render pass.
	CommandBufferLevelSecondary
)

// CommandPoolDescriptor configures a CommandPool.
type CommandPoolDescriptor struct {
	// Label is an optional debug label.
	Label string

	// QueueFamilyIndex selects which queue family command buffers
	// allocated from this pool will be submitted to.
	QueueFamilyIndex uint32

	// Transient hints that buffers from this pool are short-lived, letting
	// the backend pick a lighter-weight allocation strategy.
	Transient bool
}

// CommandPool allocates and owns a set of command buffers. Freeing the
// pool implicitly frees every command buffer allocated from it, mirroring
// vkDestroyCommandPool's ownership rule.
type CommandPool interface {
	Resource

	// Allocate reserves count command buffers at the given level.
	Allocate(count int, level CommandBufferLevel) ([]CommandBuffer, error)

	// Free releases individual command buffers back to the pool without
	// destroying the pool itself.
	Free(buffers []CommandBuffer)

	// Reset recycles every command buffer allocated from the pool,
	// returning them to the initial (not-recording) state.
	Reset() error
}
