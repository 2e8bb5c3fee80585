// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// Sync wraps a hal.Fence and backs both VkFence and VkSemaphore: the HAL has
// a single wait-for-value fence primitive (hal.Device.Wait), no separate
// binary semaphore, so per spec.md §4.6 ("the caller supplies either a
// semaphore or a fence... the core picks the non-null one and passes it to
// the HAL as the frame-sync object") both Vulkan sync objects bottom out in
// the same HAL type. Signaled tracks a fence's own queryable state
// (vkGetFenceStatus / vkResetFences); semaphores never consult it.
type Sync struct {
	HAL      hal.Fence
	Signaled bool
}
