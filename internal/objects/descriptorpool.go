// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// DescriptorPool owns its HAL pool; allocated descriptor sets' lifetimes
// are tied to the pool unless it was created with the "free descriptor
// set" flag, per spec.md §3.3.
type DescriptorPool struct {
	HAL              hal.DescriptorPool
	FreeIndividually bool
	Sets             []uintptr // non-dispatchable DescriptorSet handles allocated from this pool
}

// DescriptorSet wraps the HAL descriptor set plus the pool it came from and
// the layout it was allocated against, the latter needed to resolve which
// HAL binding number(s) a vkUpdateDescriptorSets write targets.
type DescriptorSet struct {
	Pool   *DescriptorPool
	HAL    hal.DescriptorSet
	Layout *DescriptorSetLayout
}
