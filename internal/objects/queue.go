// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// Queue wraps the single HAL queue a Gpu opens, tagged with the family-0
// dispatch table it came from. Every VkQueue handle a device hands out is
// one of these, all aliasing the same HAL.
type Queue struct {
	HAL hal.Queue
	Gpu *Gpu
}
