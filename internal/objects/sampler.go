// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// Sampler wraps the HAL sampler a VkSampler handle stands for.
type Sampler struct {
	HAL hal.Sampler
}

// PipelineLayout wraps the HAL pipeline layout a VkPipelineLayout handle
// stands for.
type PipelineLayout struct {
	HAL hal.PipelineLayout
}
