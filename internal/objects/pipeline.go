// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// PipelineKind discriminates the Pipeline tagged union spec.md §9 calls for.
type PipelineKind uint8

const (
	// PipelineKindGraphics wraps a hal.RenderPipeline.
	PipelineKindGraphics PipelineKind = iota
	// PipelineKindCompute wraps a hal.ComputePipeline.
	PipelineKindCompute
)

// Pipeline is the Graphics|Compute tagged union spec.md's object-wrapper
// table names. Exactly one of Graphics/Compute is populated, selected by
// Kind.
type Pipeline struct {
	Kind     PipelineKind
	Graphics hal.RenderPipeline
	Compute  hal.ComputePipeline
}

// NewGraphicsPipeline wraps a successfully created render pipeline.
func NewGraphicsPipeline(p hal.RenderPipeline) *Pipeline {
	return &Pipeline{Kind: PipelineKindGraphics, Graphics: p}
}

// NewComputePipeline wraps a successfully created compute pipeline.
func NewComputePipeline(p hal.ComputePipeline) *Pipeline {
	return &Pipeline{Kind: PipelineKindCompute, Compute: p}
}

// Destroy releases the underlying HAL pipeline through the given device.
func (p *Pipeline) Destroy(d hal.Device) {
	switch p.Kind {
	case PipelineKindGraphics:
		d.DestroyRenderPipeline(p.Graphics)
	case PipelineKindCompute:
		d.DestroyComputePipeline(p.Compute)
	}
}
