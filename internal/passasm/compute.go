// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package passasm

import (
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/vkabi"
)

// ComputePipelineSlot is the compute counterpart of GraphicsPipelineSlot.
// Compute pipelines carry a single shader stage, so assembly here has no
// render-pass target lookup and no rasterizer/blend/depth-stencil state to
// translate - the shape spec.md §4.3 describes as "the same shape but with
// only a single stage."
type ComputePipelineSlot struct {
	Descriptor     *hal.ComputePipelineDescriptor
	Specialization []OwnedSpecializationEntry
	Parent         Parent
	Flags          vkabi.PipelineCreateFlags
	Err            error
}

// AssembleComputePipelines runs the compute-pipeline batch's passes 1 and 2.
func AssembleComputePipelines(infos []vkabi.ComputePipelineCreateInfo, r Resolver) []ComputePipelineSlot {
	slots := make([]ComputePipelineSlot, len(infos))
	for i := range infos {
		slots[i] = assembleComputeOne(&infos[i], r)
	}
	return slots
}

func assembleComputeOne(info *vkabi.ComputePipelineCreateInfo, r Resolver) (slot ComputePipelineSlot) {
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok {
				err = &stageError{rec}
			}
			slot = ComputePipelineSlot{Err: err}
		}
	}()

	if info.Stage.Stage != vkabi.ShaderStageCompute {
		panic("vkCreateComputePipelines: stage must be VK_SHADER_STAGE_COMPUTE_BIT")
	}

	desc := &hal.ComputePipelineDescriptor{
		Layout: r.Layout(info.Layout),
		Compute: hal.ComputeState{
			Module:     r.ShaderModule(info.Stage.Module),
			EntryPoint: info.Stage.Name,
		},
	}

	return ComputePipelineSlot{
		Descriptor:     desc,
		Specialization: materializeSpecialization(info.Stage.SpecializationInfo),
		Parent:         assembleParent(info.Flags, info.BasePipelineHandle, info.BasePipelineIndex),
		Flags:          info.Flags,
	}
}
