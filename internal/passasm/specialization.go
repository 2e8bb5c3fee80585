// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package passasm

import "github.com/gogpu/vkicd/vkabi"

// OwnedSpecializationEntry is one decoded specialization-constant entry:
// the constant ID plus its raw bytes sliced out of the SpecializationInfo's
// data blob and copied into batch-owned storage.
type OwnedSpecializationEntry struct {
	ConstantID uint32
	Data       []byte
}

// materializeSpecialization decodes a VkSpecializationInfo into owned
// per-entry records, completing spec.md §9's open item ("Pipeline
// specialization-constant decoding is stubbed ... Implementers must
// complete it"). hal.VertexState/FragmentState/ComputeState have no
// specialization-constant field to forward these into (see DESIGN.md) -
// this function exists so the data survives the call in a well-typed
// shape, same as the spec requires, even though no current HAL consumer
// reads it.
func materializeSpecialization(info *vkabi.SpecializationInfo) []OwnedSpecializationEntry {
	if info == nil {
		return nil
	}
	out := make([]OwnedSpecializationEntry, len(info.MapEntries))
	for i, e := range info.MapEntries {
		end := uintptr(e.Offset) + e.Size
		if end > uintptr(len(info.Data)) {
			panic("vkCreateGraphicsPipelines: specialization map entry out of bounds")
		}
		data := make([]byte, e.Size)
		copy(data, info.Data[e.Offset:end])
		out[i] = OwnedSpecializationEntry{ConstantID: e.ConstantID, Data: data}
	}
	return out
}
