// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import (
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/vkabi"
)

// Buffer is the two-state (Unbound/Bound) wrapper spec.md §3.2 requires:
// created with a usage/size spec but no backing memory, then bound exactly
// once to a HAL buffer. Memory-requirements queries are valid in either
// state; every other use requires Bound.
type Buffer struct {
	Size  uint64
	Usage vkabi.BufferUsageFlags

	bound bool
	HAL   hal.Buffer
}

// NewBuffer constructs an Unbound buffer from a VkBufferCreateInfo.
func NewBuffer(info *vkabi.BufferCreateInfo) *Buffer {
	return &Buffer{Size: info.Size, Usage: info.Usage}
}

// IsBound reports whether memory has been bound to this buffer.
func (b *Buffer) IsBound() bool { return b.bound }

// Bind transitions Unbound -> Bound, combining the spec with a HAL buffer
// obtained from the device. Binding an already-bound buffer is a fatal
// precondition violation per spec.md §3.2 ("no rebind").
func (b *Buffer) Bind(h hal.Buffer) {
	if b.bound {
		panic("vkBindBufferMemory: buffer is already bound")
	}
	b.HAL = h
	b.bound = true
}

// BufferView is a thin non-dispatchable wrapper over a texel buffer view -
// present in gfx-rs/portability (vkCreateBufferView) but not named
// explicitly in spec.md's component table; see SPEC_FULL.md's Supplemented
// features section.
type BufferView struct {
	Buffer *Buffer
	Format vkabi.Format
	Offset uint64
	Range  uint64
}
