// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

// MemoryBinding records one buffer bound into a DeviceMemory allocation, so
// a later map/unmap can flush the host shadow back to the buffers that
// alias it.
type MemoryBinding struct {
	Buffer *Buffer
	Offset uint64
}

// DeviceMemory is this core's synthetic stand-in for VkDeviceMemory. The HAL
// has no allocate-then-bind step of its own (Device.CreateBuffer takes a
// usage/size descriptor and returns a bound-at-creation resource), so
// memory here is a host-side byte shadow plus the bookkeeping needed to
// make vkMapMemory/vkUnmapMemory observably correct: writes the app makes
// through the mapped pointer land in Data, and are pushed to every bound
// buffer's HAL resource via Queue.WriteBuffer when the mapping is released
// (vkUnmapMemory) or explicitly flushed (vkFlushMappedMemoryRanges).
//
// Reads through a mapped pointer only ever see what the app itself wrote
// through this same shadow - there is no path for GPU-written data to come
// back into Data, since the HAL exposes no buffer readback. Host-visible
// memory here is write-only from the GPU's perspective, which is the common
// case (vertex/uniform upload) and is documented as a portability gap for
// the uncommon one (CPU readback of GPU-written buffers).
type DeviceMemory struct {
	Gpu       *Gpu
	Size      uint64
	TypeIndex uint32
	Data      []byte
	Mapped    bool
	Bindings  []MemoryBinding
}
