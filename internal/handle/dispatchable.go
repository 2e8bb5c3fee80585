// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package handle

import (
	"sync"
	"unsafe"
)

// DispatchableMagic is the ICD loader sentinel word. The Vulkan loader's
// trampoline reads this word to tell a dispatchable object (instance,
// physical device, device, queue, command buffer) apart from a
// non-dispatchable one.
const DispatchableMagic uint64 = 0x01CDC0DE

// dispatchableHeader is the fixed layout a dispatchable handle points to:
// the magic sentinel at offset 0, followed by the real object pointer.
type dispatchableHeader struct {
	magic uint64
	obj   unsafe.Pointer
}

var dispatchableRegistry sync.Map // uintptr -> *dispatchableHeader

// MakeDispatchable heap-allocates value and returns an ABI handle: a
// pointer (as uintptr) to a header struct whose word 0 is the ICD magic
// constant.
func MakeDispatchable[T any](value T) uintptr {
	obj := new(T)
	*obj = value
	hdr := &dispatchableHeader{magic: DispatchableMagic, obj: unsafe.Pointer(obj)}
	h := uintptr(unsafe.Pointer(hdr))
	dispatchableRegistry.Store(h, hdr)
	return h
}

func loadDispatchable(op string, h uintptr) *dispatchableHeader {
	if h == 0 {
		fatal(op, h)
	}
	v, ok := dispatchableRegistry.Load(h)
	if !ok {
		fatal(op, h)
	}
	return v.(*dispatchableHeader)
}

// DerefDispatchable returns a pointer to the live backing value, for
// in-place mutation (e.g. appending to an instance's adapter list).
// Dereferencing a null or already-released handle is a precondition
// violation.
func DerefDispatchable[T any](h uintptr) *T {
	hdr := loadDispatchable("DerefDispatchable", h)
	return (*T)(hdr.obj)
}

// ReleaseDispatchable removes h from the registry and returns its backing
// value by copy, reconstituting ownership for the caller (typically a
// Destroy*/Free* entry point that needs to run the value's own teardown).
// Releasing a null or already-released handle is a precondition violation.
func ReleaseDispatchable[T any](h uintptr) T {
	hdr := loadDispatchable("ReleaseDispatchable", h)
	dispatchableRegistry.Delete(h)
	return *(*T)(hdr.obj)
}

// IsNullDispatchable reports whether h is the all-zero-bits null handle.
func IsNullDispatchable(h uintptr) bool {
	return h == 0
}
