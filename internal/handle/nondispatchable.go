// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package handle

import (
	"sync"
	"unsafe"
)

var nonDispatchableRegistry sync.Map // uintptr -> unsafe.Pointer

// MakeNonDispatchable heap-allocates value and returns an ABI handle: a raw
// pointer (as uintptr) to it. Every Vulkan object other than instance,
// physical device, device, queue, and command buffer uses this shape.
func MakeNonDispatchable[T any](value T) uintptr {
	obj := new(T)
	*obj = value
	h := uintptr(unsafe.Pointer(obj))
	nonDispatchableRegistry.Store(h, unsafe.Pointer(obj))
	return h
}

func loadNonDispatchable(op string, h uintptr) unsafe.Pointer {
	if h == 0 {
		fatal(op, h)
	}
	v, ok := nonDispatchableRegistry.Load(h)
	if !ok {
		fatal(op, h)
	}
	return v.(unsafe.Pointer)
}

// DerefNonDispatchable returns a pointer to the live backing value.
func DerefNonDispatchable[T any](h uintptr) *T {
	return (*T)(loadNonDispatchable("DerefNonDispatchable", h))
}

// ReleaseNonDispatchable removes h from the registry and returns its
// backing value by copy.
func ReleaseNonDispatchable[T any](h uintptr) T {
	ptr := loadNonDispatchable("ReleaseNonDispatchable", h)
	nonDispatchableRegistry.Delete(h)
	return *(*T)(ptr)
}

// IsNullNonDispatchable reports whether h is the all-zero-bits null handle.
func IsNullNonDispatchable(h uintptr) bool {
	return h == 0
}
