// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package handle

import (
	"fmt"

	"github.com/gogpu/vkicd/hal"
)

// InvalidHandleError marks use of a null, already-released, or unknown
// handle. Per the Vulkan contract these are precondition violations a
// validation layer should already have caught upstream, so the core does
// not try to recover from them.
type InvalidHandleError struct {
	Op     string
	Handle uintptr
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("%s: invalid handle %#x", e.Op, e.Handle)
}

func fatal(op string, h uintptr) {
	err := &InvalidHandleError{Op: op, Handle: h}
	hal.Logger().Error("invalid handle", "op", op, "handle", h)
	panic(err)
}
