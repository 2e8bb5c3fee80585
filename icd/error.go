// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"errors"
	"fmt"

	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/vkabi"
)

// Sentinel errors for the §7 error kinds this core can report without a
// precondition violation: HAL allocation failure, device loss, and
// not-implemented paths (Non-goals spec.md names as stubs).
var (
	ErrOutOfHostMemory   = errors.New("icd: out of host memory")
	ErrOutOfDeviceMemory = errors.New("icd: out of device memory")
	ErrDeviceLost        = errors.New("icd: device lost")
	ErrNotImplemented    = errors.New("icd: operation not implemented by this core")
)

// PreconditionError marks a recoverable-from-panic precondition violation,
// mirroring core.ValidationError's {Op, Detail} shape. Vulkan precondition
// violations (null/unknown handles, double-bind, etc.) are fatal per
// spec.md §7: internal/handle and internal/convert already panic with
// their own *InvalidHandleError/*PreconditionError types on these paths,
// so gfx* entry points mostly let those propagate rather than wrapping
// them here - this type exists for the icd package's own precondition
// checks (e.g. swapchain neutering, queue family range checks).
type PreconditionError struct {
	Op     string
	Detail string
}

func (e *PreconditionError) Error() string {
	if e.Detail == "" {
		return e.Op
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func fatalf(op, format string, args ...any) {
	err := &PreconditionError{Op: op, Detail: fmt.Sprintf(format, args...)}
	hal.Logger().Error("vulkan precondition violation", "op", op, "detail", err.Detail)
	panic(err)
}

// resultFromHALError maps a HAL-layer error returned from a fallible
// operation (buffer/image/pipeline creation, device wait, present, ...)
// into the VkResult an ICD entry point returns, per SPEC_FULL.md's
// ambient-stack error section. Errors this core has no specific mapping
// for fall back to ErrorInitializationFailed, the catch-all VkResult for
// "the HAL failed in a way this core doesn't translate more precisely."
func resultFromHALError(err error) vkabi.Result {
	switch {
	case err == nil:
		return vkabi.Success
	case errors.Is(err, hal.ErrDeviceOutOfMemory):
		return vkabi.ErrorOutOfDeviceMemory
	case errors.Is(err, hal.ErrDeviceLost):
		return vkabi.ErrorDeviceLost
	case errors.Is(err, hal.ErrTimeout):
		return vkabi.Timeout
	case errors.Is(err, hal.ErrSurfaceLost):
		return vkabi.ErrorSurfaceLostKHR
	case errors.Is(err, hal.ErrSurfaceOutdated):
		return vkabi.ErrorOutOfDateKHR
	case errors.Is(err, hal.ErrFreeIndividualSetsNotEnabled):
		return vkabi.ErrorFragmentedPool
	case errors.Is(err, ErrOutOfHostMemory):
		return vkabi.ErrorOutOfHostMemory
	case errors.Is(err, ErrNotImplemented):
		return vkabi.ErrorFeatureNotPresent
	default:
		hal.Logger().Warn("unmapped HAL error, reporting ErrorInitializationFailed", "err", err)
		return vkabi.ErrorInitializationFailed
	}
}
