// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"

	"github.com/gogpu/vkicd/hal"
)

// PreconditionError marks a precondition violation. Per spec.md §7 these are
// fatal: the Vulkan validation model assumes a validation layer already
// rejected the call, so the core does not attempt to recover. fatal logs the
// violated invariant at slog.LevelError and panics; gfx* entry points are
// not expected to recover from it.
type PreconditionError struct {
	Op     string
	Detail string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func fatal(op, format string, args ...any) {
	err := &PreconditionError{Op: op, Detail: fmt.Sprintf(format, args...)}
	hal.Logger().Error("precondition violation", "op", op, "detail", err.Detail)
	panic(err)
}
