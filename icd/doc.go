// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package icd implements a Vulkan 1.0 Installable Client Driver over the
// gogpu HAL (hal.Backend / hal.Device / hal.Queue), per spec.md and
// SPEC_FULL.md. Every exported gfx* function here corresponds to one
// vk* entry point; the cgo reexport shim in cmd/vkicd-so gives them
// C linkage for the Vulkan loader.
//
// The package owns four responsibilities:
//
//  1. Object lifetime: every vk* create/destroy pair allocates or
//     releases a handle via internal/handle, wrapping a value from
//     internal/objects.
//  2. Conversion: every struct/enum/flag crossing the Vulkan<->HAL
//     boundary goes through internal/convert.
//  3. Assembly: render passes and pipelines, whose Vulkan shape carries
//     transient borrows the HAL descriptor shape does not, go through
//     internal/passasm.
//  4. Entry-point resolution and ICD loader negotiation (§4.7).
package icd
