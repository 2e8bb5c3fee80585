// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package passasm implements the two assemblers spec.md §4.3 and §4.4
// describe: decoding the deeply nested Vulkan pipeline and render-pass
// create-info trees into the flat descriptors hal.Device expects.
//
// The pipeline assembler runs in three passes per batch (materialize
// transient borrows, build descriptors, batch-submit with per-slot failure
// localization); the render-pass assembler eagerly materializes the four
// owned per-subpass reference arrays spec.md §4.4 names.
package passasm
