// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package objects implements the small tagged-union wrappers the icd
// package stores behind Vulkan handles: Buffer and Image two-state
// (Unbound/Bound) resources (plus their BufferView/ImageView companions),
// Gpu (device + queue-family table), Swapchain (raw HAL surface + acquired
// image handles), CommandPool, DescriptorPool, and Pipeline
// (graphics/compute tagged union).
//
// None of these types are ever constructed by application code directly -
// the icd package heap-allocates them via internal/handle and hands back
// opaque Vulkan handles. They exist so gfx* entry points have somewhere to
// keep state the HAL itself does not track (bind state, cached mip/layer
// counts, queue-family bookkeeping).
package objects
