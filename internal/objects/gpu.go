// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// Gpu is the logical device wrapper spec.md §3.3 describes: it owns the HAL
// device and a mapping queue-family-index -> ordered list of queue
// dispatch handles.
//
// The HAL exposes exactly one queue per open device (hal.OpenDevice has a
// single Queue field), while Vulkan lets an application request any number
// of queues from any number of families. This core synthesizes a single
// queue family (index 0) and hands back N aliases of the one hal.Queue for
// N requested queues - every vkGetDeviceQueue call for family 0 returns a
// dispatch handle wrapping the same underlying HAL queue. Requesting a
// second family is a precondition violation (the HAL has none to give).
type Gpu struct {
	HAL    hal.Device
	Queues []uintptr // dispatch handles, index == queue index within family 0
}

// QueueFamilyIndex is the only family this core ever reports.
const QueueFamilyIndex uint32 = 0

// Queue returns the dispatch handle for the given queue index within
// family 0. index must be < len(Queues); out-of-range is a precondition
// violation left to the caller (icd.GetDeviceQueue) to check and panic on.
func (g *Gpu) Queue(index uint32) uintptr {
	return g.Queues[index]
}
