// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// Instance owns the native HAL instance and the adapter handles produced at
// enumeration time, per spec.md §3.3 ("Instance owns the native backend
// handle and the list of adapter handles produced at enumeration time;
// adapters are owned by the instance.").
type Instance struct {
	HAL      hal.Instance
	Adapters []uintptr // physical-device handles, filled by icd.EnumeratePhysicalDevices
}

// Adapter wraps one exposed HAL adapter with the data physical-device
// queries need: features/limits/info as reported at enumeration time, plus
// the queue family table synthesized for it (see Gpu's doc comment for why
// there is exactly one family).
type Adapter struct {
	HAL      hal.Adapter
	Exposed  hal.ExposedAdapter
	Instance *Instance
}
