// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import "errors"

var (
	// ErrOpen is returned when the bus can't be opened or the device does
	// not answer at its address.
	ErrOpen = errors.New("lsm303: open failure")
	// ErrTransfer is returned when a register read or write did not
	// complete.
	ErrTransfer = errors.New("lsm303: transfer failure")
	// ErrUnsupported is returned for a range, bandwidth, mode or bus path
	// the driver does not accept.
	ErrUnsupported = errors.New("lsm303: unsupported configuration")
	// ErrNotOpen is returned on register access before Open.
	ErrNotOpen = errors.New("lsm303: device not open")
)
