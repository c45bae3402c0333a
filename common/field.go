// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, packing a value into a bit field of a configuration register.
package common

// Field describes a run of Width bits starting at bit Shift of an 8-bit
// register.
type Field struct {
	Shift uint8
	Width uint8
}

// Mask returns the in-place mask of the field.
func (f Field) Mask() byte {
	return byte((1<<f.Width)-1) << f.Shift
}

// Max returns the largest value the field can hold.
func (f Field) Max() byte {
	return byte((1 << f.Width) - 1)
}

// Get extracts the field from reg.
func (f Field) Get(reg byte) byte {
	return (reg & f.Mask()) >> f.Shift
}

// Set returns reg with the field replaced by v. Bits of v that do not fit in
// the field are dropped.
func (f Field) Set(reg, v byte) byte {
	return (reg &^ f.Mask()) | ((v << f.Shift) & f.Mask())
}
