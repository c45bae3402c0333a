// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accel holds the value type shared by 3-axis accelerometer drivers,
// along with the interfaces such drivers satisfy.
package accel

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Axes is implemented by anything that provides 3-axis acceleration data.
type Axes interface {
	X() float64
	Y() float64
	Z() float64
}

// Sensor is a device that produces a fresh acceleration Sample on demand.
type Sensor interface {
	Sense() (Sample, error)
}

// Sample is one 3-axis acceleration reading. The zero value is a reading of
// zero on every axis.
type Sample struct {
	x, y, z float64
}

// NewSample returns a Sample holding the three axis values.
func NewSample(x, y, z float64) Sample {
	return Sample{x: x, y: y, z: z}
}

// X returns the X axis value.
func (s Sample) X() float64 { return s.x }

// Y returns the Y axis value.
func (s Sample) Y() float64 { return s.y }

// Z returns the Z axis value.
func (s Sample) Z() float64 { return s.z }

// Vector returns the sample as an r3 vector.
func (s Sample) Vector() r3.Vector {
	return r3.Vector{X: s.x, Y: s.y, Z: s.z}
}

func (s Sample) String() string {
	return fmt.Sprintf("X:%.4f Y:%.4f Z:%.4f", s.x, s.y, s.z)
}

// PitchRoll returns the orientation, in degrees, implied by the direction of
// gravity in a. Only the direction matters so a can be in any unit, including
// raw counts. A device lying flat, a=(0,0,1), gives 0° pitch and 0° roll.
func PitchRoll(a Axes) (pitch, roll float64) {
	v := r3.Vector{X: a.X(), Y: a.Y(), Z: a.Z()}.Normalize()
	pitch = math.Atan2(v.X, math.Hypot(v.Y, v.Z)) * 180 / math.Pi
	roll = math.Atan2(v.Y, math.Hypot(v.X, v.Z)) * 180 / math.Pi
	return pitch, roll
}

var _ Axes = Sample{}
