// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package accel

import (
	"math"
	"testing"
)

func TestSampleZeroValue(t *testing.T) {
	var s Sample
	if s.X() != 0 || s.Y() != 0 || s.Z() != 0 {
		t.Errorf("zero Sample should be 0,0,0 got %s", s)
	}
}

func TestNewSample(t *testing.T) {
	s := NewSample(1.5, -2.25, 9.80665)
	if s.X() != 1.5 || s.Y() != -2.25 || s.Z() != 9.80665 {
		t.Errorf("unexpected axes %s", s)
	}
	v := s.Vector()
	if v.X != s.X() || v.Y != s.Y() || v.Z != s.Z() {
		t.Errorf("Vector() = %v does not match %s", v, s)
	}
}

func TestPitchRoll(t *testing.T) {
	tests := []struct {
		name        string
		x, y, z     float64
		pitch, roll float64
	}{
		{"flat", 0, 0, 1, 0, 0},
		{"flat raw counts", 0, 0, 4096, 0, 0},
		{"upside down", 0, 0, -1, 0, 0},
		{"nose down", 1, 0, 0, 90, 0},
		{"nose up", -1, 0, 0, -90, 0},
		{"right side down", 0, 1, 0, 0, 90},
		{"45 pitch", 1, 0, 1, 45, 0},
		{"45 roll", 0, -1, 1, 0, -45},
		{"no gravity", 0, 0, 0, 0, 0},
	}
	for _, test := range tests {
		pitch, roll := PitchRoll(NewSample(test.x, test.y, test.z))
		if math.Abs(pitch-test.pitch) > 1e-9 || math.Abs(roll-test.roll) > 1e-9 {
			t.Errorf("%s: PitchRoll(%v,%v,%v) = %v,%v expected %v,%v",
				test.name, test.x, test.y, test.z, pitch, roll, test.pitch, test.roll)
		}
	}
}
