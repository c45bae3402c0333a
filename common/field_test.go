// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestField(t *testing.T) {
	tests := []struct {
		f    Field
		reg  byte
		v    byte
		mask byte
		set  byte
	}{
		{Field{Shift: 4, Width: 4}, 0x0a, 0x03, 0xf0, 0x3a},
		{Field{Shift: 1, Width: 3}, 0xff, 0x02, 0x0e, 0xf5},
		{Field{Shift: 0, Width: 2}, 0x80, 0x03, 0x03, 0x83},
		{Field{Shift: 4, Width: 1}, 0x00, 0x01, 0x10, 0x10},
		// Overflowing values are truncated to the field width.
		{Field{Shift: 1, Width: 3}, 0x00, 0xff, 0x0e, 0x0e},
	}
	for _, test := range tests {
		if m := test.f.Mask(); m != test.mask {
			t.Errorf("%+v.Mask() = %#x expected %#x", test.f, m, test.mask)
		}
		got := test.f.Set(test.reg, test.v)
		if got != test.set {
			t.Errorf("%+v.Set(%#x, %#x) = %#x expected %#x", test.f, test.reg, test.v, got, test.set)
		}
		if v := test.f.Get(got); v != test.v&test.f.Max() {
			t.Errorf("%+v.Get(%#x) = %#x expected %#x", test.f, got, v, test.v&test.f.Max())
		}
	}
}
