// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"

	"github.com/finson/ews-bbb/accel"
)

var (
	barPositive = color.NRGBA{0x20, 0xc0, 0x20, 0xff}
	barNegative = color.NRGBA{0xc0, 0x20, 0x20, 0xff}
	barEmpty    = color.NRGBA{0x30, 0x30, 0x30, 0xff}
	barCenter   = color.NRGBA{0x80, 0x80, 0x80, 0xff}
)

// barWriter draws one line per reading, with a bar per axis that grows left
// or right of its center cell, using ANSI color codes.
type barWriter struct {
	w       io.Writer
	cells   int
	palette *ansi256.Palette

	buf bytes.Buffer
}

// newBarWriter returns a barWriter drawing bars of cells blocks on each side
// of zero.
func newBarWriter(w io.Writer, cells int, p *ansi256.Palette) *barWriter {
	if p == nil {
		p = ansi256.Default
	}
	return &barWriter{w: w, cells: cells, palette: p}
}

// Write draws s, scaled so that fullScale fills a bar, followed by extra.
func (b *barWriter) Write(s accel.Sample, fullScale float64, extra string) error {
	// This code is designed to minimize the amount of memory allocated per call.
	b.buf.Reset()
	_, _ = b.buf.WriteString("\r\033[0m")
	for _, axis := range [...]struct {
		name string
		v    float64
	}{{"X", s.X()}, {"Y", s.Y()}, {"Z", s.Z()}} {
		fmt.Fprintf(&b.buf, "%s ", axis.name)
		b.bar(axis.v / fullScale)
		fmt.Fprintf(&b.buf, "\033[0m %+6.3fg  ", axis.v)
	}
	_, _ = b.buf.WriteString(extra)
	_, _ = b.buf.WriteString("\033[0m\n")
	_, err := b.buf.WriteTo(b.w)
	return err
}

// bar draws a 2*cells+1 wide bar for a value in [-1, 1].
func (b *barWriter) bar(ratio float64) {
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}
	filled := int(ratio*float64(b.cells) + 0.5)
	if ratio < 0 {
		filled = -int(-ratio*float64(b.cells) + 0.5)
	}
	for i := -b.cells; i <= b.cells; i++ {
		c := barEmpty
		switch {
		case i == 0:
			c = barCenter
		case i > 0 && i <= filled:
			c = barPositive
		case i < 0 && i >= filled:
			c = barNegative
		}
		_, _ = io.WriteString(&b.buf, b.palette.Block(c))
	}
}
