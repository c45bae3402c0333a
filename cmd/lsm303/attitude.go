// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// drawAttitude renders an attitude indicator: sky above the horizon, ground
// below, rotated by roll and shifted by pitch, with a fixed aircraft mark.
func drawAttitude(pitch, roll float64, size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	c := s / 2
	r := c * 0.9

	dc.SetRGB(0, 0, 0)
	dc.Clear()

	dc.DrawCircle(c, c, r)
	dc.Clip()
	dc.RotateAbout(gg.Radians(-roll), c, c)
	// 90° of pitch moves the horizon by the radius.
	horizon := c + pitch/90*r
	dc.SetRGB(0.25, 0.55, 0.95)
	dc.DrawRectangle(-s, -2*s, 3*s, horizon+2*s)
	dc.Fill()
	dc.SetRGB(0.55, 0.35, 0.15)
	dc.DrawRectangle(-s, horizon, 3*s, 3*s)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	dc.DrawLine(-s, horizon, 2*s, horizon)
	dc.Stroke()
	dc.Identity()
	dc.ResetClip()

	dc.SetRGB(1, 0.85, 0)
	dc.SetLineWidth(3)
	dc.DrawLine(c-r/2, c, c-r/8, c)
	dc.DrawLine(c+r/8, c, c+r/2, c)
	dc.Stroke()
	dc.DrawCircle(c, c, 3)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(fmt.Sprintf("pitch %+.1f roll %+.1f", pitch, roll), c, s-6, 0.5, 0)
	return dc.Image()
}

// saveAttitude writes the attitude indicator to a PNG file.
func saveAttitude(path string, pitch, roll float64, size int) error {
	return gg.SavePNG(path, drawAttitude(pitch, roll, size))
}
