// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import (
	"fmt"

	"github.com/finson/ews-bbb/common"
)

// Range is the full scale of the accelerometer.
type Range byte

// Bandwidth is the output filter setting.
type Bandwidth byte

// ModeConfig selects the noise/power trade-off of the analog front end.
type ModeConfig byte

const (
	PlusMinus1G       Range = 0
	PlusMinus1Point5G Range = 1
	PlusMinus2G       Range = 2
	PlusMinus3G       Range = 3
	PlusMinus4G       Range = 4
	PlusMinus8G       Range = 5
	PlusMinus16G      Range = 6

	BW10Hz     Bandwidth = 0
	BW20Hz     Bandwidth = 1
	BW40Hz     Bandwidth = 2
	BW75Hz     Bandwidth = 3
	BW150Hz    Bandwidth = 4
	BW300Hz    Bandwidth = 5
	BW600Hz    Bandwidth = 6
	BW1200Hz   Bandwidth = 7
	BWHighPass Bandwidth = 8
	BWBandPass Bandwidth = 9

	ModeLowNoise ModeConfig = 0
	ModeLowPower ModeConfig = 3
)

const (
	// DefaultAddr is the I²C address with SDO tied low.
	DefaultAddr uint16 = 0x40
	// AltAddr is the I²C address with SDO tied high.
	AltAddr uint16 = 0x41
	// ChipID is the content of register 0x00.
	ChipID byte = 0x03

	regChipID    byte = 0x00
	regAccXLSB   byte = 0x02
	regAccXMSB   byte = 0x03
	regAccYLSB   byte = 0x04
	regAccYMSB   byte = 0x05
	regAccZLSB   byte = 0x06
	regAccZMSB   byte = 0x07
	regTemp      byte = 0x08
	regCtrl0     byte = 0x0d
	regSoftReset byte = 0x10
	regBandwidth byte = 0x20
	regMode      byte = 0x30
	regRange     byte = 0x35

	softResetValue byte = 0xb6

	// bufferSize covers the whole register image read by ReadFullSensorState.
	bufferSize = 0x80
	// maxBusNameSize bounds the device file path.
	maxBusNameSize = 64

	// Counts are 14 bits, two's complement.
	countsPerFullScale = 1 << 13
)

var (
	eeWriteBit     = common.Field{Shift: 4, Width: 1}
	sleepBit       = common.Field{Shift: 1, Width: 1}
	bandwidthField = common.Field{Shift: 4, Width: 4}
	modeField      = common.Field{Shift: 0, Width: 2}
	rangeField     = common.Field{Shift: 1, Width: 3}
)

var rangeNames = [...]string{"±1g", "±1.5g", "±2g", "±3g", "±4g", "±8g", "±16g"}

// fullScale is the magnitude, in g, of the largest count of each range.
var fullScale = [...]float64{1, 1.5, 2, 3, 4, 8, 16}

// Valid reports whether r is a range the chip supports.
func (r Range) Valid() bool {
	return int(r) < len(rangeNames)
}

func (r Range) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Range(%d)", byte(r))
	}
	return rangeNames[r]
}

// FullScale returns the largest magnitude, in g, that r can report, or 0 for
// an invalid range.
func (r Range) FullScale() float64 {
	if !r.Valid() {
		return 0
	}
	return fullScale[r]
}

// Sensitivity returns the acceleration in g of one count at range r, or 0
// for an invalid range.
func Sensitivity(r Range) float64 {
	return r.FullScale() / countsPerFullScale
}

var bandwidthNames = [...]string{"10Hz", "20Hz", "40Hz", "75Hz", "150Hz", "300Hz", "600Hz", "1200Hz", "high-pass", "band-pass"}

// Valid reports whether b is a bandwidth the chip supports.
func (b Bandwidth) Valid() bool {
	return int(b) < len(bandwidthNames)
}

func (b Bandwidth) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Bandwidth(%d)", byte(b))
	}
	return bandwidthNames[b]
}

// Valid reports whether m is a mode the driver supports.
func (m ModeConfig) Valid() bool {
	return m == ModeLowNoise || m == ModeLowPower
}

func (m ModeConfig) String() string {
	switch m {
	case ModeLowNoise:
		return "low noise"
	case ModeLowPower:
		return "low power"
	default:
		return fmt.Sprintf("ModeConfig(%d)", byte(m))
	}
}

// convertAcceleration assembles the 14 bit count held left-justified in an
// MSB/LSB register pair. The two low bits of the LSB carry status flags.
func convertAcceleration(msb, lsb byte) int16 {
	return int16(uint16(msb)<<8|uint16(lsb)) >> 2
}
