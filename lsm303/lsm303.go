// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/sysfs"

	"github.com/finson/ews-bbb/accel"
	"github.com/finson/ews-bbb/common"
)

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// Opener opens the I²C bus behind a device file path.
type Opener func(path string) (i2c.BusCloser, error)

// Opts holds the configuration of a Dev.
type Opts struct {
	// ExpectedChipID is compared with register 0x00 on Open and on every
	// full read.
	ExpectedChipID byte
	// Opener opens the bus for New and NewPath. If nil, /dev/i2c-N is opened
	// with the periph sysfs driver and other names are looked up in i2creg
	// after initializing the periph host drivers.
	Opener Opener
}

// DefaultOpts is used when nil options are passed.
var DefaultOpts = Opts{
	ExpectedChipID: ChipID,
}

const devicePrefix = "/dev/i2c-"

// resetDelay is how long the chip needs after a soft reset.
var resetDelay = 10 * time.Millisecond

// Dev is a driver for the accelerometer.
//
// Dev is not safe for concurrent use.
type Dev struct {
	bus     int
	busName string
	name    string
	addr    uint16
	opts    Opts
	debug   DebugF

	b      i2c.Bus
	closer io.Closer
	d      *i2c.Dev

	buf [bufferSize]byte

	x, y, z     int16
	rawTemp     byte
	pitch, roll float64
	rng         Range
	bandwidth   Bandwidth
	mode        ModeConfig
}

// New returns a Dev for the device at addr on /dev/i2c-<bus>. The bus is
// opened by Open.
func New(bus int, addr uint16, name string, opts *Opts) (*Dev, error) {
	if bus < 0 {
		return nil, fmt.Errorf("%w: bus %d", ErrUnsupported, bus)
	}
	d, err := NewPath(devicePrefix+strconv.Itoa(bus), addr, name, opts)
	if err != nil {
		return nil, err
	}
	d.bus = bus
	return d, nil
}

// NewPath returns a Dev for the device at addr on the bus named path, either
// a /dev/i2c-N device file or a bus name known to i2creg such as "I2C1". The
// bus is opened by Open.
func NewPath(path string, addr uint16, name string, opts *Opts) (*Dev, error) {
	if len(path) == 0 || len(path) > maxBusNameSize {
		return nil, fmt.Errorf("%w: bus path %q must be 1 to %d characters", ErrUnsupported, path, maxBusNameSize)
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	return &Dev{
		bus:     -1,
		busName: path,
		name:    name,
		addr:    addr,
		opts:    *opts,
		debug:   noop,
	}, nil
}

// NewI2C returns an opened Dev on an already opened bus. Close does not
// close b.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{
		bus:     -1,
		busName: b.String(),
		name:    "LSM303",
		addr:    addr,
		opts:    *opts,
		debug:   noop,
		b:       b,
	}
	if err := d.Open(); err != nil {
		return nil, err
	}
	return d, nil
}

// EnableDebug Sets the debugging output using the local print function.
func (d *Dev) EnableDebug(f DebugF) {
	d.debug = f
}

func (d *Dev) String() string {
	return fmt.Sprintf("lsm303{%s %s@%#x}", d.name, d.busName, d.addr)
}

// Bus returns the bus number, or -1 when the Dev was not created by New.
func (d *Dev) Bus() int { return d.bus }

// BusName returns the device file path, or the bus name for NewI2C.
func (d *Dev) BusName() string { return d.busName }

// Addr returns the I²C address of the device.
func (d *Dev) Addr() uint16 { return d.addr }

// Name returns the display name of the device.
func (d *Dev) Name() string { return d.name }

// Open opens the bus if needed, checks that the chip answers with the
// expected ID and unlocks the configuration registers. It is a no-op on an
// open Dev.
func (d *Dev) Open() error {
	if d.d != nil {
		return nil
	}
	if d.b == nil {
		opener := d.opts.Opener
		if opener == nil {
			opener = openBus
		}
		bc, err := opener(d.busName)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrOpen, d.busName, err)
		}
		d.b = bc
		d.closer = bc
	}
	d.d = &i2c.Dev{Bus: d.b, Addr: d.addr}
	d.debug("open %s addr %#x", d.busName, d.addr)

	var id [1]byte
	if err := d.d.Tx([]byte{regChipID}, id[:]); err != nil {
		d.abortOpen()
		return fmt.Errorf("%w: no answer at %#x on %s: %w", ErrOpen, d.addr, d.busName, err)
	}
	if id[0] != d.opts.ExpectedChipID {
		d.abortOpen()
		return fmt.Errorf("%w: chip id %#x at %#x, expected %#x", ErrOpen, id[0], d.addr, d.opts.ExpectedChipID)
	}
	if err := d.updateField(regCtrl0, eeWriteBit, 1); err != nil {
		d.abortOpen()
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return nil
}

// abortOpen undoes a partial Open, discarding close errors.
func (d *Dev) abortOpen() {
	_ = d.Close()
}

// Close releases the bus handle if the Dev owns it. Closing a closed or
// never opened Dev returns nil.
func (d *Dev) Close() error {
	d.d = nil
	if d.closer == nil {
		return nil
	}
	c := d.closer
	d.closer = nil
	d.b = nil
	d.debug("close %s", d.busName)
	return c.Close()
}

// Halt puts the chip to sleep. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.updateField(regCtrl0, sleepBit, 1)
}

// Reset issues a soft reset and unlocks the configuration registers again.
func (d *Dev) Reset() error {
	if err := d.writeByte(regSoftReset, softResetValue); err != nil {
		return err
	}
	time.Sleep(resetDelay)
	return d.updateField(regCtrl0, eeWriteBit, 1)
}

// SetRange writes the full scale range.
func (d *Dev) SetRange(r Range) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupported, r)
	}
	if err := d.updateField(regRange, rangeField, byte(r)); err != nil {
		return err
	}
	d.rng = r
	return nil
}

// Range reads the full scale range from the chip.
func (d *Dev) Range() (Range, error) {
	v, err := d.readField(regRange, rangeField)
	if err != nil {
		return d.rng, err
	}
	d.rng = Range(v)
	return d.rng, nil
}

// SetBandwidth writes the filter bandwidth.
func (d *Dev) SetBandwidth(b Bandwidth) error {
	if !b.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupported, b)
	}
	if err := d.updateField(regBandwidth, bandwidthField, byte(b)); err != nil {
		return err
	}
	d.bandwidth = b
	return nil
}

// Bandwidth reads the filter bandwidth from the chip.
func (d *Dev) Bandwidth() (Bandwidth, error) {
	v, err := d.readField(regBandwidth, bandwidthField)
	if err != nil {
		return d.bandwidth, err
	}
	d.bandwidth = Bandwidth(v)
	return d.bandwidth, nil
}

// SetModeConfig writes the noise/power mode.
func (d *Dev) SetModeConfig(m ModeConfig) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupported, m)
	}
	if err := d.updateField(regMode, modeField, byte(m)); err != nil {
		return err
	}
	d.mode = m
	return nil
}

// ModeConfig reads the noise/power mode from the chip.
func (d *Dev) ModeConfig() (ModeConfig, error) {
	v, err := d.readField(regMode, modeField)
	if err != nil {
		return d.mode, err
	}
	d.mode = ModeConfig(v)
	return d.mode, nil
}

// ReadFullSensorState reads the register image in one transfer and updates
// the axis counts, temperature, configuration, pitch and roll.
func (d *Dev) ReadFullSensorState() error {
	if err := d.tx([]byte{regChipID}, d.buf[:]); err != nil {
		return err
	}
	if d.buf[regChipID] != d.opts.ExpectedChipID {
		return fmt.Errorf("%w: lost sync, chip id %#x", ErrTransfer, d.buf[regChipID])
	}
	d.x = convertAcceleration(d.buf[regAccXMSB], d.buf[regAccXLSB])
	d.y = convertAcceleration(d.buf[regAccYMSB], d.buf[regAccYLSB])
	d.z = convertAcceleration(d.buf[regAccZMSB], d.buf[regAccZLSB])
	d.rawTemp = d.buf[regTemp]
	d.rng = Range(rangeField.Get(d.buf[regRange]))
	d.bandwidth = Bandwidth(bandwidthField.Get(d.buf[regBandwidth]))
	d.mode = ModeConfig(modeField.Get(d.buf[regMode]))
	d.pitch, d.roll = accel.PitchRoll(accel.NewSample(float64(d.x), float64(d.y), float64(d.z)))
	d.debug("x %d y %d z %d temp %#x", d.x, d.y, d.z, d.rawTemp)
	return nil
}

// Temperature returns the die temperature of the last full read.
func (d *Dev) Temperature() physic.Temperature {
	return countToTemperature(d.rawTemp)
}

// countToTemperature converts the temperature register: 0.5K per count,
// two's complement, zero at 24°C.
func countToTemperature(raw byte) physic.Temperature {
	return physic.ZeroCelsius + 24*physic.Kelvin + physic.Temperature(int8(raw))*500*physic.MilliKelvin
}

// AccelerationX returns the raw X count of the last full read.
func (d *Dev) AccelerationX() int16 { return d.x }

// AccelerationY returns the raw Y count of the last full read.
func (d *Dev) AccelerationY() int16 { return d.y }

// AccelerationZ returns the raw Z count of the last full read.
func (d *Dev) AccelerationZ() int16 { return d.z }

// Pitch returns the pitch of the last full read, in degrees.
func (d *Dev) Pitch() float64 { return d.pitch }

// Roll returns the roll of the last full read, in degrees.
func (d *Dev) Roll() float64 { return d.roll }

// Sample returns the last full read in g.
func (d *Dev) Sample() accel.Sample {
	s := Sensitivity(d.rng)
	return accel.NewSample(float64(d.x)*s, float64(d.y)*s, float64(d.z)*s)
}

// Sense does a full read and returns the acceleration in g. Implements
// accel.Sensor.
func (d *Dev) Sense() (accel.Sample, error) {
	if err := d.ReadFullSensorState(); err != nil {
		return accel.Sample{}, err
	}
	return d.Sample(), nil
}

func (d *Dev) tx(w, r []byte) error {
	if d.d == nil {
		return ErrNotOpen
	}
	if err := d.d.Tx(w, r); err != nil {
		return fmt.Errorf("%w: register %#x: %w", ErrTransfer, w[0], err)
	}
	return nil
}

func (d *Dev) readByte(reg byte) (byte, error) {
	var r [1]byte
	err := d.tx([]byte{reg}, r[:])
	return r[0], err
}

// writeByte writes a single register.
func (d *Dev) writeByte(reg, value byte) error {
	d.debug("write register %#x value %#x", reg, value)
	return d.tx([]byte{reg, value}, nil)
}

func (d *Dev) readField(reg byte, f common.Field) (byte, error) {
	v, err := d.readByte(reg)
	if err != nil {
		return 0, err
	}
	return f.Get(v), nil
}

// updateField does a read-modify-write of one field of reg.
func (d *Dev) updateField(reg byte, f common.Field, value byte) error {
	current, err := d.readByte(reg)
	if err != nil {
		return err
	}
	return d.writeByte(reg, f.Set(current, value))
}

// openBus opens /dev/i2c-N through the sysfs driver and any other name
// through the i2creg registry.
func openBus(path string) (i2c.BusCloser, error) {
	if n, err := strconv.Atoi(strings.TrimPrefix(path, devicePrefix)); err == nil && strings.HasPrefix(path, devicePrefix) {
		b, err := sysfs.NewI2C(n)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return i2creg.Open(path)
}

func noop(string, ...interface{}) {}

var _ conn.Resource = &Dev{}
var _ accel.Sensor = &Dev{}
