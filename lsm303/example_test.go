// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303_test

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/finson/ews-bbb/lsm303"
)

func Example() {
	// Open /dev/i2c-1 on first use. Make sure the user can read and write
	// the device file, e.g. by being in the i2c group.
	d, err := lsm303.New(1, lsm303.DefaultAddr, "chassis", nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.Open(); err != nil {
		log.Fatal(err)
	}
	defer d.Close()

	if err := d.SetRange(lsm303.PlusMinus2G); err != nil {
		log.Fatal(err)
	}
	if err := d.SetBandwidth(lsm303.BW150Hz); err != nil {
		log.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		if err := d.ReadFullSensorState(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("x:%d y:%d z:%d pitch:%.1f roll:%.1f %s\n",
			d.AccelerationX(), d.AccelerationY(), d.AccelerationZ(),
			d.Pitch(), d.Roll(), d.Temperature())
		time.Sleep(100 * time.Millisecond)
	}
}

func ExampleNewI2C() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := lsm303.NewI2C(b, lsm303.DefaultAddr, &lsm303.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	s, err := d.Sense()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)
}
