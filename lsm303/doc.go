// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lsm303 controls the accelerometer of an LSM303 class 3-axis sensor
// over I²C from user space, through the /dev/i2c-N character device.
//
// The register layout is the 14-bit one with a chip ID of 0x03 at register
// 0x00, a packed range field at 0x35, a bandwidth field at 0x20 and a
// mode_config field at 0x30. Configuration registers only accept writes
// once the ee_w bit of ctrl_reg0 is set, which Open does.
//
// Range: ±1g to ±16g
//
// Temperature resolution: 0.5°C
//
// Raw axis counts are exposed as read. Pitch and roll are derived from the
// same counts and are in degrees. Sample returns counts scaled to g by the
// sensitivity of the current range.
package lsm303
