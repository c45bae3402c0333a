// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// lsm303 reads an accelerometer over I²C and prints each reading.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"periph.io/x/host/v3"

	"github.com/finson/ews-bbb/lsm303"
)

const (
	// Flags.
	flagBus       = "bus"
	flagAddr      = "addr"
	flagName      = "name"
	flagRange     = "range"
	flagBandwidth = "bandwidth"
	flagMode      = "mode"
	flagInterval  = "interval"
	flagCount     = "count"
	flagPNG       = "png"
	flagDebug     = "debug"

	barCells     = 12
	attitudeSize = 240
)

func main() {
	app := &cli.App{
		Name:  "lsm303",
		Usage: "read an LSM303 accelerometer on /dev/i2c-N",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: flagBus, Aliases: []string{"b"}, Value: 1, Usage: "I²C bus number"},
			&cli.UintFlag{Name: flagAddr, Aliases: []string{"a"}, Value: uint(lsm303.DefaultAddr), Usage: "I²C address"},
			&cli.StringFlag{Name: flagName, Value: "lsm303", Usage: "display name of the device"},
			&cli.StringFlag{Name: flagRange, Aliases: []string{"r"}, Value: "2g", Usage: "full scale: 1g, 1.5g, 2g, 3g, 4g, 8g or 16g"},
			&cli.StringFlag{Name: flagBandwidth, Value: "150Hz", Usage: "filter: 10Hz .. 1200Hz, high-pass or band-pass"},
			&cli.StringFlag{Name: flagMode, Value: "low-noise", Usage: "low-noise or low-power"},
			&cli.DurationFlag{Name: flagInterval, Aliases: []string{"i"}, Value: 100 * time.Millisecond, Usage: "time between readings"},
			&cli.IntFlag{Name: flagCount, Aliases: []string{"n"}, Usage: "number of readings, 0 for until interrupted"},
			&cli.StringFlag{Name: flagPNG, Usage: "write an attitude indicator of the last reading to `FILE`"},
			&cli.BoolFlag{Name: flagDebug, Aliases: []string{"vvv"}, Usage: "enable debug logging"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar().Named("lsm303"), nil
}

func run(c *cli.Context) (err error) {
	logger, err := newLogger(c.Bool(flagDebug))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rng, err := parseRange(c.String(flagRange))
	if err != nil {
		return err
	}
	bw, err := parseBandwidth(c.String(flagBandwidth))
	if err != nil {
		return err
	}
	mode, err := parseMode(c.String(flagMode))
	if err != nil {
		return err
	}

	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		return err
	}

	d, err := lsm303.New(c.Int(flagBus), uint16(c.Uint(flagAddr)), c.String(flagName), nil)
	if err != nil {
		return err
	}
	d.EnableDebug(logger.Debugf)
	if err := d.Open(); err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, d.Close()) }()

	if err := d.SetRange(rng); err != nil {
		return err
	}
	if err := d.SetBandwidth(bw); err != nil {
		return err
	}
	if err := d.SetModeConfig(mode); err != nil {
		return err
	}
	logger.Infow("configured", "device", d.String(), "range", rng, "bandwidth", bw, "mode", mode)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()
	out := newBarWriter(colorable.NewColorableStdout(), barCells, nil)
	if err := measure(ctx, d, rng.FullScale(), c.Duration(flagInterval), c.Int(flagCount), out); err != nil {
		return err
	}

	if path := c.String(flagPNG); path != "" {
		if err := saveAttitude(path, d.Pitch(), d.Roll(), attitudeSize); err != nil {
			return err
		}
		logger.Infow("wrote attitude", "path", path, "pitch", d.Pitch(), "roll", d.Roll())
	}
	return nil
}

// measure reads the device every interval, count times or until ctx is
// done when count is 0. Bars are full at fullScale g.
func measure(ctx context.Context, d *lsm303.Dev, fullScale float64, interval time.Duration, count int, out *barWriter) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; count <= 0 || n < count; n++ {
		s, err := d.Sense()
		if err != nil {
			return err
		}
		extra := fmt.Sprintf("pitch %+6.1f roll %+6.1f %s", d.Pitch(), d.Roll(), d.Temperature())
		if err := out.Write(s, fullScale, extra); err != nil {
			return err
		}
		if count > 0 && n == count-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func parseRange(s string) (lsm303.Range, error) {
	for r := lsm303.PlusMinus1G; r.Valid(); r++ {
		if strings.EqualFold(strings.TrimPrefix(r.String(), "±"), s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown range %q", s)
}

func parseBandwidth(s string) (lsm303.Bandwidth, error) {
	for b := lsm303.BW10Hz; b.Valid(); b++ {
		if strings.EqualFold(b.String(), s) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown bandwidth %q", s)
}

func parseMode(s string) (lsm303.ModeConfig, error) {
	for _, m := range []lsm303.ModeConfig{lsm303.ModeLowNoise, lsm303.ModeLowPower} {
		if strings.EqualFold(strings.ReplaceAll(m.String(), " ", "-"), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}
