package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// analyzeDevice opens a device node or image file read-only and assembles
// its partition layout. The decode runs in its own goroutine so a device
// that stops answering reads cannot outlive ctx.
func analyzeDevice(ctx context.Context, path string, maxEntries uint32) (*diskLayout, error) {
	f, err := openDevice(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.WithField("device", path).Debug("analyzing partition table")

	if sz := getSectorSize(f); sz != sectorSize {
		log.WithField("device", path).Warnf("logical sector size is %d bytes, decoding assumes %d", sz, sectorSize)
	}

	doneCh := make(chan struct{})
	var layout *diskLayout
	var aerr error
	go func() {
		layout, aerr = assemble(newReaderAtSource(f), maxEntries)
		close(doneCh)
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", path, ctx.Err())
	case <-doneCh:
	}
	if aerr != nil {
		return nil, fmt.Errorf("%s: %w", path, aerr)
	}

	layout.Device = path
	return layout, nil
}

// analyzeBatch analyzes each device independently. One device failing is
// logged and collected; the remaining devices are still analyzed.
func analyzeBatch(ctx context.Context, paths []string, maxEntries uint32) ([]*diskLayout, error) {
	var layouts []*diskLayout
	var errs error
	for _, path := range paths {
		layout, err := analyzeDevice(ctx, path, maxEntries)
		if err != nil {
			log.WithField("device", path).WithError(err).Error("analysis failed")
			errs = multierr.Append(errs, err)
			continue
		}
		layouts = append(layouts, layout)
	}
	return layouts, errs
}
