//go:build windows

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

func getDiskListDataPlatform() []DiskInfo {
	var disks []DiskInfo

	// Physical drive numbering is dense from 0, but hotplug can leave
	// gaps; probing a fixed range covers both.
	for n := 0; n < 32; n++ {
		devPath := fmt.Sprintf(`\\.\PhysicalDrive%d`, n)
		f, err := os.Open(devPath)
		if err != nil {
			continue
		}

		info := DiskInfo{Path: devPath, Kind: "physical"}
		if geom, err := getDriveGeometry(windows.Handle(f.Fd())); err == nil {
			info.Size = uint64(geom.DiskSize)
		} else {
			log.WithField("device", devPath).WithError(err).Debug("size unavailable")
		}
		f.Close()

		disks = append(disks, info)
	}

	return disks
}
