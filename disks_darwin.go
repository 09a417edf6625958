//go:build darwin

package main

import (
	"errors"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

func getDiskListDataPlatform() []DiskInfo {
	var disks []DiskInfo
	entries, err := os.ReadDir("/dev")
	if err != nil {
		log.WithError(err).Error("reading /dev")
		return disks
	}

	// Whole disks are diskN; diskNsM nodes are their slices and fold back
	// onto the parent disk.
	diskMap := make(map[string]bool)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "disk") || len(name) < 5 {
			continue
		}
		num := name[4:]
		if idx := strings.IndexByte(num, 's'); idx > 0 {
			num = num[:idx]
		}
		if !allDigits(num) {
			continue
		}
		diskMap["disk"+num] = true
	}

	diskNames := make([]string, 0, len(diskMap))
	for name := range diskMap {
		diskNames = append(diskNames, name)
	}
	sort.Strings(diskNames)

	for _, diskName := range diskNames {
		devPath := "/dev/" + diskName

		info := DiskInfo{
			Path: devPath,
			Kind: diskKind(devPath),
		}

		if size, err := getBlockDeviceSize(devPath); err == nil {
			info.Size = size
		} else {
			log.WithField("device", devPath).WithError(err).Debug("size unavailable")
		}

		if mountPoint, err := findMountPointForDevice(devPath); err == nil {
			info.MountPoint = mountPoint
			if total, used, free, err := getFsSpace(mountPoint); err == nil {
				info.FsTotal, info.FsUsed, info.FsFree = total, used, free
			}
		}

		disks = append(disks, info)
	}

	return disks
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// diskKind probes the partition table to separate partitioned physical
// disks from synthesized container devices, which carry no table of
// their own.
func diskKind(devPath string) string {
	f, err := openDevice(devPath)
	if err != nil {
		return "unknown"
	}
	defer f.Close()

	_, err = assemble(newReaderAtSource(f), defaultMaxGPTEntries)
	switch {
	case err == nil:
		return "physical"
	case errors.Is(err, errNoBootSector):
		return "synthesized"
	default:
		return "unknown"
	}
}
