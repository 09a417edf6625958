//go:build linux

package main

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

func getDiskListDataPlatform() []DiskInfo {
	var disks []DiskInfo
	blockDevices, err := os.ReadDir("/sys/class/block")
	if err != nil {
		log.WithError(err).Error("reading /sys/class/block")
		return disks
	}

	excludePrefixes := []string{"loop", "zram", "ram"}

	for _, bd := range blockDevices {
		devName := bd.Name()

		excluded := false
		for _, prefix := range excludePrefixes {
			if strings.HasPrefix(devName, prefix) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}

		// Partitions carry a partition attribute in sysfs; only whole disks stay.
		if _, err := os.Stat(filepath.Join("/sys/class/block", devName, "partition")); err == nil {
			continue
		}

		devPath := "/dev/" + devName

		info := DiskInfo{
			Path:  devPath,
			Model: getDiskModel(devName),
			Kind:  getDiskKind(devName),
		}

		if size, err := getBlockDeviceSize(devPath); err == nil {
			info.Size = size
		} else {
			log.WithField("device", devPath).WithError(err).Debug("size unavailable")
		}

		// Filesystem usage only applies when the whole disk carries a mount.
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

func getDiskModel(name string) string {
	vendor, _ := readFirstLine("/sys/class/block/" + name + "/device/vendor")
	model, _ := readFirstLine("/sys/class/block/" + name + "/device/model")
	return strings.TrimSpace(vendor + " " + model)
}

// getDiskKind classifies the device from its sysfs attributes.
func getDiskKind(name string) string {
	if s, _ := readFirstLine("/sys/class/block/" + name + "/removable"); s != "" && s != "0" {
		return "removable"
	}
	switch s, _ := readFirstLine("/sys/block/" + name + "/queue/rotational"); s {
	case "1":
		return "HDD"
	case "0":
		return "SSD"
	default:
		return "unknown"
	}
}
