//go:build linux

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unsafe"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"
)

// openDevice opens a device node or image file read-only. Character devices
// are rejected: on Linux those are controller nodes (e.g. /dev/nvme0), which
// cannot be read sector-wise.
func openDevice(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}

	mode := info.Mode()
	if mode&os.ModeDevice != 0 && mode&os.ModeCharDevice != 0 {
		file.Close()
		return nil, fmt.Errorf("%s is a character device, not a block device; use the block device namespace instead, e.g. /dev/nvme0n1", path)
	}

	return file, nil
}

// getSectorSize reports the device's logical sector size. Image files and
// devices that answer neither the ioctl nor sysfs report 512.
func getSectorSize(file *os.File) int {
	size, err := unix.IoctlGetInt(int(file.Fd()), unix.BLKSSZGET)
	if err == nil {
		return size
	}

	// If the ioctl fails, fall back to reading from sysfs
	devName := filepath.Base(file.Name()) // e.g. /dev/sda -> sda
	s, err := readFirstLine("/sys/class/block/" + devName + "/queue/hw_sector_size")
	if err == nil {
		if sz, convErr := strconv.Atoi(s); convErr == nil && sz > 0 {
			return sz
		}
	}

	return 512
}

// getBlockDeviceSize retrieves the total size of a block device. The sysfs
// size file works without elevated privileges; the BLKGETSIZE64 ioctl covers
// devices that are absent from sysfs.
func getBlockDeviceSize(devPath string) (uint64, error) {
	devName := filepath.Base(devPath)
	if s, err := readFirstLine("/sys/class/block/" + devName + "/size"); err == nil && s != "" {
		if sectors, convErr := strconv.ParseUint(s, 10, 64); convErr == nil {
			return sectors * sectorSize, nil
		}
	}

	f, err := os.Open(devPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var size uint64
	_, _, e := unix.Syscall(unix.SYS_IOCTL, f.Fd(), unix.BLKGETSIZE64, uintptr(unsafe.Pointer(&size)))
	if e != 0 {
		// Image files answer neither sysfs nor the ioctl.
		if end, serr := f.Seek(0, io.SeekEnd); serr == nil && end > 0 {
			return uint64(end), nil
		}
		return 0, fmt.Errorf("ioctl BLKGETSIZE64 failed: %v", e)
	}
	return size, nil
}

// readFirstLine returns the first line of a sysfs attribute, trimmed.
func readFirstLine(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	s := string(data)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s), nil
}

// findMountPointForDevice tries to find where the device is mounted by reading /proc/self/mountinfo
func findMountPointForDevice(devPath string) (string, error) {
	f, err := os.Open("/proc/self/mountinfo")
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Split(line, " - ")
		if len(parts) < 2 {
			continue
		}
		beforeDash := parts[0]
		afterDash := parts[1]

		beforeFields := strings.Split(beforeDash, " ")
		if len(beforeFields) < 5 {
			continue
		}

		mountPoint := beforeFields[4]
		afterFields := strings.Split(afterDash, " ")
		if len(afterFields) < 3 {
			continue
		}
		mountedDev := afterFields[1]

		if mountedDev == devPath {
			return mountPoint, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no mount found for device %s", devPath)
}

// getFsSpace returns total, used, and free space for a mounted filesystem
func getFsSpace(mountPoint string) (total, used, free uint64, err error) {
	var fs unix.Statfs_t
	err = unix.Statfs(mountPoint, &fs)
	if err != nil {
		return 0, 0, 0, err
	}

	total = fs.Blocks * uint64(fs.Bsize)
	free = fs.Bfree * uint64(fs.Bsize)
	available := fs.Bavail * uint64(fs.Bsize)
	used = total - available
	return total, used, free, nil
}

func hasReadPermission(device string) bool {
	checkWSL()
	file, err := os.OpenFile(device, os.O_RDONLY, 0)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

var wslWarned bool

func checkWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}

	wsl := strings.Contains(strings.ToLower(string(data)), "wsl")
	if wsl && !wslWarned {
		wslWarned = true
		color.New(color.FgRed, color.BlinkSlow).Fprintln(os.Stderr, "Running inside WSL!")
	}
	return wsl
}
