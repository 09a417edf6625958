//go:build darwin

package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	// DKIOCGETBLOCKSIZE is the ioctl to get block size on macOS
	DKIOCGETBLOCKSIZE = 0x40046418
	// DKIOCGETBLOCKCOUNT is the ioctl to get block count on macOS
	DKIOCGETBLOCKCOUNT = 0x40086419
	// DKIOCGETPHYSICALBLOCKSIZE is the ioctl to get physical block size
	DKIOCGETPHYSICALBLOCKSIZE = 0x4004641A
)

// openDevice opens a device node or image file read-only. Raw device nodes
// are redirected to their block device, which supports unaligned reads.
func openDevice(path string) (*os.File, error) {
	if strings.HasPrefix(path, "/dev/rdisk") {
		path = strings.Replace(path, "/dev/rdisk", "/dev/disk", 1)
	}

	file, err := os.Open(path)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "resource busy") || strings.Contains(errStr, "device busy") {
			return nil, fmt.Errorf("%s is busy (mounted); unmount it first, e.g. diskutil unmountDisk %s", path, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return file, nil
}

func getSectorSize(file *os.File) int {
	var blockSize uint32
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, file.Fd(), DKIOCGETBLOCKSIZE, uintptr(unsafe.Pointer(&blockSize)))
	if errno == 0 {
		return int(blockSize)
	}

	// Try to get physical block size as fallback
	var physBlockSize uint32
	_, _, errno = unix.Syscall(unix.SYS_IOCTL, file.Fd(), DKIOCGETPHYSICALBLOCKSIZE, uintptr(unsafe.Pointer(&physBlockSize)))
	if errno == 0 {
		return int(physBlockSize)
	}

	return 512
}

// getBlockDeviceSize retrieves the total size of the block device using ioctl
func getBlockDeviceSize(devPath string) (uint64, error) {
	f, err := os.Open(devPath)
	if err != nil {
		// A busy block device can still be sized through its raw node
		errStr := err.Error()
		if strings.Contains(errStr, "resource busy") || strings.Contains(errStr, "device busy") {
			rawPath := strings.Replace(devPath, "/dev/disk", "/dev/rdisk", 1)
			if f, err = os.Open(rawPath); err != nil {
				return 0, err
			}
		} else {
			return 0, err
		}
	}
	defer f.Close()

	var blockSize uint32
	var blockCount uint64

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), DKIOCGETBLOCKSIZE, uintptr(unsafe.Pointer(&blockSize)))
	if errno != 0 {
		blockSize = 512
	}

	_, _, errno = unix.Syscall(unix.SYS_IOCTL, f.Fd(), DKIOCGETBLOCKCOUNT, uintptr(unsafe.Pointer(&blockCount)))
	if errno != 0 {
		stat, err := f.Stat()
		if err != nil {
			return 0, err
		}
		return uint64(stat.Size()), nil
	}

	return uint64(blockSize) * blockCount, nil
}

// findMountPointForDevice tries to find where the device is mounted using the mount command
func findMountPointForDevice(devPath string) (string, error) {
	cmd := exec.Command("mount")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	baseName := filepath.Base(devPath)

	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) >= 3 {
			device := parts[0]
			mountPoint := parts[2]

			if strings.Contains(device, baseName) || device == devPath {
				return mountPoint, nil
			}
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
	// For /dev/disk* devices the raw node answers even when the block
	// device is busy, so probe it first.
	if strings.HasPrefix(device, "/dev/disk") && !strings.HasPrefix(device, "/dev/rdisk") {
		rawPath := strings.Replace(device, "/dev/disk", "/dev/rdisk", 1)
		file, err := os.OpenFile(rawPath, os.O_RDONLY, 0)
		if err == nil {
			file.Close()
			return true
		}
	}

	file, err := os.OpenFile(device, os.O_RDONLY, 0)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
