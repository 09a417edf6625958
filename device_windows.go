//go:build windows

package main

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	IOCTL_VOLUME_GET_VOLUME_DISK_EXTENTS = 0x00560000
	IOCTL_DISK_GET_DRIVE_GEOMETRY_EX     = 0x000700a0
)

type DiskGeometry struct {
	Cylinders         int64
	MediaType         uint32
	TracksPerCylinder uint32
	SectorsPerTrack   uint32
	BytesPerSector    uint32
}

type DiskGeometryEx struct {
	Geometry DiskGeometry
	DiskSize int64
	Data     [1]byte
}

// openDevice opens a physical drive, drive letter or image file read-only.
// Drive letters resolve to the physical drive backing the volume.
func openDevice(path string) (*os.File, error) {
	if letter, ok := asDriveLetter(path); ok {
		diskNumber, err := driveLetterToDiskNumber(letter)
		if err != nil {
			return nil, err
		}
		path = fmt.Sprintf(`\\.\PhysicalDrive%d`, diskNumber)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return file, nil
}

func asDriveLetter(path string) (string, bool) {
	trimmed := strings.TrimRight(strings.ToUpper(path), `\/:`)
	if len(trimmed) == 1 && trimmed[0] >= 'A' && trimmed[0] <= 'Z' {
		return trimmed, true
	}
	return "", false
}

// driveLetterToDiskNumber resolves a volume to the number of its first
// backing physical disk.
func driveLetterToDiskNumber(driveLetter string) (int, error) {
	volumePath := fmt.Sprintf(`\\.\%s:`, driveLetter)

	volumeHandle, err := windows.CreateFile(
		windows.StringToUTF16Ptr(volumePath),
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0)
	if err != nil {
		if err == windows.ERROR_ACCESS_DENIED {
			return -1, fmt.Errorf("access denied opening volume %s:, run as administrator", driveLetter)
		}
		return -1, fmt.Errorf("opening volume %s:: %w", driveLetter, err)
	}
	defer windows.CloseHandle(volumeHandle)

	type diskExtent struct {
		DiskNumber     uint32
		StartingOffset int64
		ExtentLength   int64
	}
	type volumeDiskExtents struct {
		NumberOfDiskExtents uint32
		Extents             [1]diskExtent
	}

	var extents volumeDiskExtents
	var bytesReturned uint32

	err = windows.DeviceIoControl(
		volumeHandle,
		IOCTL_VOLUME_GET_VOLUME_DISK_EXTENTS,
		nil,
		0,
		(*byte)(unsafe.Pointer(&extents)),
		uint32(unsafe.Sizeof(extents)),
		&bytesReturned,
		nil)
	// ERROR_MORE_DATA happens for volumes spanning multiple disks; the
	// first extent still names a backing disk.
	if err != nil && err != windows.ERROR_MORE_DATA {
		return -1, fmt.Errorf("getting volume disk extents: %w", err)
	}
	if extents.NumberOfDiskExtents == 0 {
		return -1, fmt.Errorf("no disk extents found for volume %s:", driveLetter)
	}
	return int(extents.Extents[0].DiskNumber), nil
}

func getDriveGeometry(h windows.Handle) (*DiskGeometryEx, error) {
	var geom DiskGeometryEx
	var bytesReturned uint32
	err := windows.DeviceIoControl(
		h,
		IOCTL_DISK_GET_DRIVE_GEOMETRY_EX,
		nil,
		0,
		(*byte)(unsafe.Pointer(&geom)),
		uint32(unsafe.Sizeof(geom)),
		&bytesReturned,
		nil)
	if err != nil {
		return nil, err
	}
	return &geom, nil
}

// getSectorSize reports the drive's logical sector size. Image files and
// drives that refuse the geometry ioctl report 512.
func getSectorSize(file *os.File) int {
	geom, err := getDriveGeometry(windows.Handle(file.Fd()))
	if err != nil || geom.Geometry.BytesPerSector == 0 {
		return 512
	}
	return int(geom.Geometry.BytesPerSector)
}

// getBlockDeviceSize retrieves the total size of the drive from its geometry.
func getBlockDeviceSize(devPath string) (uint64, error) {
	f, err := os.Open(devPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	geom, err := getDriveGeometry(windows.Handle(f.Fd()))
	if err != nil {
		return 0, fmt.Errorf("getting drive geometry for %s: %w", devPath, err)
	}
	return uint64(geom.DiskSize), nil
}

func hasReadPermission(device string) bool {
	if letter, ok := asDriveLetter(device); ok {
		device = fmt.Sprintf(`\\.\%s:`, letter)
	}

	h, err := windows.CreateFile(
		windows.StringToUTF16Ptr(device),
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return false
	}
	windows.CloseHandle(h)
	return true
}
