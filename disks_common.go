package main

// DiskInfo describes one discovered whole-disk device.
type DiskInfo struct {
	Path       string
	Model      string
	Size       uint64 // bytes, 0 if unavailable
	Kind       string // HDD, SSD, removable, synthesized, physical, unknown
	MountPoint string // empty when no filesystem mount was found
	FsTotal    uint64
	FsUsed     uint64
	FsFree     uint64
}

// getDiskListData returns structured disk information.
// Platform-specific implementations in disks_linux.go, disks_darwin.go, disks_windows.go
func getDiskListData() []DiskInfo {
	return getDiskListDataPlatform()
}
