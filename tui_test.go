package main

import (
	"errors"
	"strings"
	"testing"

	tcell "github.com/gdamore/tcell/v2"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

func screenRow(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

func screenContains(screen tcell.Screen, text string) bool {
	_, height := screen.Size()
	for y := 0; y < height; y++ {
		if strings.Contains(screenRow(screen, y), text) {
			return true
		}
	}
	return false
}

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTUIDiskListNavigation(t *testing.T) {
	s := &tuiState{disks: []DiskInfo{
		{Path: "/dev/sda"},
		{Path: "/dev/sdb"},
		{Path: "/dev/sdc"},
	}}

	s.handleKeyEvent(keyEvent(tcell.KeyDown))
	s.handleKeyEvent(runeEvent('j'))
	if s.selectedIndex != 2 {
		t.Errorf("selectedIndex = %d after two downs, want 2", s.selectedIndex)
	}

	// Already at the bottom; selection clamps.
	s.handleKeyEvent(keyEvent(tcell.KeyDown))
	if s.selectedIndex != 2 {
		t.Errorf("selectedIndex = %d, want clamped 2", s.selectedIndex)
	}

	s.handleKeyEvent(runeEvent('k'))
	s.handleKeyEvent(keyEvent(tcell.KeyUp))
	s.handleKeyEvent(keyEvent(tcell.KeyUp))
	if s.selectedIndex != 0 {
		t.Errorf("selectedIndex = %d, want clamped 0", s.selectedIndex)
	}
}

func TestTUISelectAndBack(t *testing.T) {
	path := writeImage(t, "mbr.img", mbrImageBytes())
	s := &tuiState{
		disks:      []DiskInfo{{Path: path}},
		maxEntries: defaultMaxGPTEntries,
	}

	s.handleKeyEvent(keyEvent(tcell.KeyEnter))
	if !s.showingPartitions {
		t.Fatal("enter did not open the partition view")
	}
	if s.currentDisk != path {
		t.Errorf("currentDisk = %q, want %q", s.currentDisk, path)
	}
	if s.layoutErr != nil {
		t.Fatalf("layoutErr = %v", s.layoutErr)
	}
	if s.layout == nil || len(s.layout.Records) != 1 {
		t.Fatalf("layout = %+v", s.layout)
	}

	s.handleKeyEvent(keyEvent(tcell.KeyLeft))
	if s.showingPartitions || s.layout != nil || s.currentDisk != "" {
		t.Error("left did not reset the partition view")
	}
}

func TestTUIRecordNavigation(t *testing.T) {
	s := &tuiState{
		showingPartitions: true,
		layout: &diskLayout{Records: []partitionRecord{
			{Index: 1}, {Index: 2},
		}},
	}

	s.handleKeyEvent(keyEvent(tcell.KeyDown))
	if s.selectedRecordIdx != 1 {
		t.Errorf("selectedRecordIdx = %d, want 1", s.selectedRecordIdx)
	}
	s.handleKeyEvent(runeEvent('j'))
	if s.selectedRecordIdx != 1 {
		t.Errorf("selectedRecordIdx = %d, want clamped 1", s.selectedRecordIdx)
	}
	s.handleKeyEvent(runeEvent('k'))
	if s.selectedRecordIdx != 0 {
		t.Errorf("selectedRecordIdx = %d, want 0", s.selectedRecordIdx)
	}
}

func TestTUIRenderDiskList(t *testing.T) {
	screen := simScreen(t)
	defer screen.Fini()

	s := &tuiState{
		disks: []DiskInfo{
			{Path: "/dev/sda", Kind: "SSD", Model: "Samsung SSD 970", MountPoint: "/", FsTotal: 107374182400, FsUsed: 32212254720},
			{Path: "/dev/sdb", Kind: "removable"},
		},
	}
	s.renderDiskList(screen)

	if !screenContains(screen, "=== Available Disks ===") {
		t.Error("title missing")
	}
	if !screenContains(screen, "> /dev/sda [SSD] Samsung SSD 970") {
		t.Error("selected disk row missing")
	}
	if !screenContains(screen, "/dev/sdb [removable]") {
		t.Error("second disk row missing")
	}
	if !screenContains(screen, "Mounted on: /") {
		t.Error("mount point missing from status bar")
	}
	if !screenContains(screen, "30 GiB used of 100 GiB") {
		t.Error("filesystem use missing from status bar")
	}
}

func TestTUIRenderPartitionsGPT(t *testing.T) {
	screen := simScreen(t)
	defer screen.Fini()

	s := &tuiState{
		showingPartitions: true,
		currentDisk:       "/dev/nvme0n1",
		layout: &diskLayout{
			Scheme: schemeGPT,
			GPT:    &gptSummary{DiskGUID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"},
			Records: []partitionRecord{
				{
					Index:      1,
					TypeGUID:   "c12a7328-f81f-11d2-ba4b-00a0c93ec93b",
					UniqueGUID: "12345678-1234-5678-9abc-def012345678",
					StartLBA:   34,
					EndLBA:     2081,
					SizeBytes:  1048576,
					Type:       lookupGPTType("c12a7328-f81f-11d2-ba4b-00a0c93ec93b"),
					Name:       "EFI",
				},
			},
			Warnings: []string{"something looked off"},
		},
	}
	s.renderPartitions(screen)

	if !screenContains(screen, "Partitions for /dev/nvme0n1") {
		t.Error("title missing")
	}
	if !screenContains(screen, "GPT partition table, 1 partitions") {
		t.Error("scheme line missing")
	}
	if !screenContains(screen, "Disk GUID: aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee") {
		t.Error("disk GUID missing")
	}
	if !screenContains(screen, "EFI System Partition") {
		t.Error("record row missing")
	}
	if !screenContains(screen, "warning: something looked off") {
		t.Error("warning missing")
	}
	// The status bar clips at 80 columns; the type GUID detail fits.
	if !screenContains(screen, "TypeGUID: c12a7328-f81f-11d2-ba4b-00a0c93ec93b") {
		t.Error("status bar details missing")
	}
}

func TestTUIRenderPartitionsError(t *testing.T) {
	screen := simScreen(t)
	defer screen.Fini()

	s := &tuiState{
		showingPartitions: true,
		currentDisk:       "/dev/sdz",
		layoutErr:         errors.New("no valid boot sector"),
	}
	s.renderPartitions(screen)

	if !screenContains(screen, "no valid boot sector") {
		t.Error("error text missing")
	}
	if !screenContains(screen, "Left/B: Back") {
		t.Error("error view footer missing")
	}
}
