package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	tcell "github.com/gdamore/tcell/v2"
)

// tuiState holds the browser state: the disk list view and, once a disk is
// selected, its decoded layout.
type tuiState struct {
	disks             []DiskInfo
	selectedIndex     int
	showingPartitions bool
	currentDisk       string
	layout            *diskLayout
	layoutErr         error
	selectedRecordIdx int
	maxEntries        uint32
}

// runTUI is the main entry point for the browse command.
func runTUI(maxEntries uint32) error {
	disks := getDiskListData()
	if len(disks) == 0 {
		return fmt.Errorf("no disks found")
	}

	state := &tuiState{
		disks:      disks,
		maxEntries: maxEntries,
	}
	return state.run()
}

func (s *tuiState) run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorBlack))
	screen.Clear()
	screen.Show()

	for {
		if s.showingPartitions {
			s.renderPartitions(screen)
		} else {
			s.renderDiskList(screen)
		}
		screen.Show()

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return nil
			}
			// Escape backs out of the partition view; from the disk
			// list there is nothing left to back out of.
			if ev.Key() == tcell.KeyEscape && !s.showingPartitions {
				return nil
			}
			s.handleKeyEvent(ev)
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	width, _ := screen.Size()
	for _, ch := range text {
		if x >= width {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func drawCentered(screen tcell.Screen, y int, style tcell.Style, text string) {
	width, _ := screen.Size()
	x := (width - len(text)) / 2
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, style, text)
}

// drawStatusBar renders a reverse-video bar with left- and right-aligned
// text, keeping at least one space between them.
func drawStatusBar(screen tcell.Screen, y int, left, right string) {
	width, _ := screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	drawText(screen, 0, y, style, left)

	rightX := width - len(right)
	if rightX <= len(left) {
		rightX = len(left) + 1
	}
	drawText(screen, rightX, y, style, right)
}

func (s *tuiState) renderDiskList(screen tcell.Screen) {
	screen.Clear()
	_, height := screen.Size()

	drawCentered(screen, 0, tcell.StyleDefault.Bold(true), "=== Available Disks ===")

	if s.selectedIndex < 0 {
		s.selectedIndex = 0
	}
	if s.selectedIndex >= len(s.disks) {
		s.selectedIndex = len(s.disks) - 1
	}

	y := 2
	for i, disk := range s.disks {
		if y >= height-3 {
			break
		}

		style := tcell.StyleDefault
		prefix := "  "
		if i == s.selectedIndex {
			style = tcell.StyleDefault.
				Foreground(tcell.ColorBlack).
				Background(tcell.ColorWhite)
			prefix = "> "
		}

		line := prefix + disk.Path
		if disk.Kind != "" {
			line += " [" + disk.Kind + "]"
		}
		if disk.Model != "" {
			line += " " + disk.Model
		}
		drawText(screen, 0, y, style, line)
		y++
	}

	if len(s.disks) > 0 {
		disk := s.disks[s.selectedIndex]

		left := "Not mounted"
		if disk.MountPoint != "" {
			left = "Mounted on: " + disk.MountPoint
		}

		var right string
		switch {
		case disk.FsTotal > 0:
			right = fmt.Sprintf("%s used of %s", humanize.IBytes(disk.FsUsed), humanize.IBytes(disk.FsTotal))
		case disk.Size > 0:
			right = "Size: " + humanize.IBytes(disk.Size)
		default:
			right = "Size unavailable"
		}
		drawStatusBar(screen, height-2, left, right)
	}

	drawCentered(screen, height-1, tcell.StyleDefault.Dim(true),
		"Up/Down: Navigate | Right/Enter: Select | Q/Ctrl+C: Quit")
}

func (s *tuiState) renderPartitions(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()

	drawCentered(screen, 0, tcell.StyleDefault.Bold(true),
		fmt.Sprintf("=== Partitions for %s ===", s.currentDisk))

	if s.layoutErr != nil {
		drawCentered(screen, 3, tcell.StyleDefault.Foreground(tcell.ColorRed), s.layoutErr.Error())
		drawCentered(screen, height-1, tcell.StyleDefault.Dim(true),
			"Left/B: Back | Q/Ctrl+C: Quit")
		return
	}

	layout := s.layout
	drawText(screen, 0, 2, tcell.StyleDefault,
		fmt.Sprintf("%s partition table, %d partitions", layout.Scheme, len(layout.Records)))
	if layout.GPT != nil {
		drawText(screen, 0, 3, tcell.StyleDefault.Dim(true), "Disk GUID: "+layout.GPT.DiskGUID)
	}

	headerY := 4
	drawText(screen, 0, headerY, tcell.StyleDefault.Bold(true),
		fmt.Sprintf(" %2s  %-28s %12s %12s %10s  %s", "#", "TYPE", "START", "END", "SIZE", "NAME"))
	drawText(screen, 0, headerY+1, tcell.StyleDefault, strings.Repeat("-", width))

	if s.selectedRecordIdx < 0 {
		s.selectedRecordIdx = 0
	}
	if s.selectedRecordIdx >= len(layout.Records) && len(layout.Records) > 0 {
		s.selectedRecordIdx = len(layout.Records) - 1
	}

	y := headerY + 2
	if len(layout.Records) == 0 {
		drawCentered(screen, y, tcell.StyleDefault.Dim(true), "No partitions found")
		y++
	}
	for i, rec := range layout.Records {
		if y >= height-3 {
			break
		}

		style := tcell.StyleDefault
		if i == s.selectedRecordIdx {
			style = tcell.StyleDefault.
				Foreground(tcell.ColorBlack).
				Background(tcell.ColorWhite)
		}

		mark := " "
		if rec.Bootable {
			mark = "*"
		}
		name := rec.Name
		if name == "" {
			name = rec.Type.OS
		}
		line := fmt.Sprintf("%s%2d  %-28.28s %12d %12d %10s  %s",
			mark, rec.Index, rec.Type.Description, rec.StartLBA, rec.EndLBA,
			humanize.IBytes(rec.SizeBytes), name)
		drawText(screen, 0, y, style, line)
		y++
	}

	wy := y + 1
	for _, warn := range layout.Warnings {
		if wy >= height-2 {
			break
		}
		drawText(screen, 0, wy, tcell.StyleDefault.Foreground(tcell.ColorYellow), "warning: "+warn)
		wy++
	}

	if len(layout.Records) > 0 {
		rec := layout.Records[s.selectedRecordIdx]

		var left string
		var details []string
		if layout.Scheme == schemeGPT {
			left = rec.Type.Description
			details = append(details, "TypeGUID: "+rec.TypeGUID, "UniqueGUID: "+rec.UniqueGUID)
			if rec.Attributes != 0 {
				details = append(details, fmt.Sprintf("Attributes: 0x%X", rec.Attributes))
			}
		} else {
			left = fmt.Sprintf("Type 0x%02X (%s)", rec.TypeByte, rec.Type.Description)
			if rec.Logical {
				details = append(details, "logical")
			} else {
				details = append(details, "primary")
			}
			if rec.Bootable {
				details = append(details, "bootable")
			}
		}
		drawStatusBar(screen, height-2, left, strings.Join(details, " | "))
	}

	drawCentered(screen, height-1, tcell.StyleDefault.Dim(true),
		"Up/Down: Navigate | Left/B: Back | Q/Ctrl+C: Quit")
}

func (s *tuiState) handleKeyEvent(ev *tcell.EventKey) {
	if s.showingPartitions {
		switch {
		case ev.Key() == tcell.KeyLeft, ev.Key() == tcell.KeyEscape,
			ev.Key() == tcell.KeyBackspace, ev.Key() == tcell.KeyBackspace2,
			ev.Rune() == 'b', ev.Rune() == 'B':
			s.showingPartitions = false
			s.currentDisk = ""
			s.layout = nil
			s.layoutErr = nil
			s.selectedRecordIdx = 0
		case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
			if s.selectedRecordIdx > 0 {
				s.selectedRecordIdx--
			}
		case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
			if s.layout != nil && s.selectedRecordIdx < len(s.layout.Records)-1 {
				s.selectedRecordIdx++
			}
		}
		return
	}

	switch {
	case ev.Key() == tcell.KeyUp, ev.Rune() == 'k':
		if s.selectedIndex > 0 {
			s.selectedIndex--
		}
	case ev.Key() == tcell.KeyDown, ev.Rune() == 'j':
		if s.selectedIndex < len(s.disks)-1 {
			s.selectedIndex++
		}
	case ev.Key() == tcell.KeyRight, ev.Key() == tcell.KeyEnter:
		if len(s.disks) == 0 {
			return
		}
		disk := s.disks[s.selectedIndex]
		s.currentDisk = disk.Path
		s.layout, s.layoutErr = analyzeDevice(context.Background(), disk.Path, s.maxEntries)
		s.showingPartitions = true
		s.selectedRecordIdx = 0
	}
}
