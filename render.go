package main

import (
	"fmt"
	"io"
	"text/template"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

const gptSummaryTmpl = `Disk GUID:    {{.DiskGUID}}
Revision:     {{.Revision}}
Header:       LBA {{.CurrentLBA}}, {{.HeaderSize}} bytes, CRC32 0x{{printf "%08X" .HeaderCRC}} (backup at LBA {{.BackupLBA}})
Usable LBAs:  {{.FirstUsableLBA}} - {{.LastUsableLBA}}
Entry array:  LBA {{.EntryLBA}}, {{.NumEntries}} entries of {{.EntrySize}} bytes, CRC32 0x{{printf "%08X" .ArrayCRC}}
`

func newRenderTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Format.Header = text.FormatUpper
	t.SetStyle(style)
	return t
}

// renderLayout prints one decoded disk: the scheme line, the GPT header
// summary when present, the partition table and any warnings gathered
// while decoding.
func renderLayout(w io.Writer, layout *diskLayout) error {
	fmt.Fprintf(w, "%s: %s partition table, %d partitions\n",
		bold(layout.Device), layout.Scheme, len(layout.Records))

	if layout.GPT != nil {
		tmpl, err := template.New("gpt").Parse(gptSummaryTmpl)
		if err != nil {
			return fmt.Errorf("parsing GPT summary template: %w", err)
		}
		if err := tmpl.Execute(w, layout.GPT); err != nil {
			return fmt.Errorf("executing GPT summary template: %w", err)
		}
	}

	if len(layout.Records) > 0 {
		t := newRenderTable(w)
		if layout.Scheme == schemeGPT {
			t.AppendHeader(table.Row{"#", "START", "END", "SIZE", "TYPE", "OS", "NAME", "TYPE GUID", "UNIQUE GUID", "ATTRIBUTES"})
			for _, rec := range layout.Records {
				t.AppendRow([]interface{}{
					rec.Index,
					rec.StartLBA,
					rec.EndLBA,
					humanize.IBytes(rec.SizeBytes),
					rec.Type.Description,
					rec.Type.OS,
					rec.Name,
					rec.TypeGUID,
					rec.UniqueGUID,
					fmt.Sprintf("0x%016X", rec.Attributes),
				})
			}
		} else {
			t.AppendHeader(table.Row{"#", "BOOT", "ID", "KIND", "START", "END", "SIZE", "TYPE", "OS"})
			for _, rec := range layout.Records {
				boot := "-"
				if rec.Bootable {
					boot = "*"
				}
				kind := "primary"
				if rec.Logical {
					kind = "logical"
				}
				t.AppendRow([]interface{}{
					rec.Index,
					boot,
					fmt.Sprintf("0x%02X", rec.TypeByte),
					kind,
					rec.StartLBA,
					rec.EndLBA,
					humanize.IBytes(rec.SizeBytes),
					rec.Type.Description,
					rec.Type.OS,
				})
			}
		}
		t.Render()
	}

	for _, warn := range layout.Warnings {
		fmt.Fprintf(w, "%s %s\n", yellow("warning:"), warn)
	}
	return nil
}

// renderDisks prints the disk discovery table.
func renderDisks(w io.Writer, disks []DiskInfo) {
	if len(disks) == 0 {
		fmt.Fprintln(w, "no disks found")
		return
	}

	t := newRenderTable(w)
	t.AppendHeader(table.Row{"DEVICE", "MODEL", "SIZE", "KIND", "MOUNTPOINT", "FILESYSTEM USE"})
	for _, d := range disks {
		size := "-"
		if d.Size > 0 {
			size = humanize.IBytes(d.Size)
		}
		model := d.Model
		if model == "" {
			model = "-"
		}
		mount := d.MountPoint
		if mount == "" {
			mount = "-"
		}
		fsUse := "-"
		if d.FsTotal > 0 {
			fsUse = fmt.Sprintf("%s/%s used", humanize.IBytes(d.FsUsed), humanize.IBytes(d.FsTotal))
		}
		kind := d.Kind
		if kind == "" {
			kind = "-"
		}
		t.AppendRow([]interface{}{d.Path, model, size, kind, mount, fsUse})
	}
	t.Render()
}
