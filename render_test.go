package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderLayoutMBR(t *testing.T) {
	layout := &diskLayout{
		Device: "/dev/sda",
		Scheme: schemeMBR,
		Records: []partitionRecord{
			{
				Index:     1,
				Bootable:  true,
				TypeByte:  0x07,
				StartLBA:  2048,
				EndLBA:    206847,
				SizeBytes: 104857600,
				Type:      lookupMBRType(0x07),
			},
			{
				Index:     2,
				Logical:   true,
				TypeByte:  0x83,
				StartLBA:  208896,
				EndLBA:    733183,
				SizeBytes: 268435456,
				Type:      lookupMBRType(0x83),
			},
		},
	}

	var out bytes.Buffer
	if err := renderLayout(&out, layout); err != nil {
		t.Fatalf("renderLayout: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"/dev/sda",
		"MBR partition table, 2 partitions",
		"HPFS/NTFS/exFAT",
		"0x07",
		"primary",
		"logical",
		"2048",
		"206847",
		"100 MiB",
		"256 MiB",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Disk GUID") {
		t.Error("MBR output carries a GPT summary")
	}
}

func TestRenderLayoutGPT(t *testing.T) {
	layout := &diskLayout{
		Device: "/dev/nvme0n1",
		Scheme: schemeGPT,
		GPT: &gptSummary{
			DiskGUID:       "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
			Revision:       "1.0",
			HeaderSize:     92,
			CurrentLBA:     1,
			BackupLBA:      1000,
			FirstUsableLBA: 34,
			LastUsableLBA:  966,
			EntryLBA:       2,
			NumEntries:     128,
			EntrySize:      128,
			HeaderCRC:      0xDEADBEEF,
			ArrayCRC:       0xCAFEBABE,
		},
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
		Warnings: []string{"partition 2: ending LBA 10 precedes starting LBA 20"},
	}

	var out bytes.Buffer
	if err := renderLayout(&out, layout); err != nil {
		t.Fatalf("renderLayout: %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"GPT partition table, 1 partitions",
		"Disk GUID:    aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		"Revision:     1.0",
		"0xDEADBEEF",
		"0xCAFEBABE",
		"34 - 966",
		"EFI System Partition",
		"c12a7328-f81f-11d2-ba4b-00a0c93ec93b",
		"1.0 MiB",
		"warning:",
		"precedes",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderLayoutNoPartitions(t *testing.T) {
	var out bytes.Buffer
	err := renderLayout(&out, &diskLayout{Device: "/dev/sdb", Scheme: schemeMBR})
	if err != nil {
		t.Fatalf("renderLayout: %v", err)
	}
	if !strings.Contains(out.String(), "0 partitions") {
		t.Errorf("output %q does not state the empty table", out.String())
	}
}

func TestRenderDisks(t *testing.T) {
	disks := []DiskInfo{
		{
			Path:       "/dev/sda",
			Model:      "Samsung SSD 970",
			Size:       500107862016,
			Kind:       "SSD",
			MountPoint: "/",
			FsTotal:    107374182400,
			FsUsed:     32212254720,
			FsFree:     75161927680,
		},
		{
			Path: "/dev/sdb",
			Kind: "removable",
		},
	}

	var out bytes.Buffer
	renderDisks(&out, disks)
	got := out.String()

	for _, want := range []string{
		"/dev/sda",
		"Samsung SSD 970",
		"SSD",
		"removable",
		"30 GiB/100 GiB used",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	var empty bytes.Buffer
	renderDisks(&empty, nil)
	if !strings.Contains(empty.String(), "no disks found") {
		t.Errorf("empty discovery output %q", empty.String())
	}
}
