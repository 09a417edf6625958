package main

import (
	"errors"
	"fmt"
)

// errNoBootSector is returned for disks whose first sector carries neither
// scheme. The signature seen is appended for diagnostics.
var errNoBootSector = errors.New("no valid boot sector")

// partitionScheme tags how a disk is partitioned.
type partitionScheme int

const (
	schemeMBR partitionScheme = iota
	schemeGPT
)

func (s partitionScheme) String() string {
	if s == schemeGPT {
		return "GPT"
	}
	return "MBR"
}

// partitionRecord is one normalized row of the final listing. StartLBA,
// EndLBA, SizeBytes, Type and Name carry the same meaning for both schemes;
// the remaining fields are scheme-specific display extras.
type partitionRecord struct {
	Index      int
	Bootable   bool
	Logical    bool
	TypeByte   uint8  // MBR only
	TypeGUID   string // GPT only
	UniqueGUID string // GPT only
	Attributes uint64 // GPT only
	StartLBA   uint64
	EndLBA     uint64
	SizeBytes  uint64
	Type       partitionTypeInfo
	Name       string
}

// gptSummary is the displayable digest of a validated GPT header.
type gptSummary struct {
	DiskGUID       string
	Revision       string
	HeaderSize     uint32
	CurrentLBA     uint64
	BackupLBA      uint64
	FirstUsableLBA uint64
	LastUsableLBA  uint64
	EntryLBA       uint64
	NumEntries     uint32
	EntrySize      uint32
	HeaderCRC      uint32
	ArrayCRC       uint32
}

// diskLayout is the assembled result for one disk.
type diskLayout struct {
	Device   string
	Scheme   partitionScheme
	GPT      *gptSummary // nil for MBR disks
	Records  []partitionRecord
	Warnings []string
}

// assemble reads LBA 0, classifies it, and produces the full layout for one
// disk: a plain MBR listing with any EBR chains walked, or the GPT header
// plus its non-empty entries. I/O and structural errors abort this disk
// only; a broken EBR chain degrades to a warning on the layout.
func assemble(src sectorSource, maxEntries uint32) (*diskLayout, error) {
	sec0, err := src.readSector(0)
	if err != nil {
		return nil, err
	}
	m, err := decodeMBR(sec0)
	if err != nil {
		return nil, err
	}

	switch classifyMBR(m) {
	case mbrTraditional:
		return assembleMBR(src, m), nil
	case mbrProtectiveGPT:
		return assembleGPT(src, maxEntries)
	default:
		return nil, fmt.Errorf("%w (signature 0x%04X)", errNoBootSector, m.Signature)
	}
}

func assembleMBR(src sectorSource, m *mbrStruct) *diskLayout {
	layout := &diskLayout{Scheme: schemeMBR}

	idx := 0
	for _, p := range m.Partitions {
		if p.empty() {
			continue
		}
		idx++
		start := uint64(p.FirstSector)
		end := start
		if p.Sectors > 0 {
			end = start + uint64(p.Sectors) - 1
		}
		layout.Records = append(layout.Records, partitionRecord{
			Index:     idx,
			Bootable:  p.bootable(),
			TypeByte:  p.Type,
			StartLBA:  start,
			EndLBA:    end,
			SizeBytes: uint64(p.Sectors) * sectorSize,
			Type:      lookupMBRType(p.Type),
		})

		if !isExtendedType(p.Type) {
			continue
		}
		logical, err := readEBRChain(src, p.FirstSector)
		if err != nil {
			layout.Warnings = append(layout.Warnings,
				fmt.Sprintf("extended partition at LBA %d: %v", p.FirstSector, err))
		}
		for _, lp := range logical {
			idx++
			lend := lp.FirstSector
			if lp.Sectors > 0 {
				lend = lp.FirstSector + uint64(lp.Sectors) - 1
			}
			layout.Records = append(layout.Records, partitionRecord{
				Index:     idx,
				Bootable:  lp.Status == 0x80,
				Logical:   true,
				TypeByte:  lp.Type,
				StartLBA:  lp.FirstSector,
				EndLBA:    lend,
				SizeBytes: uint64(lp.Sectors) * sectorSize,
				Type:      lookupMBRType(lp.Type),
			})
		}
	}

	return layout
}

func assembleGPT(src sectorSource, maxEntries uint32) (*diskLayout, error) {
	sec1, err := src.readSector(1)
	if err != nil {
		return nil, err
	}
	hdr, err := parseGPTHeader(sec1, maxEntries)
	if err != nil {
		return nil, fmt.Errorf("invalid GPT header: %w", err)
	}
	entries, err := readGPTEntries(src, hdr)
	if err != nil {
		return nil, err
	}

	layout := &diskLayout{
		Scheme: schemeGPT,
		GPT: &gptSummary{
			DiskGUID:       guidToString(hdr.DiskGUID[:]),
			Revision:       hdr.revisionString(),
			HeaderSize:     hdr.HeaderSize,
			CurrentLBA:     hdr.CurrentLBA,
			BackupLBA:      hdr.BackupLBA,
			FirstUsableLBA: hdr.FirstUsableLBA,
			LastUsableLBA:  hdr.LastUsableLBA,
			EntryLBA:       hdr.PartitionEntryLBA,
			NumEntries:     hdr.NumPartEntries,
			EntrySize:      hdr.PartEntrySize,
			HeaderCRC:      hdr.CRC32,
			ArrayCRC:       hdr.PartEntryArrayCRC32,
		},
	}

	idx := 0
	for _, e := range entries {
		if e.empty() {
			continue
		}
		idx++
		typeGUID := guidToString(e.TypeGUID[:])
		var size uint64
		if e.LastLBA < e.FirstLBA {
			layout.Warnings = append(layout.Warnings,
				fmt.Sprintf("partition %d: ending LBA %d precedes starting LBA %d", idx, e.LastLBA, e.FirstLBA))
		} else {
			size = (e.LastLBA - e.FirstLBA + 1) * sectorSize
		}
		layout.Records = append(layout.Records, partitionRecord{
			Index:      idx,
			TypeGUID:   typeGUID,
			UniqueGUID: guidToString(e.UniqueGUID[:]),
			Attributes: e.AttributeFlags,
			StartLBA:   e.FirstLBA,
			EndLBA:     e.LastLBA,
			SizeBytes:  size,
			Type:       lookupGPTType(typeGUID),
			Name:       decodeUTF16LE(e.PartitionName[:]),
		})
	}

	return layout, nil
}
