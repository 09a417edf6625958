package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Structural reasons a GPT header is rejected. Each maps to one step of the
// validation sequence in parseGPTHeader; match with errors.Is.
var (
	errGPTBadSignature   = errors.New("GPT signature missing")
	errGPTHeaderSize     = errors.New("GPT header size out of range")
	errGPTEntrySize      = errors.New("GPT partition entry size out of range")
	errGPTTooManyEntries = errors.New("too many GPT partition entries")
	errGPTHeaderCRC      = errors.New("GPT header CRC mismatch")
)

// parseGPTHeader decodes and validates the header sector at LBA 1.
// Validation short-circuits: signature, then header size, then entry size,
// then entry count against maxEntries, then the header CRC. The first
// failing check wins.
func parseGPTHeader(sec *sector, maxEntries uint32) (*gptHeader, error) {
	var hdr gptHeader
	if err := binary.Read(bytes.NewReader(sec[:]), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("decoding GPT header: %w", err)
	}

	if string(hdr.Signature[:]) != gptSignature {
		return nil, fmt.Errorf("%w: got %q", errGPTBadSignature, hdr.Signature[:])
	}
	if hdr.HeaderSize < gptHeaderSize || hdr.HeaderSize > sectorSize {
		return nil, fmt.Errorf("%w: %d", errGPTHeaderSize, hdr.HeaderSize)
	}
	if hdr.PartEntrySize == 0 || hdr.PartEntrySize > sectorSize {
		return nil, fmt.Errorf("%w: %d", errGPTEntrySize, hdr.PartEntrySize)
	}
	if hdr.NumPartEntries > maxEntries {
		return nil, fmt.Errorf("%w: %d (limit %d)", errGPTTooManyEntries, hdr.NumPartEntries, maxEntries)
	}
	if err := validateGPTHeaderCRC(sec[:], hdr.HeaderSize); err != nil {
		return nil, fmt.Errorf("%w: %v", errGPTHeaderCRC, err)
	}

	return &hdr, nil
}

// readGPTEntries walks the partition entry array described by hdr and
// returns every candidate slot, empty ones included; callers filter. The
// entry size need not divide the sector size: offsets are computed per entry
// and an entry straddling two sectors is stitched together. Each needed
// sector is read once, in order. A read failure aborts the walk; there is no
// truncated success.
func readGPTEntries(src sectorSource, hdr *gptHeader) ([]gptPartition, error) {
	entrySize := uint64(hdr.PartEntrySize)
	base := hdr.PartitionEntryLBA * sectorSize

	var cur *sector
	var curLBA uint64
	fetch := func(lba uint64) (*sector, error) {
		if cur != nil && curLBA == lba {
			return cur, nil
		}
		sec, err := src.readSector(lba)
		if err != nil {
			return nil, err
		}
		cur, curLBA = sec, lba
		return sec, nil
	}

	// Entries smaller than the defined 128-byte layout decode against a
	// zero tail.
	bufLen := entrySize
	if bufLen < gptPartitionSize {
		bufLen = gptPartitionSize
	}
	buf := make([]byte, bufLen)

	entries := make([]gptPartition, 0, hdr.NumPartEntries)
	for i := uint64(0); i < uint64(hdr.NumPartEntries); i++ {
		off := base + i*entrySize
		lba := off / sectorSize
		intra := off % sectorSize

		sec, err := fetch(lba)
		if err != nil {
			return nil, fmt.Errorf("partition entry %d: %w", i, err)
		}
		n := copy(buf[:entrySize], sec[intra:])
		if uint64(n) < entrySize {
			next, err := fetch(lba + 1)
			if err != nil {
				return nil, fmt.Errorf("partition entry %d: %w", i, err)
			}
			copy(buf[n:entrySize], next[:])
		}

		var p gptPartition
		if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &p); err != nil {
			return nil, fmt.Errorf("partition entry %d: %w", i, err)
		}
		entries = append(entries, p)
	}

	return entries, nil
}
