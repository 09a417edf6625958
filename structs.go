package main

import "fmt"

// On-disk layouts for the two partition schemes. All multi-byte fields are
// little-endian and decoded with binary.Read; blank fields cover reserved
// bytes so the struct sizes match the wire format exactly.

const (
	sectorSize = 512

	mbrSignature   = 0xAA55
	mbrTableOffset = 446

	mbrTypeEmpty = 0x00
	mbrTypeGPT   = 0xEE

	gptSignature = "EFI PART"

	// Upper bound on NumPartEntries accepted from a header. Real disks
	// carry 128; anything past this is corrupt media or garbage input.
	defaultMaxGPTEntries = 4096

	// EBR chains are singly linked with no length field; cap the walk so a
	// corrupt link cannot loop forever.
	maxEBRHops = 128
)

// mbrPartition is one 16-byte slot of the partition table at offset 446.
type mbrPartition struct {
	Status      uint8
	CHSStart    [3]byte
	Type        uint8
	CHSEnd      [3]byte
	FirstSector uint32
	Sectors     uint32
}

// mbrStruct is a full 512-byte boot sector. The same layout covers the MBR
// at LBA 0 and every EBR inside an extended partition.
type mbrStruct struct {
	Bootcode   [446]byte
	Partitions [4]mbrPartition
	Signature  uint16
}

func (p mbrPartition) empty() bool {
	return p.Type == mbrTypeEmpty
}

func (p mbrPartition) bootable() bool {
	return p.Status == 0x80
}

// gptHeader is the 92-byte header stored at LBA 1. The rest of the sector is
// reserved padding and not mapped.
type gptHeader struct {
	Signature           [8]byte
	Revision            [4]byte
	HeaderSize          uint32
	CRC32               uint32
	_                   [4]byte
	CurrentLBA          uint64
	BackupLBA           uint64
	FirstUsableLBA      uint64
	LastUsableLBA       uint64
	DiskGUID            [16]byte
	PartitionEntryLBA   uint64
	NumPartEntries      uint32
	PartEntrySize       uint32
	PartEntryArrayCRC32 uint32
}

// gptHeaderSize is the mapped portion of gptHeader on disk.
const gptHeaderSize = 92

// revisionString renders the 4-byte revision field as "major.minor",
// e.g. 00 00 01 00 -> "1.0".
func (h *gptHeader) revisionString() string {
	major := uint16(h.Revision[2]) | uint16(h.Revision[3])<<8
	minor := uint16(h.Revision[0]) | uint16(h.Revision[1])<<8
	return fmt.Sprintf("%d.%d", major, minor)
}

// gptPartition is one descriptor from the GPT entry array. Entries are
// PartEntrySize bytes on disk (usually 128); only the first 128 bytes carry
// defined fields.
type gptPartition struct {
	TypeGUID       [16]byte
	UniqueGUID     [16]byte
	FirstLBA       uint64
	LastLBA        uint64
	AttributeFlags uint64
	PartitionName  [72]byte
}

// gptPartitionSize is the defined portion of a partition entry.
const gptPartitionSize = 128

func (p *gptPartition) empty() bool {
	return isAllZero(p.TypeGUID[:])
}
