package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// mbrClass is the classification of a 512-byte boot sector.
type mbrClass int

const (
	mbrInvalid mbrClass = iota
	mbrTraditional
	mbrProtectiveGPT
)

func (c mbrClass) String() string {
	switch c {
	case mbrTraditional:
		return "MBR"
	case mbrProtectiveGPT:
		return "protective MBR"
	default:
		return "invalid"
	}
}

// decodeMBR reads the fixed boot sector layout out of a raw sector. The
// partition table lands in Partitions; whether the sector is a valid MBR at
// all is classifyMBR's call.
func decodeMBR(sec *sector) (*mbrStruct, error) {
	var m mbrStruct
	if err := binary.Read(bytes.NewReader(sec[:]), binary.LittleEndian, &m); err != nil {
		return nil, fmt.Errorf("decoding boot sector: %w", err)
	}
	return &m, nil
}

// classifyMBR decides what a decoded boot sector is. A sector without the
// 0xAA55 signature is invalid. A signed sector carrying any 0xEE-typed entry
// is a protective MBR announcing GPT; the entry is deliberately not required
// to be the sole one, so hybrid layouts still route to the GPT path.
// Anything else is a traditional MBR.
func classifyMBR(m *mbrStruct) mbrClass {
	if m.Signature != mbrSignature {
		return mbrInvalid
	}
	for _, p := range m.Partitions {
		if p.Type == mbrTypeGPT {
			return mbrProtectiveGPT
		}
	}
	return mbrTraditional
}

// isExtendedType reports whether an MBR type byte marks an extended
// container whose interior is an EBR chain.
func isExtendedType(t uint8) bool {
	return t == 0x05 || t == 0x0F || t == 0x85
}
