package main

import (
	"strings"
	"testing"
)

func TestGUIDToString(t *testing.T) {
	// On-disk bytes of the EFI System Partition type GUID: the first three
	// fields little-endian, the rest verbatim.
	raw := []byte{
		0x28, 0x73, 0x2A, 0xC1,
		0x1F, 0xF8,
		0xD2, 0x11,
		0xBA, 0x4B,
		0x00, 0xA0, 0xC9, 0x3E, 0xC9, 0x3B,
	}
	want := "c12a7328-f81f-11d2-ba4b-00a0c93ec93b"
	if got := guidToString(raw); got != want {
		t.Errorf("guidToString = %q, want %q", got, want)
	}

	if got := guidToString(raw[:10]); got != "" {
		t.Errorf("guidToString on a short slice = %q, want empty", got)
	}
}

func TestGUIDRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		guid string
	}{
		{"zero", "00000000-0000-0000-0000-000000000000"},
		{"ones", "ffffffff-ffff-ffff-ffff-ffffffffffff"},
		{"esp lower", "c12a7328-f81f-11d2-ba4b-00a0c93ec93b"},
		{"esp upper", "C12A7328-F81F-11D2-BA4B-00A0C93EC93B"},
		{"linux fs", "0fc63daf-8483-4772-8e79-3d69d8477de4"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := guidFromString(tt.guid)
			if err != nil {
				t.Fatalf("guidFromString(%q): %v", tt.guid, err)
			}
			want := strings.ToLower(tt.guid)
			if got := guidToString(g[:]); got != want {
				t.Errorf("round trip of %q = %q, want %q", tt.guid, got, want)
			}
		})
	}
}

func TestGUIDFromStringInvalid(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"short", "c12a7328-f81f-11d2-ba4b"},
		{"long", "c12a7328-f81f-11d2-ba4b-00a0c93ec93b00"},
		{"no hyphens", "c12a7328f81f11d2ba4b00a0c93ec93b0000"},
		{"hyphen misplaced", "c12a732-8f81f-11d2-ba4b-00a0c93ec93b"},
		{"bad hex", "g12a7328-f81f-11d2-ba4b-00a0c93ec93b"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := guidFromString(tt.in); err == nil {
				t.Errorf("guidFromString(%q) accepted invalid input", tt.in)
			}
		})
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want string
	}{
		{
			name: "ascii with terminator",
			in:   []byte{'E', 0, 'F', 0, 'I', 0, 0, 0, 'x', 0},
			want: "EFI",
		},
		{
			name: "no terminator",
			in:   []byte{'A', 0, 'B', 0, 'C', 0},
			want: "ABC",
		},
		{
			name: "empty",
			in:   []byte{},
			want: "",
		},
		{
			name: "all zero",
			in:   make([]byte, 72),
			want: "",
		},
		{
			name: "odd trailing byte dropped",
			in:   []byte{'A', 0, 'B', 0, 'C'},
			want: "AB",
		},
		{
			// U+00E9 then U+30C6: non-ASCII BMP code points survive.
			name: "non-ascii",
			in:   []byte{0xE9, 0x00, 0xC6, 0x30, 0, 0},
			want: "éテ",
		},
		{
			// A lone high surrogate cannot be an error, only a
			// replacement character.
			name: "unpaired surrogate",
			in:   []byte{0x00, 0xD8, 'A', 0x00},
			want: "�A",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeUTF16LE(tt.in); got != tt.want {
				t.Errorf("decodeUTF16LE = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAllZero(t *testing.T) {
	if !isAllZero(make([]byte, 16)) {
		t.Error("all-zero slice reported non-zero")
	}
	if isAllZero([]byte{0, 0, 1, 0}) {
		t.Error("non-zero slice reported zero")
	}
	if !isAllZero(nil) {
		t.Error("nil slice should count as zero")
	}
}

func TestValidateGPTHeaderCRC(t *testing.T) {
	good := buildGPTHeaderSector(gptHeaderOpts{numEntries: 128})
	if err := validateGPTHeaderCRC(good, gptHeaderSize); err != nil {
		t.Fatalf("valid header rejected: %v", err)
	}

	bad := buildGPTHeaderSector(gptHeaderOpts{numEntries: 128, corruptCRC: true})
	err := validateGPTHeaderCRC(bad, gptHeaderSize)
	if err == nil {
		t.Fatal("corrupt CRC accepted")
	}
	if !strings.Contains(err.Error(), "calculated") {
		t.Errorf("error %q does not report the calculated value", err)
	}

	// A flipped payload byte past the CRC field must also be caught.
	flipped := buildGPTHeaderSector(gptHeaderOpts{numEntries: 128})
	flipped[40] ^= 0x01
	if err := validateGPTHeaderCRC(flipped, gptHeaderSize); err == nil {
		t.Error("payload corruption accepted")
	}

	if err := validateGPTHeaderCRC(good[:50], gptHeaderSize); err == nil {
		t.Error("undersized buffer accepted")
	}
}
