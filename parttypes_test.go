package main

import "testing"

func TestLookupGPTType(t *testing.T) {
	testCases := []struct {
		name     string
		guid     string
		wantOS   string
		wantDesc string
	}{
		{
			name:     "esp canonical case",
			guid:     "C12A7328-F81F-11D2-BA4B-00A0C93EC93B",
			wantOS:   "N/A",
			wantDesc: "EFI System Partition",
		},
		{
			name:     "esp lowercase",
			guid:     "c12a7328-f81f-11d2-ba4b-00a0c93ec93b",
			wantOS:   "N/A",
			wantDesc: "EFI System Partition",
		},
		{
			name:     "linux filesystem",
			guid:     "0fc63daf-8483-4772-8e79-3d69d8477de4",
			wantOS:   "Linux",
			wantDesc: "Linux filesystem data",
		},
		{
			name:     "microsoft basic data",
			guid:     "EBD0A0A2-B9E5-4433-87C0-68B6B72699C7",
			wantOS:   "Windows",
			wantDesc: "Basic data partition",
		},
		{
			name:     "unregistered",
			guid:     "deadbeef-dead-beef-dead-beefdeadbeef",
			wantOS:   "Unknown",
			wantDesc: "Unknown partition type",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			info := lookupGPTType(tt.guid)
			if info.OS != tt.wantOS || info.Description != tt.wantDesc {
				t.Errorf("lookupGPTType(%q) = %+v, want {%s %s}", tt.guid, info, tt.wantOS, tt.wantDesc)
			}
		})
	}
}

func TestLookupMBRType(t *testing.T) {
	testCases := []struct {
		name     string
		typeByte uint8
		wantOS   string
		wantDesc string
	}{
		{"ntfs", 0x07, "Windows", "HPFS/NTFS/exFAT"},
		{"linux", 0x83, "Linux", "Linux"},
		{"extended", 0x05, "N/A", "Extended"},
		{"protective", 0xEE, "N/A", "GPT protective MBR"},
		{"unregistered", 0x7F, "Unknown", "Unknown partition type"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			info := lookupMBRType(tt.typeByte)
			if info.OS != tt.wantOS || info.Description != tt.wantDesc {
				t.Errorf("lookupMBRType(0x%02X) = %+v, want {%s %s}", tt.typeByte, info, tt.wantOS, tt.wantDesc)
			}
		})
	}
}

func TestGPTTypeTableKeysAreUppercase(t *testing.T) {
	for key := range gptPartitionTypes {
		for _, r := range key {
			if r >= 'a' && r <= 'f' {
				t.Errorf("key %q is not canonical uppercase", key)
				break
			}
		}
	}
}
