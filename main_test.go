package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpBootRegion(t *testing.T) {
	mbr := writeImage(t, "mbr.img", mbrImageBytes())
	gpt := writeImage(t, "gpt.img", gptImageBytes(t))

	var out bytes.Buffer
	if err := dumpBootRegion(&out, mbr, schemeMBR); err != nil {
		t.Fatalf("dumpBootRegion: %v", err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 32 {
		t.Errorf("MBR boot region dump has %d lines, want 32", lines)
	}

	out.Reset()
	if err := dumpBootRegion(&out, gpt, schemeGPT); err != nil {
		t.Fatalf("dumpBootRegion: %v", err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 64 {
		t.Errorf("GPT boot region dump has %d lines, want 64", lines)
	}
	if !strings.Contains(out.String(), "EFI PART") {
		t.Error("GPT header signature not visible in the dump")
	}
}

func TestRootCmdWiring(t *testing.T) {
	for _, flag := range []string{"debug", "quiet", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q not registered", flag)
		}
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range []string{"list", "disks", "sectors", "image", "browse", "version"} {
		if !registered[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
