package main

import (
	"fmt"
	"io"
)

// hexDump writes the classic offset / hex / ASCII dump of buf, 16 bytes per
// line in two 8-byte groups. base is the byte offset of buf[0] on the
// underlying medium.
func hexDump(w io.Writer, buf []byte, base int64) {
	for i := 0; i < len(buf); i += 16 {
		hexStr := ""
		charStr := ""
		for j := 0; j < 16 && i+j < len(buf); j++ {
			b := buf[i+j]
			hexStr += fmt.Sprintf("%02X ", b)
			if j == 7 {
				hexStr += " " // Extra space after 8 bytes
			}
			if isPrintable(b) {
				charStr += string(b)
			} else {
				charStr += "."
			}
		}
		fmt.Fprintf(w, "%08X  %-49s  |%s|\n", base+int64(i), hexStr, charStr)
	}
}

// dumpSectors hexdumps count sectors starting at lba.
func dumpSectors(w io.Writer, src sectorSource, lba, count uint64) error {
	for n := uint64(0); n < count; n++ {
		sec, err := src.readSector(lba + n)
		if err != nil {
			return err
		}
		hexDump(w, sec[:], int64((lba+n)*sectorSize))
	}
	return nil
}
