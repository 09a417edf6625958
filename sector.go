package main

import (
	"fmt"
	"io"
)

// sector is one raw 512-byte block.
type sector [sectorSize]byte

// sectorSource supplies raw sectors by logical block address. It is the only
// I/O dependency of the decode path; implementations return exactly 512
// bytes or an error.
type sectorSource interface {
	readSector(lba uint64) (*sector, error)
}

// readerAtSource reads sectors from an io.ReaderAt, which covers device
// nodes and image files alike. It keeps no state and does no caching.
type readerAtSource struct {
	r io.ReaderAt
}

func newReaderAtSource(r io.ReaderAt) *readerAtSource {
	return &readerAtSource{r: r}
}

func (s *readerAtSource) readSector(lba uint64) (*sector, error) {
	var sec sector
	if _, err := s.r.ReadAt(sec[:], int64(lba)*sectorSize); err != nil {
		return nil, fmt.Errorf("reading sector %d: %w", lba, err)
	}
	return &sec, nil
}
