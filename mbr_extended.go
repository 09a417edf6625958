package main

import "fmt"

// mbrLogical is one logical partition found inside an extended partition.
// FirstSector is absolute, unlike the EBR-relative value on disk.
type mbrLogical struct {
	Status      uint8
	Type        uint8
	FirstSector uint64
	Sectors     uint32
}

// readEBRChain reads the extended boot record chain to find logical
// partitions. Each EBR lists its logical partition relative to itself in
// slot one and the next EBR relative to the chain origin in slot two.
// Partitions gathered before a broken link are returned with the error.
func readEBRChain(src sectorSource, baseLBA uint32) ([]mbrLogical, error) {
	var logicalPartitions []mbrLogical
	nextEBR := uint64(baseLBA)

	for hops := 0; ; hops++ {
		if hops >= maxEBRHops {
			return logicalPartitions, fmt.Errorf("EBR chain at LBA %d exceeds %d links", baseLBA, maxEBRHops)
		}

		sec, err := src.readSector(nextEBR)
		if err != nil {
			return logicalPartitions, fmt.Errorf("read EBR at LBA %d failed: %w", nextEBR, err)
		}
		ebr, err := decodeMBR(sec)
		if err != nil {
			return logicalPartitions, err
		}
		if ebr.Signature != mbrSignature {
			return logicalPartitions, fmt.Errorf("EBR signature missing at LBA %d", nextEBR)
		}

		// First entry is the logical partition
		e1 := ebr.Partitions[0]
		if e1.Type != mbrTypeEmpty && e1.Sectors != 0 {
			logicalPartitions = append(logicalPartitions, mbrLogical{
				Status:      e1.Status,
				Type:        e1.Type,
				FirstSector: nextEBR + uint64(e1.FirstSector),
				Sectors:     e1.Sectors,
			})
		}

		// Second entry points to the next EBR or ends the chain
		e2 := ebr.Partitions[1]
		if e2.Type == mbrTypeEmpty || e2.Sectors == 0 {
			break
		}
		if !isExtendedType(e2.Type) {
			break
		}
		nextEBR = uint64(baseLBA) + uint64(e2.FirstSector)
	}

	return logicalPartitions, nil
}
