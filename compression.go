package main

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dsnet/compress/bzip2"
	"github.com/dustin/go-humanize"
	"github.com/gosuri/uilive"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

type countingWriter struct {
	w     io.Writer
	count int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.count += int64(n)
	return n, err
}

// getCompressionExtension returns the file extension for a given compression algorithm
func getCompressionExtension(compressionAlgorithm string) (string, error) {
	switch compressionAlgorithm {
	case "raw":
		return ".img", nil
	case "gzip":
		return ".gz", nil
	case "zlib":
		return ".zlib", nil
	case "bzip2":
		return ".bz2", nil
	case "snappy":
		return ".snappy", nil
	case "s2":
		return ".s2", nil
	case "zstd":
		return ".zst", nil
	case "zip":
		return ".zip", nil
	default:
		return "", fmt.Errorf("unsupported compression algorithm: %s", compressionAlgorithm)
	}
}

// createCompressionWriter creates a compression writer based on the algorithm.
// The returned zip writer is non-nil only for zip output, which needs its own
// Close after the entry is written.
func createCompressionWriter(algorithm string, output io.Writer) (io.Writer, *zip.Writer, error) {
	switch algorithm {
	case "raw":
		return output, nil, nil
	case "gzip":
		return gzip.NewWriter(output), nil, nil
	case "zlib":
		return zlib.NewWriter(output), nil, nil
	case "bzip2":
		writer, err := bzip2.NewWriter(output, &bzip2.WriterConfig{})
		return writer, nil, err
	case "snappy":
		return snappy.NewBufferedWriter(output), nil, nil
	case "s2":
		return s2.NewWriter(output), nil, nil
	case "zstd":
		writer, err := zstd.NewWriter(output)
		return writer, nil, err
	case "zip":
		zipWriter := zip.NewWriter(output)
		zipFile, err := zipWriter.Create("compressedData")
		if err != nil {
			_ = zipWriter.Close()
			return nil, nil, fmt.Errorf("failed to create zip entry: %w", err)
		}
		return zipFile, zipWriter, nil
	default:
		return nil, nil, fmt.Errorf("unsupported compression algorithm: %s", algorithm)
	}
}

type progressReporter struct {
	w         *uilive.Writer
	start     time.Time
	totalSize int64
}

func (p *progressReporter) update(bytesRead, bytesWritten int64) {
	elapsed := time.Since(p.start)
	seconds := elapsed.Seconds()

	estimate := "N/A"
	if p.totalSize > 0 && bytesRead > 0 && seconds > 0 {
		rate := float64(bytesRead) / seconds
		remaining := float64(p.totalSize-bytesRead) / rate
		if remaining < 0 {
			remaining = 0
		}
		estimate = time.Duration(remaining * float64(time.Second)).Truncate(time.Second).String()
	}

	var readBps, writeBps float64
	if seconds > 0 {
		readBps = float64(bytesRead) / seconds
		writeBps = float64(bytesWritten) / seconds
	}

	_, _ = fmt.Fprintf(p.w, "Read: %s (%d bytes), Written: %s (%d bytes)\n",
		humanize.Bytes(uint64(bytesRead)), bytesRead,
		humanize.Bytes(uint64(bytesWritten)), bytesWritten)
	_, _ = fmt.Fprintf(p.w, "Elapsed: %s, Remaining: %s\n", elapsed.Truncate(time.Second), estimate)
	_, _ = fmt.Fprintf(p.w, "Read speed: %s/s, Write speed: %s/s\n",
		humanize.Bytes(uint64(readBps)), humanize.Bytes(uint64(writeBps)))
	_ = p.w.Flush()
}

// imageDisk streams the device into a compressed image file.
func imageDisk(ctx context.Context, device, outputfile, algorithm string) error {
	if err := checkForPerms(device); err != nil {
		return err
	}

	disk, err := openDevice(device)
	if err != nil {
		return err
	}
	defer disk.Close()

	// Block devices stat to zero; the ioctl path knows their real size.
	var totalSize int64
	if stat, err := disk.Stat(); err == nil {
		totalSize = stat.Size()
	}
	if totalSize <= 0 {
		if size, err := getBlockDeviceSize(device); err == nil {
			totalSize = int64(size)
		}
	}

	return compressFromReader(ctx, disk, outputfile, algorithm, totalSize)
}

// compressFromReader reads from a reader and compresses to a file with live
// progress reporting. totalSize of 0 disables the time estimate.
func compressFromReader(ctx context.Context, disk io.Reader, outputfile, compressionAlgorithm string, totalSize int64) error {
	extension, err := getCompressionExtension(compressionAlgorithm)
	if err != nil {
		return err
	}
	outputfile += extension

	output, err := os.Create(outputfile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		_ = output.Close()
	}()

	cw := &countingWriter{w: output}
	compressedWriter, zipWriter, err := createCompressionWriter(compressionAlgorithm, cw)
	if err != nil {
		return fmt.Errorf("failed to create compression writer: %w", err)
	}

	fmt.Printf("Writing to image: %s\n", outputfile)

	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	progress := &progressReporter{w: writer, start: time.Now(), totalSize: totalSize}

	closeCodec := func() error {
		if zipWriter != nil {
			return zipWriter.Close()
		}
		if wc, ok := compressedWriter.(io.WriteCloser); ok {
			return wc.Close()
		}
		return nil
	}

	var bytesRead int64
	buf := make([]byte, 1<<20)
	lastUpdate := time.Now()

	for {
		select {
		case <-ctx.Done():
			// Leave a consistent stream behind; the partial file is the
			// caller's to keep or delete.
			_ = closeCodec()
			return ctx.Err()
		default:
		}

		n, rerr := disk.Read(buf)
		if n > 0 {
			if _, werr := compressedWriter.Write(buf[:n]); werr != nil {
				return fmt.Errorf("failed to write compressed stream: %w", werr)
			}
			bytesRead += int64(n)

			if time.Since(lastUpdate) >= time.Second {
				progress.update(bytesRead, cw.count)
				lastUpdate = time.Now()
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return fmt.Errorf("error reading from disk: %w", rerr)
		}
	}

	// Flush whatever the codec still buffers before reporting totals.
	if err := closeCodec(); err != nil {
		return fmt.Errorf("failed to close compression writer: %w", err)
	}

	progress.update(bytesRead, cw.count)

	ratio := "N/A"
	if cw.count > 0 {
		ratio = fmt.Sprintf("%.2f:1", float64(bytesRead)/float64(cw.count))
	}
	fmt.Printf("\nWrote %s (%d bytes), compression ratio %s\n",
		humanize.Bytes(uint64(cw.count)), cw.count, ratio)

	return nil
}
