// Package compress transparently decompresses point sources.
//
// The format is chosen from the blob name suffix (.gz, .zst, .lz4) and,
// failing that, from the leading magic bytes of the stream.
package compress

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Type defines the compression algorithm of a source.
type Type uint8

const (
	// None indicates an uncompressed source.
	None Type = iota
	// Gzip indicates a gzip stream.
	Gzip
	// Zstd indicates a Zstandard stream.
	Zstd
	// LZ4 indicates an LZ4 frame stream.
	LZ4
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// FromName returns the compression type implied by the file extension.
func FromName(name string) Type {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// Sniff returns the compression type implied by the leading bytes.
func Sniff(head []byte) Type {
	switch {
	case bytes.HasPrefix(head, magicZstd):
		return Zstd
	case bytes.HasPrefix(head, magicLZ4):
		return LZ4
	case bytes.HasPrefix(head, magicGzip):
		return Gzip
	default:
		return None
	}
}

// NewReader wraps r with a decompressor for the detected format.
// Closing the returned reader releases decoder resources but does not close r.
func NewReader(name string, r io.Reader) (io.ReadCloser, error) {
	t := FromName(name)
	if t == None {
		br := bufio.NewReader(r)
		// Peek errors mean the stream is shorter than the magic; treat as plain.
		head, _ := br.Peek(len(magicZstd))
		t = Sniff(head)
		r = br
	}
	return Wrap(t, r)
}

// Wrap wraps r with the decompressor for t.
func Wrap(t Type, r io.Reader) (io.ReadCloser, error) {
	switch t {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %v", t)
	}
}
