package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/qcforge/chemref/codec"
)

// Snapshot format:
//
//	[magic "crefsnap"] [version: 1 byte]
//	[codec name: 1-byte length + bytes]
//	[compression name: 1-byte length + bytes]
//	[payload until EOF]
//
// The header names both the codec and the compression, so a snapshot can be
// opened regardless of how the writer was configured.

const (
	snapshotMagic   = "crefsnap"
	snapshotVersion = 1

	// CompressionNone stores the payload uncompressed.
	CompressionNone = "none"
	// CompressionZstd compresses the payload with zstandard.
	CompressionZstd = "zstd"
	// CompressionLZ4 compresses the payload with lz4.
	CompressionLZ4 = "lz4"
)

type snapshotOptions struct {
	codec       codec.Codec
	compression string
}

// SnapshotOption configures snapshot writing.
type SnapshotOption func(*snapshotOptions)

// WithSnapshotCodec selects the codec recorded in the snapshot header.
// If nil is passed, codec.Default is used.
func WithSnapshotCodec(c codec.Codec) SnapshotOption {
	return func(o *snapshotOptions) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression selects the payload compression: CompressionNone,
// CompressionZstd or CompressionLZ4.
func WithCompression(name string) SnapshotOption {
	return func(o *snapshotOptions) { o.compression = name }
}

// WriteSnapshot encodes the dataset into a self-describing snapshot.
func WriteSnapshot(w io.Writer, ds *Dataset, opts ...SnapshotOption) error {
	o := snapshotOptions{codec: codec.Default, compression: CompressionZstd}
	for _, opt := range opts {
		opt(&o)
	}

	payload, err := o.codec.Marshal(toWire(ds))
	if err != nil {
		return fmt.Errorf("encode snapshot payload: %w", err)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(snapshotMagic); err != nil {
		return err
	}
	if err := bw.WriteByte(snapshotVersion); err != nil {
		return err
	}
	if err := writeName(bw, o.codec.Name()); err != nil {
		return err
	}
	if err := writeName(bw, o.compression); err != nil {
		return err
	}

	switch o.compression {
	case CompressionNone:
		if _, err := bw.Write(payload); err != nil {
			return err
		}
	case CompressionZstd:
		enc, err := zstd.NewWriter(bw)
		if err != nil {
			return fmt.Errorf("create zstd writer: %w", err)
		}
		if _, err := enc.Write(payload); err != nil {
			_ = enc.Close()
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	case CompressionLZ4:
		lw := lz4.NewWriter(bw)
		if _, err := lw.Write(payload); err != nil {
			_ = lw.Close()
			return err
		}
		if err := lw.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown compression %q", o.compression)
	}

	return bw.Flush()
}

// ReadSnapshot decodes, hydrates and validates a snapshot written by
// WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Dataset, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("read snapshot magic: %w", err)
	}
	if !bytes.Equal(magic, []byte(snapshotMagic)) {
		return nil, fmt.Errorf("not a dataset snapshot (magic %q)", magic)
	}
	version, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", version)
	}
	codecName, err := readName(br)
	if err != nil {
		return nil, err
	}
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("unknown snapshot codec %q", codecName)
	}
	compression, err := readName(br)
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch compression {
	case CompressionNone:
		payload, err = io.ReadAll(br)
		if err != nil {
			return nil, err
		}
	case CompressionZstd:
		dec, derr := zstd.NewReader(br)
		if derr != nil {
			return nil, fmt.Errorf("create zstd reader: %w", derr)
		}
		payload, err = io.ReadAll(dec)
		dec.Close()
		if err != nil {
			return nil, err
		}
	case CompressionLZ4:
		payload, err = io.ReadAll(lz4.NewReader(br))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown snapshot compression %q", compression)
	}

	return Load(payload, c)
}

func writeName(w *bufio.Writer, name string) error {
	if len(name) > 255 {
		return fmt.Errorf("name %q too long", name)
	}
	if err := w.WriteByte(byte(len(name))); err != nil {
		return err
	}
	_, err := w.WriteString(name)
	return err
}

func readName(r *bufio.Reader) (string, error) {
	n, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
