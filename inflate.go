/*
Package inflate implements decompression of raw DEFLATE data (RFC 1951):
no zlib or gzip framing, no checksums, no compression side. It is the
decoder half of a from-scratch DEFLATE codec, built the way
github.com/JoshVarga/blast builds its PKWare DCL "explode" decoder: a bit
reader, a canonical-Huffman table, and a block-dispatch loop, kept small
enough to live entirely on the stack per decode.

To decompress into a buffer you control the size of:

	n, err := inflate.Inflate(dst, compressed)

To decompress an unknown-length stream the way blast.NewReader does:

	r, err := inflate.NewReader(bytes.NewReader(compressed))
	io.Copy(os.Stdout, r)
	r.Close()
*/
package inflate

import (
	"bytes"
	"errors"
	"io"
)

func isOverflow(err error) bool {
	return errors.Is(err, ErrDestinationOverflow)
}

// Inflate decompresses src (a raw DEFLATE stream) into dst and returns the
// number of bytes written. It returns ErrDestinationOverflow the instant a
// write would exceed len(dst); dst's contents past the returned count are
// implementation-defined on error, matching spec.md §7's "no partial output
// is a valid result" propagation policy.
//
func Inflate(dst, src []byte) (int, error) {
	return NewInflater().Inflate(dst, src)
}

// Inflater is the entry point for the InflaterContext of spec.md §3. It
// holds no state of its own: each Inflate call creates its own bit reader,
// and each block builds its own Huffman tables. The zero value is usable.
type Inflater struct{}

// NewInflater returns a ready-to-use Inflater.
func NewInflater() *Inflater {
	return &Inflater{}
}

// Inflate decompresses src into dst using this Inflater. Calls on
// independent (src, dst) pairs may run concurrently from different
// goroutines without coordination, since all decode state is local to the
// call (spec.md §5).
func (inf *Inflater) Inflate(dst, src []byte) (int, error) {
	r := newBitReader(src)
	n, err := inflateStream(r, dst)
	if err != nil {
		return n, err
	}
	return n, nil
}

type reader struct {
	data []byte
	pos  int
}

func (r *reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *reader) Close() error { return nil }

// defaultSizeHint is the starting capacity NewReader allocates before it
// knows the decompressed size; it doubles on overflow the same way
// bytes.Buffer grows.
const defaultSizeHint = 4096

// NewReader reads all of r, decompresses it as raw DEFLATE, and returns an
// io.ReadCloser over the result. Raw DEFLATE carries no declared output
// length, so NewReader grows its destination buffer and retries on
// ErrDestinationOverflow, the same shape as blast.NewReader but without
// requiring the caller to size the buffer up front.
//
// It is the caller's responsibility to call Close on the returned
// ReadCloser when done, mirroring blast.NewReader.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	return NewReaderSize(r, defaultSizeHint)
}

// NewReaderSize is NewReader with a caller-supplied initial destination
// capacity, for callers who know (or can estimate) the decompressed size
// and want to avoid the doubling/copy overhead of repeated overflow
// retries. This is the supplemented feature pulled from
// original_source/tinf.c's tinf_uncompress(dest, source) contract, which
// always decodes into a caller-sized destination.
func NewReaderSize(r io.Reader, sizeHint int) (io.ReadCloser, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	src := buf.Bytes()

	if sizeHint < 64 {
		sizeHint = 64
	}
	inf := NewInflater()
	dst := make([]byte, sizeHint)
	for {
		n, err := inf.Inflate(dst, src)
		if err == nil {
			return &reader{data: dst[:n]}, nil
		}
		if isOverflow(err) {
			dst = make([]byte, len(dst)*2)
			continue
		}
		return nil, err
	}
}
