package inflate

import (
	"errors"
	"testing"
)

func TestBitReaderGet(t *testing.T) {
	// 0b10110010, 0b00000001 little-endian-within-byte: low bits first.
	r := newBitReader([]byte{0xB2, 0x01})

	v, err := r.get(4)
	if err != nil {
		t.Fatalf("get(4): %v", err)
	}
	if v != 0x2 {
		t.Errorf("got %#x, want 0x2", v)
	}

	v, err = r.get(4)
	if err != nil {
		t.Fatalf("get(4): %v", err)
	}
	if v != 0xB {
		t.Errorf("got %#x, want 0xb", v)
	}

	v, err = r.get(8)
	if err != nil {
		t.Fatalf("get(8): %v", err)
	}
	if v != 0x01 {
		t.Errorf("got %#x, want 0x01", v)
	}
}

func TestBitReaderGetZero(t *testing.T) {
	r := newBitReader([]byte{0xFF})
	v, err := r.get(0)
	if err != nil {
		t.Fatalf("get(0): %v", err)
	}
	if v != 0 {
		t.Errorf("get(0) = %v, want 0", v)
	}
}

func TestBitReaderGetWithBase(t *testing.T) {
	r := newBitReader([]byte{0b00000101})
	v, err := r.getWithBase(3, 10)
	if err != nil {
		t.Fatalf("getWithBase: %v", err)
	}
	if v != 15 {
		t.Errorf("getWithBase = %v, want 15", v)
	}

	r2 := newBitReader(nil)
	v, err = r2.getWithBase(0, 42)
	if err != nil {
		t.Fatalf("getWithBase(0, ...): %v", err)
	}
	if v != 42 {
		t.Errorf("getWithBase(0, 42) = %v, want 42 (must not touch the stream)", v)
	}
}

func TestBitReaderTruncated(t *testing.T) {
	r := newBitReader([]byte{0x01})
	if _, err := r.get(16); !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("get past end: got %v, want ErrTruncatedInput", err)
	}
}

func TestBitReaderAlignToByte(t *testing.T) {
	r := newBitReader([]byte{0xFF, 0xAB})
	if _, err := r.get(3); err != nil {
		t.Fatal(err)
	}
	r.alignToByte()
	b, err := r.readByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != 0xAB {
		t.Errorf("readByte after align = %#x, want 0xab", b)
	}
}
