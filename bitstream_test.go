package ngramcore

import (
	"bytes"
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// BIT-STREAM BUFFER TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestBitWriter_AppendBit_PacksMSBFirst(t *testing.T) {
	w := NewBitWriter()
	// 1 0 1 1 0 0 1 0 -> 0xB2
	bits := []int{1, 0, 1, 1, 0, 0, 1, 0}
	for _, b := range bits {
		w.AppendBit(b)
	}

	got := w.Bytes()
	want := []byte{0xB2}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %#x, want %#x", got, want)
	}
}

func TestBitWriter_FlushPadsWithZeros(t *testing.T) {
	w := NewBitWriter()
	w.AppendBit(1)
	w.AppendBit(1)

	got := w.Bytes()
	want := []byte{0xC0} // 11000000
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %#x, want %#x", got, want)
	}
}

func TestBitWriter_AppendBytes_AlignsFirst(t *testing.T) {
	w := NewBitWriter()
	w.AppendBit(1)
	w.AppendBytes([]byte{0xFF})

	got := w.Bytes()
	want := []byte{0x80, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %#x, want %#x", got, want)
	}
}

func TestBitReader_RoundTripsWithWriter(t *testing.T) {
	w := NewBitWriter()
	bits := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1}
	for _, b := range bits {
		w.AppendBit(b)
	}

	r := NewBitReader(w.Bytes())
	for i, want := range bits {
		got, err := r.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit() at index %d: %v", i, err)
		}
		if got != want {
			t.Errorf("bit %d = %d, want %d", i, got, want)
		}
	}
}

func TestBitReader_ReadBit_ExhaustedReturnsError(t *testing.T) {
	r := NewBitReader(nil)
	if _, err := r.ReadBit(); err == nil {
		t.Error("ReadBit() on empty buffer returned nil error, want decode-corrupt")
	}
}

func TestBitReader_ReadBytes_AlignsFirst(t *testing.T) {
	w := NewBitWriter()
	w.AppendBit(1)
	w.AppendBytes([]byte{0xAB, 0xCD})

	r := NewBitReader(w.Bytes())
	if _, err := r.ReadBit(); err != nil {
		t.Fatalf("ReadBit() failed: %v", err)
	}

	got, err := r.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes() failed: %v", err)
	}
	want := []byte{0xAB, 0xCD}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadBytes() = %#x, want %#x", got, want)
	}
}

func TestBitReader_Exhausted(t *testing.T) {
	w := NewBitWriter()
	w.AppendBit(1)
	r := NewBitReader(w.Bytes())

	if r.Exhausted() {
		t.Fatal("Exhausted() = true before any reads")
	}
	if _, err := r.ReadBytes(1); err != nil {
		t.Fatalf("ReadBytes() failed: %v", err)
	}
	if !r.Exhausted() {
		t.Error("Exhausted() = false after consuming all bytes")
	}
}
