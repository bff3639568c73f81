package inflate

import "testing"

func TestBuildFixedTablesCounts(t *testing.T) {
	lit, dist := buildFixedTables()

	if lit.counts[7] != 24 || lit.counts[8] != 152 || lit.counts[9] != 112 {
		t.Errorf("lit counts = %v, want [7]=24 [8]=152 [9]=112", lit.counts)
	}
	if lit.maxSym != 285 {
		t.Errorf("lit.maxSym = %d, want 285", lit.maxSym)
	}

	if dist.counts[5] != 32 {
		t.Errorf("dist.counts[5] = %d, want 32", dist.counts[5])
	}
	if dist.maxSym != 29 {
		t.Errorf("dist.maxSym = %d, want 29", dist.maxSym)
	}
}

func TestBuildFixedTablesRoundTrip(t *testing.T) {
	lit, dist := buildFixedTables()
	litLen := fixedLitLengths()
	distLen := fixedDistLengths()
	litCodes := canonicalCodes(litLen)
	distCodes := canonicalCodes(distLen)

	for _, sym := range []int{0, 1, 143, 144, 255, 256, 279, 280, 285} {
		w := &bitWriter{}
		w.writeHuffmanCode(litCodes[sym], uint(litLen[sym]))
		r := newBitReader(w.finish())
		got, err := decodeSymbol(r, lit)
		if err != nil {
			t.Fatalf("decode literal symbol %d: %v", sym, err)
		}
		if got != sym {
			t.Errorf("decode literal symbol %d got %d", sym, got)
		}
	}

	for sym := 0; sym < 30; sym++ {
		w := &bitWriter{}
		w.writeHuffmanCode(distCodes[sym], uint(distLen[sym]))
		r := newBitReader(w.finish())
		got, err := decodeSymbol(r, dist)
		if err != nil {
			t.Fatalf("decode distance symbol %d: %v", sym, err)
		}
		if got != sym {
			t.Errorf("decode distance symbol %d got %d", sym, got)
		}
	}
}
