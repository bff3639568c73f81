package inflate

// maxCodeLength is the longest Huffman code length DEFLATE allows (RFC 1951
// §3.2.7).
const maxCodeLength = 15

// huffmanTable is a canonical-Huffman decode table for one alphabet
// instance: how many codes exist at each length, and the symbols in
// canonical order. Grounded on the teacher's huffman{count, symbol} struct
// (JoshVarga/blast/reader.go) and original_source/tinf.c's
// tinf_tree{counts, symbols, max_sym}.
type huffmanTable struct {
	counts  [maxCodeLength + 1]uint16
	symbols [288]uint16
	maxSym  int
}

// buildHuffman constructs t from a list of code lengths, one per symbol
// (each in 0..15, 0 meaning "symbol unused"). It implements the canonical
// construction of spec.md §4.2: count codes per length, compute per-length
// offsets by a single forward pass, then place each symbol at its offset.
//
// The degenerate single-code case is fixed up by inserting a synthetic
// length-1 code mapping to maxSym+1 (an out-of-range symbol), so that
// decodeSymbol always terminates after reading a bounded number of bits;
// decodeSymbol reports that phantom symbol as ErrInvalidSymbol, since it
// lies above maxSym.
//
// buildHuffman returns ErrOversubscribedCode if the lengths describe more
// codes than the Kraft inequality allows, the one check spec.md §4.2 notes
// as "the natural place to validate" but leaves unenforced in the
// permissive original; SPEC_FULL's error taxonomy requires it.
func buildHuffman(lengths []byte) (*huffmanTable, error) {
	t := &huffmanTable{maxSym: -1}

	for sym, l := range lengths {
		if l != 0 {
			t.counts[l]++
			t.maxSym = sym
		}
	}

	var offs [maxCodeLength + 1]uint16
	available := 1
	numCodes := uint16(0)
	for l := 0; l <= maxCodeLength; l++ {
		used := int(t.counts[l])
		offs[l] = numCodes
		numCodes += uint16(used)
		available = 2 * (available - used)
		if available < 0 {
			return nil, ErrOversubscribedCode
		}
	}

	for sym, l := range lengths {
		if l != 0 {
			t.symbols[offs[l]] = uint16(sym)
			offs[l]++
		}
	}

	if numCodes == 1 {
		t.counts[1] = 2
		t.symbols[1] = uint16(t.maxSym + 1)
	}

	return t, nil
}

// decodeSymbol walks the canonical Huffman tree implicitly, one bit at a
// time, maintaining (base, offs) through the sorted symbol table: at each
// level counts[l] leaves sit to the left and everything else is internal,
// flowing to the next level. This is the mechanism spec.md §4.2 and
// original_source/tinf.c's tinf_decode_symbol both describe; unlike the
// teacher's bit-reversed MSB-first convention (specific to PKWare DCL),
// DEFLATE codes are walked MSB-first by reading one bit at a time in the
// natural order, so no reversal trick is needed here.
func decodeSymbol(r *bitReader, t *huffmanTable) (int, error) {
	base, offs := 0, 0
	for l := 1; l <= maxCodeLength; l++ {
		bit, err := r.getBit()
		if err != nil {
			return 0, err
		}
		offs = 2*offs + int(bit)
		count := int(t.counts[l])
		if offs < count {
			sym := int(t.symbols[base+offs])
			if sym > t.maxSym {
				return 0, ErrInvalidSymbol
			}
			return sym, nil
		}
		base += count
		offs -= count
	}
	return 0, ErrIncompleteCode
}
