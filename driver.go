package inflate

// inflateStream is the block-dispatch/inflate loop of spec.md §4.6: decode
// BFINAL/BTYPE, dispatch to a stored, fixed, or dynamic block, and repeat
// until BFINAL. Grounded on original_source/tinf.c's tinf_uncompress, with
// the teacher's header-then-loop shape (JoshVarga/blast/reader.go's
// decompress) and the NLEN-validation open question resolved per
// DESIGN.md.
func inflateStream(r *bitReader, out []byte) (int, error) {
	n := 0
	for {
		bfinal, err := r.getBit()
		if err != nil {
			return n, err
		}
		btype, err := r.get(2)
		if err != nil {
			return n, err
		}

		switch btype {
		case 0:
			n, err = inflateStored(r, out, n)
		case 1:
			lit, dist := buildFixedTables()
			n, err = inflateBlock(r, out, n, lit, dist)
		case 2:
			var lit, dist *huffmanTable
			lit, dist, err = readDynamicTables(r)
			if err == nil {
				n, err = inflateBlock(r, out, n, lit, dist)
			}
		default:
			err = ErrInvalidBlockType
		}
		if err != nil {
			return n, err
		}

		if bfinal != 0 {
			return n, nil
		}
	}
}

// inflateStored copies a stored (BTYPE=0) block straight from input to
// output. It aligns to the next byte boundary, reads LEN/NLEN, validates
// NLEN is LEN's one's complement, and copies LEN bytes verbatim.
func inflateStored(r *bitReader, out []byte, n int) (int, error) {
	r.alignToByte()

	lenLo, err := r.readByte()
	if err != nil {
		return n, err
	}
	lenHi, err := r.readByte()
	if err != nil {
		return n, err
	}
	nlenLo, err := r.readByte()
	if err != nil {
		return n, err
	}
	nlenHi, err := r.readByte()
	if err != nil {
		return n, err
	}

	length := uint16(lenLo) | uint16(lenHi)<<8
	nlen := uint16(nlenLo) | uint16(nlenHi)<<8
	if nlen != ^length {
		return n, ErrInvalidStoredLength
	}

	if n+int(length) > len(out) {
		return n, ErrDestinationOverflow
	}
	for i := uint16(0); i < length; i++ {
		b, err := r.readByte()
		if err != nil {
			return n, err
		}
		out[n] = b
		n++
	}
	return n, nil
}
