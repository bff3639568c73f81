package inflate

// lengthBase and lengthExtra are the length code base/extra-bit tables for
// literal/length symbols 257..285 (29 entries), RFC 1951 §3.2.5. Sized to
// exactly 29 entries rather than original_source/tinf.c's 30-entry array,
// which carries an unused trailing sentinel slot (see DESIGN.md).
var lengthBase = [29]uint32{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtra = [29]uint{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase and distExtra are the distance code base/extra-bit tables for
// distance symbols 0..29 (30 entries), RFC 1951 §3.2.5.
var distBase = [30]uint32{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtra = [30]uint{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// inflateBlock decodes one compressed block body against the given
// literal/length and distance tables, appending output bytes to out
// (starting at n, the current write cursor) and returning the updated
// cursor. It stops at the end-of-block symbol (256).
//
// Back-reference copies read each destination byte immediately after the
// prior write and must stay byte-at-a-time forward: a bulk copy would
// miscompile the overlap case (dist < length), which is DEFLATE's run-length
// mechanism (spec.md §4.5, §9). Writes never go past len(out): a literal or
// copy that would exceed it returns ErrDestinationOverflow.
func inflateBlock(r *bitReader, out []byte, n int, lit, dist *huffmanTable) (int, error) {
	for {
		sym, err := decodeSymbol(r, lit)
		if err != nil {
			return n, err
		}

		if sym < 256 {
			if n >= len(out) {
				return n, ErrDestinationOverflow
			}
			out[n] = byte(sym)
			n++
			continue
		}

		if sym == 256 {
			return n, nil
		}

		if sym > 285 {
			return n, ErrInvalidSymbol
		}

		k := sym - 257
		length, err := r.getWithBase(lengthExtra[k], lengthBase[k])
		if err != nil {
			return n, err
		}

		dsym, err := decodeSymbol(r, dist)
		if err != nil {
			return n, err
		}
		if dsym > 29 {
			return n, ErrInvalidSymbol
		}
		distance, err := r.getWithBase(distExtra[dsym], distBase[dsym])
		if err != nil {
			return n, err
		}

		if int(distance) > n {
			return n, ErrInvalidDistance
		}
		if n+int(length) > len(out) {
			return n, ErrDestinationOverflow
		}

		from := n - int(distance)
		for i := uint32(0); i < length; i++ {
			out[n] = out[from]
			n++
			from++
		}
	}
}
