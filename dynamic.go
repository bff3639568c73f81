package inflate

// clcOrder is the code-length-code alphabet ordering for HCLEN, RFC 1951
// §3.2.7.
var clcOrder = [19]byte{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// readDynamicTables reads a dynamic block's HLIT/HDIST/HCLEN descriptor and
// builds the literal/length and distance Huffman tables it describes.
// Grounded on original_source/tinf.c's tinf_decode_trees. The temporary
// 19-symbol code-length table is built as a table of its own rather than in
// the literal/length table's storage; lengths is sized 288+32 and split
// after the run-length expansion.
func readDynamicTables(r *bitReader) (lit, dist *huffmanTable, err error) {
	hlit, err := r.getWithBase(5, 257)
	if err != nil {
		return nil, nil, err
	}
	hdist, err := r.getWithBase(5, 1)
	if err != nil {
		return nil, nil, err
	}
	hclen, err := r.getWithBase(4, 4)
	if err != nil {
		return nil, nil, err
	}

	var clcLengths [19]byte
	for i := uint32(0); i < hclen; i++ {
		v, err := r.get(3)
		if err != nil {
			return nil, nil, err
		}
		clcLengths[clcOrder[i]] = byte(v)
	}
	clcTable, err := buildHuffman(clcLengths[:])
	if err != nil {
		return nil, nil, err
	}

	total := int(hlit + hdist)
	lengths := make([]byte, 288+32)
	num := 0
	for num < total {
		sym, err := decodeSymbol(r, clcTable)
		if err != nil {
			return nil, nil, err
		}

		var run int
		var value byte
		switch sym {
		case 16:
			if num == 0 {
				return nil, nil, ErrInvalidLengthCodeRun
			}
			value = lengths[num-1]
			v, err := r.getWithBase(2, 3)
			if err != nil {
				return nil, nil, err
			}
			run = int(v)
		case 17:
			value = 0
			v, err := r.getWithBase(3, 3)
			if err != nil {
				return nil, nil, err
			}
			run = int(v)
		case 18:
			value = 0
			v, err := r.getWithBase(7, 11)
			if err != nil {
				return nil, nil, err
			}
			run = int(v)
		default:
			value = byte(sym)
			run = 1
		}

		if num+run > total {
			return nil, nil, ErrInvalidSymbol
		}
		for ; run > 0; run-- {
			lengths[num] = value
			num++
		}
	}

	lit, err = buildHuffman(lengths[:hlit])
	if err != nil {
		return nil, nil, err
	}
	dist, err = buildHuffman(lengths[hlit : hlit+hdist])
	if err != nil {
		return nil, nil, err
	}
	return lit, dist, nil
}
