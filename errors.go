package inflate

import "errors"

var (
	// ErrTruncatedInput is returned when the bit reader runs out of source
	// bytes before it can satisfy a read.
	ErrTruncatedInput = errors.New("inflate: truncated input")
	// ErrInvalidBlockType is returned when a block header declares the
	// reserved BTYPE value 3.
	ErrInvalidBlockType = errors.New("inflate: invalid block type")
	// ErrInvalidStoredLength is returned when a stored block's NLEN field
	// is not the one's complement of LEN.
	ErrInvalidStoredLength = errors.New("inflate: invalid stored block length")
	// ErrOversubscribedCode is returned when a set of Huffman code lengths
	// describes more codes than the Kraft inequality allows.
	ErrOversubscribedCode = errors.New("inflate: oversubscribed huffman code")
	// ErrIncompleteCode is returned when decoding follows a bit sequence
	// that an incomplete Huffman code leaves unassigned, reading all 15
	// levels without reaching a code.
	ErrIncompleteCode = errors.New("inflate: incomplete huffman code")
	// ErrInvalidSymbol is returned when a decoded symbol falls outside the
	// alphabet it was decoded against.
	ErrInvalidSymbol = errors.New("inflate: invalid symbol")
	// ErrInvalidDistance is returned when a back-reference distance points
	// before the start of the output produced so far.
	ErrInvalidDistance = errors.New("inflate: distance too far back")
	// ErrDestinationOverflow is returned when decoded output would exceed
	// the caller-supplied destination.
	ErrDestinationOverflow = errors.New("inflate: destination too small")
	// ErrInvalidLengthCodeRun is returned when code-length symbol 16 (copy
	// previous length) appears before any length has been emitted.
	ErrInvalidLengthCodeRun = errors.New("inflate: length code 16 with no previous length")
)
