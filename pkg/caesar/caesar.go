// Package caesar implements the Caesar shift over the 26-letter ASCII alphabet.
//
// Lowercase and uppercase letters are rotated within their own case. Every
// other byte, including non-ASCII bytes of multi-byte characters, passes
// through unchanged.
package caesar

// AlphabetLen is the number of letters a shift rotates through.
const AlphabetLen = 26

// Direction selects between encoding and decoding.
type Direction int

const (
	// Encode shifts letters forward by k.
	Encode Direction = iota
	// Decode shifts letters backward by k.
	Decode
)

// String returns the command name for the direction.
func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return "unknown"
	}
}

// EncodeString shifts every letter of s forward by k. Any k is accepted;
// negative and oversized values wrap around the alphabet.
func EncodeString(s string, k int) string {
	return string(EncodeBytes(make([]byte, 0, len(s)), []byte(s), k))
}

// DecodeString reverses EncodeString for the same k.
func DecodeString(s string, k int) string {
	return EncodeString(s, -(k % AlphabetLen))
}

// Transform applies the shift in direction d.
func Transform(d Direction, s string, k int) string {
	if d == Decode {
		return DecodeString(s, k)
	}
	return EncodeString(s, k)
}

// EncodeBytes appends the encoding of src to dst and returns the extended
// slice. src is not modified.
func EncodeBytes(dst, src []byte, k int) []byte {
	// Reducing once keeps c-'a'+k inside int range for any k.
	k %= AlphabetLen
	for _, c := range src {
		switch {
		case c >= 'a' && c <= 'z':
			c = rotate(c, 'a', k)
		case c >= 'A' && c <= 'Z':
			c = rotate(c, 'A', k)
		}
		dst = append(dst, c)
	}
	return dst
}

// DecodeBytes appends the decoding of src to dst.
func DecodeBytes(dst, src []byte, k int) []byte {
	return EncodeBytes(dst, src, -(k % AlphabetLen))
}

// TransformBytes appends the shift of src in direction d to dst.
func TransformBytes(d Direction, dst, src []byte, k int) []byte {
	if d == Decode {
		return DecodeBytes(dst, src, k)
	}
	return EncodeBytes(dst, src, k)
}

func rotate(c, base byte, k int) byte {
	return byte(((int(c-base)+k)%AlphabetLen+AlphabetLen)%AlphabetLen) + base
}
