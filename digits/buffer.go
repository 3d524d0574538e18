package digits

// Buffer holds the trailing decimal digits of a number in little-endian
// order, so Buffer[0] is the least significant digit. The width is fixed
// when the buffer is created and every element stays in [0,9]. A buffer of
// width w tracks its number mod 10^w; anything that carries past the top
// digit is simply dropped.
type Buffer []uint8

// New returns a zeroed buffer of the given width.
func New(width int) Buffer {
	return make(Buffer, width)
}

// SetUint64 overwrites the buffer with the decimal digits of v mod 10^width.
func (b Buffer) SetUint64(v uint64) {
	for i := range b {
		b[i] = uint8(v % 10)
		v /= 10
	}
}

// MulSmall destructively multiplies the buffer by a small positive factor,
// keeping only the low digits, and reports whether every digit of the result
// is even. The factor must be small enough that 9*f+carry fits in a uint64,
// which holds comfortably for any factor below 2^59.
func (b Buffer) MulSmall(f uint64) bool {
	carry := uint64(0)
	even := uint8(1)
	for i, d := range b {
		u := uint64(d)*f + carry
		b[i] = uint8(u % 10)
		carry = u / 10
		// accumulate with &= so the scan stays branch free
		even &= b[i]&1 ^ 1
	}
	return even == 1
}

// Times16 destructively multiplies the buffer by 16 in a single pass and
// reports whether every digit of the result is even. Multiplying by 16 is
// the same as multiplying by 10 and by 6 and adding the results. The ×10
// part is a one-digit shift, so it can be folded into the carry: the carry
// into position i+1 is the original digit at i plus the overflow of the ×6
// part. This is the hot path of the tail scan; it must agree with
// MulSmall(16) on every buffer.
func (b Buffer) Times16() bool {
	carry := 0
	even := uint8(1)
	for i, d := range b {
		u := int(d)*6 + carry
		// carry stays below 17: 9 + (9*6+16)/10
		carry = int(d) + u/10
		b[i] = uint8(u % 10)
		even &= b[i]&1 ^ 1
	}
	return even == 1
}

// AllEven reports whether every digit in the buffer is even. Leading zeros
// count as even, so a freshly seeded buffer for a small value can report
// true even though the full number it stands for has fewer digits than the
// buffer is wide.
func (b Buffer) AllEven() bool {
	even := uint8(1)
	for _, d := range b {
		even &= d&1 ^ 1
	}
	return even == 1
}

// AppendText appends the buffer to dst as exactly width ASCII digits, most
// significant first, and returns the extended slice.
func (b Buffer) AppendText(dst []byte) []byte {
	for i := len(b) - 1; i >= 0; i-- {
		dst = append(dst, '0'+b[i])
	}
	return dst
}

// String renders the buffer as width ASCII digits, most significant first,
// zero padded.
func (b Buffer) String() string {
	return string(b.AppendText(make([]byte, 0, len(b))))
}
