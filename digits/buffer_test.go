package digits

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pad renders z as width decimal digits with leading zeros, the same shape
// Buffer.String produces.
func pad(z decimal.Decimal, width int) string {
	s := z.String()
	return strings.Repeat("0", width-len(s)) + s
}

func powTen(n int) decimal.Decimal {
	return decimal.NewFromInt(10).Pow(decimal.NewFromInt(int64(n)))
}

func TestSetUint64(t *testing.T) {
	b := New(8)
	b.SetUint64(1)
	assert.Equal(t, "00000001", b.String())

	b.SetUint64(16384)
	assert.Equal(t, "00016384", b.String())

	// values wider than the buffer are truncated to the low digits
	b.SetUint64(123456789)
	assert.Equal(t, "23456789", b.String())
}

func TestSetUint64_RoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := rand.Uint64()
		b := New(20)
		b.SetUint64(v)
		assert.Equal(t, fmt.Sprintf("%020d", v), b.String())

		// decoding the text form and re-encoding reproduces the buffer
		z := decimal.RequireFromString(b.String())
		d := New(20)
		ten := decimal.NewFromInt(10)
		for j := range d {
			var digit decimal.Decimal
			z, digit = z.QuoRem(ten, 0)
			d[j] = uint8(digit.IntPart())
		}
		assert.Equal(t, b, d)
	}
}

func TestMulSmall_AgainstDecimal(t *testing.T) {
	const width = 12
	mask := powTen(width)

	for _, f := range []uint64{2, 3, 6, 7, 10, 16, 1024} {
		b := New(width)
		seed := rand.Uint64()
		b.SetUint64(seed)

		z := decimal.RequireFromString(b.String())
		factor := decimal.NewFromInt(int64(f))
		for step := 0; step < 200; step++ {
			got := b.MulSmall(f)
			z = z.Mul(factor).Mod(mask)
			require.Equal(t, pad(z, width), b.String(),
				"factor %d step %d seed %d", f, step, seed)
			assert.Equal(t, b.AllEven(), got)
		}
	}
}

func TestTimes16_MatchesMulSmall(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := New(40)
		for j := range a {
			a[j] = uint8(rand.Intn(10))
		}
		b := make(Buffer, len(a))
		copy(b, a)

		fastEven := a.Times16()
		slowEven := b.MulSmall(16)
		require.Equal(t, b, a)
		assert.Equal(t, slowEven, fastEven)
	}
}

func TestAllEven(t *testing.T) {
	b := New(5)
	assert.True(t, b.AllEven())

	b.SetUint64(24680)
	assert.True(t, b.AllEven())

	b.SetUint64(24681)
	assert.False(t, b.AllEven())

	b.SetUint64(10000)
	assert.False(t, b.AllEven())
}

// TestDoubling_SmallWindow walks 2^n mod 10^4 with factor 2 and checks the
// visited states and the first all-even state against an independent
// decimal computation.
func TestDoubling_SmallWindow(t *testing.T) {
	const width = 4
	mask := powTen(width)
	two := decimal.NewFromInt(2)

	b := New(width)
	b.SetUint64(1)
	z := decimal.NewFromInt(1)

	want := []string{
		"0002", "0004", "0008", "0016", "0032", "0064", "0128",
		"0256", "0512", "1024", "2048", "4096", "8192", "6384",
	}

	firstEven := -1
	oracleFirstEven := -1
	for step := 1; step <= len(want); step++ {
		even := b.MulSmall(2)
		z = z.Mul(two).Mod(mask)

		require.Equal(t, want[step-1], b.String(), "step %d", step)
		require.Equal(t, pad(z, width), b.String(), "step %d", step)

		if even && firstEven == -1 {
			firstEven = step
		}
		if oracleFirstEven == -1 && allEvenText(pad(z, width)) {
			oracleFirstEven = step
		}
	}

	// 0002 is the first state where every tracked digit is even; the
	// leading zeros count, which is the known artifact of the truncated
	// window near n = 0.
	assert.Equal(t, 1, firstEven)
	assert.Equal(t, oracleFirstEven, firstEven)
}

func allEvenText(s string) bool {
	for _, c := range s {
		if (c-'0')%2 == 1 {
			return false
		}
	}
	return true
}

// A width of one degenerates to single-digit modular multiplication where
// the carry is always discarded in full.
func TestWidthOne(t *testing.T) {
	b := New(1)
	b.SetUint64(1)

	cycle := []uint8{2, 4, 8, 6}
	for step := 0; step < 20; step++ {
		even := b.MulSmall(2)
		assert.Equal(t, cycle[step%len(cycle)], b[0])
		assert.True(t, even)
	}

	b.SetUint64(1)
	// 3^n mod 10 cycles through 3, 9, 7, 1, none of them even
	for step := 0; step < 8; step++ {
		assert.False(t, b.MulSmall(3))
	}
}
