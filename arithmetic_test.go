package refined_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/refined"
	"github.com/roach88/refined/boundable"
	"github.com/roach88/refined/boundable/signed"
	"github.com/roach88/refined/boundable/unsigned"
)

type (
	oneToTen    = unsigned.ClosedInterval[uint8, boundable.U1, boundable.U10]
	twoToTwenty = unsigned.ClosedInterval[uint8, boundable.U2, boundable.U20]
	anyUint8    = unsigned.GreaterThanEqual[uint8, boundable.U0]
	tenToTwenty = unsigned.ClosedInterval[uint8, boundable.U10, boundable.U20]
	small       = signed.ClosedInterval[int8, boundable.SMinus5, boundable.S5]
	smallSum    = signed.ClosedInterval[int8, boundable.SMinus10, boundable.S10]
)

func TestAddUnsigned(t *testing.T) {
	a := refined.MustRefine[uint8, oneToTen](9)
	b := refined.MustRefine[uint8, oneToTen](6)

	sum, err := refined.AddUnsigned[twoToTwenty](a, b)
	require.NoError(t, err)
	assert.Equal(t, uint8(15), sum.Get())

	_, err = refined.AddUnsigned[oneToTen](a, b)
	assert.True(t, refined.IsProofError(err))
	assert.EqualError(t, err, "cannot prove add: [2, 20] is not within [1, 10]")
}

func TestAddUnsignedOverflow(t *testing.T) {
	a := refined.MustRefine[uint8, anyUint8](200)
	b := refined.MustRefine[uint8, anyUint8](100)

	_, err := refined.AddUnsigned[anyUint8](a, b)
	assert.ErrorIs(t, err, boundable.ErrOverflow)
	assert.EqualError(t, err, "add 200, 100: arithmetic overflow")

	c := refined.MustRefine[uint8, anyUint8](55)
	sum, err := refined.AddUnsigned[anyUint8](a, c)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), sum.Get())
}

func TestSubUnsigned(t *testing.T) {
	a := refined.MustRefine[uint8, tenToTwenty](12)
	b := refined.MustRefine[uint8, oneToTen](10)

	diff, err := refined.SubUnsigned[unsigned.LessThan[uint8, boundable.U20]](a, b)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), diff.Get())

	_, err = refined.SubUnsigned[anyUint8](b, a)
	assert.ErrorIs(t, err, boundable.ErrNotRepresentable)
	assert.True(t, refined.IsProofError(err))
}

func TestMulDivUnsigned(t *testing.T) {
	a := refined.MustRefine[uint8, oneToTen](7)
	b := refined.MustRefine[uint8, oneToTen](3)

	prod, err := refined.MulUnsigned[unsigned.ClosedInterval[uint8, boundable.U1, boundable.U100]](a, b)
	require.NoError(t, err)
	assert.Equal(t, uint8(21), prod.Get())

	quot, err := refined.DivUnsigned[unsigned.LessThanEqual[uint8, boundable.U10]](a, b)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), quot.Get())

	zeroable := refined.MustRefine[uint8, anyUint8](3)
	_, err = refined.DivUnsigned[anyUint8](a, zeroable)
	assert.ErrorIs(t, err, boundable.ErrDivisorMayBeZero)
}

func TestSignedArithmetic(t *testing.T) {
	a := refined.MustRefine[int8, small](-4)
	b := refined.MustRefine[int8, small](5)

	sum, err := refined.AddSigned[smallSum](a, b)
	require.NoError(t, err)
	assert.Equal(t, int8(1), sum.Get())

	diff, err := refined.SubSigned[smallSum](a, b)
	require.NoError(t, err)
	assert.Equal(t, int8(-9), diff.Get())

	prod, err := refined.MulSigned[signed.ClosedInterval[int8, boundable.SMinus50, boundable.S50]](a, b)
	require.NoError(t, err)
	assert.Equal(t, int8(-20), prod.Get())

	_, err = refined.MulSigned[smallSum](a, b)
	assert.EqualError(t, err, "cannot prove mul: [-25, 25] is not within [-10, 10]")

	_, err = refined.DivSigned[small](a, b)
	assert.ErrorIs(t, err, boundable.ErrDivisorMayBeZero)

	d := refined.MustRefine[int8, signed.ClosedInterval[int8, boundable.S1, boundable.S5]](2)
	quot, err := refined.DivSigned[small](a, d)
	require.NoError(t, err)
	assert.Equal(t, int8(-2), quot.Get())
}

func TestAddUnsignedSoundness(t *testing.T) {
	for x := uint8(1); x <= 10; x++ {
		for y := uint8(1); y <= 10; y++ {
			sum, err := refined.AddUnsigned[twoToTwenty](
				refined.MustRefine[uint8, oneToTen](x),
				refined.MustRefine[uint8, oneToTen](y),
			)
			require.NoError(t, err)
			assert.Equal(t, x+y, sum.Get())
			assert.True(t, twoToTwenty{}.Test(sum.Get()))
		}
	}
}
