package refined_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/refined"
	"github.com/roach88/refined/boundable"
	"github.com/roach88/refined/boundable/signed"
	"github.com/roach88/refined/boundable/unsigned"
)

func TestImpliesUnsigned(t *testing.T) {
	assert.True(t, refined.ImpliesUnsigned[
		unsigned.ClosedInterval[string, boundable.U1, boundable.U10],
		unsigned.LessThanEqual[string, boundable.U100]]())
	assert.True(t, refined.ImpliesUnsigned[
		unsigned.OpenInterval[uint8, boundable.U1, boundable.U10],
		unsigned.ClosedInterval[uint8, boundable.U2, boundable.U9]]())
	assert.False(t, refined.ImpliesUnsigned[
		unsigned.LessThanEqual[string, boundable.U100],
		unsigned.ClosedInterval[string, boundable.U1, boundable.U10]]())
}

func TestImpliesSigned(t *testing.T) {
	assert.True(t, refined.ImpliesSigned[signed.Positive[int], signed.NonNegative[int]]())
	assert.False(t, refined.ImpliesSigned[signed.NonNegative[int], signed.Positive[int]]())
}

func TestImplyUnsigned(t *testing.T) {
	name := refined.MustRefine[string, unsigned.ClosedInterval[string, boundable.U1, boundable.U10]]("Good name")

	wide, err := refined.ImplyUnsigned[unsigned.LessThanEqual[string, boundable.U100]](name)
	require.NoError(t, err)
	assert.Equal(t, "Good name", wide.Get())
	assert.True(t, name.IsRefined(), "implication does not consume")

	_, err = refined.ImplyUnsigned[unsigned.ClosedInterval[string, boundable.U1, boundable.U10]](wide)
	require.Error(t, err)
	assert.True(t, refined.IsProofError(err))
	assert.EqualError(t, err, "cannot prove imply: [0, 100] is not within [1, 10]")

	assert.Panics(t, func() {
		refined.MustImplyUnsigned[unsigned.NonZero[string]](refined.MustRefine[string, unsigned.LessThan[string, boundable.U5]]("ok"))
	})
}

func TestImplySigned(t *testing.T) {
	n := refined.MustRefine[int, signed.ClosedInterval[int, boundable.S1, boundable.S5]](3)

	pos := refined.MustImplySigned[signed.Positive[int]](n)
	assert.Equal(t, 3, pos.Get())

	_, err := refined.ImplySigned[signed.Negative[int]](pos)
	assert.EqualError(t, err, "cannot prove imply: [1, +inf) is not within (-inf, -1]")

	var unrefined refined.Refinement[int, signed.Positive[int]]
	assert.Panics(t, func() { _, _ = refined.ImplySigned[signed.NonNegative[int]](unrefined) })
}

func TestImplicationSoundness(t *testing.T) {
	type narrow = unsigned.ClosedInterval[uint8, boundable.U25, boundable.U75]
	type wide = unsigned.ClosedInterval[uint8, boundable.U1, boundable.U100]
	require.True(t, refined.ImpliesUnsigned[narrow, wide]())

	samples := []uint8{25, 26, 74, 75}
	for range 64 {
		samples = append(samples, uint8(randomdata.Number(25, 76)))
	}
	for _, v := range samples {
		r, err := refined.Refine[uint8, narrow](v)
		require.NoError(t, err, "value %d", v)
		w := refined.MustImplyUnsigned[wide](r)
		assert.True(t, wide{}.Test(w.Get()), "value %d", v)
	}
}
