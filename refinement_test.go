package refined_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/refined"
	"github.com/roach88/refined/boundable"
	"github.com/roach88/refined/boundable/unsigned"
	"github.com/roach88/refined/str"
)

type (
	Percent  = refined.Refinement[uint8, unsigned.LessThanEqual[uint8, boundable.U100]]
	UserName = refined.Refinement[string, unsigned.ClosedInterval[string, boundable.U1, boundable.U10]]
)

func TestRefine(t *testing.T) {
	p, err := refined.Refine[uint8, unsigned.LessThanEqual[uint8, boundable.U100]](99)
	require.NoError(t, err)
	assert.True(t, p.IsRefined())
	assert.Equal(t, uint8(99), p.Get())
	assert.Equal(t, "99", p.String())

	_, err = refined.Refine[uint8, unsigned.LessThanEqual[uint8, boundable.U100]](123)
	require.Error(t, err)
	assert.True(t, refined.IsRefinementError(err))

	var re *refined.RefinementError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "must be less than or equal to 100", re.Message())
}

func TestMustRefine(t *testing.T) {
	assert.Equal(t, uint8(5), refined.MustRefine[uint8, unsigned.LessThanEqual[uint8, boundable.U100]](5).Get())
	assert.Panics(t, func() {
		refined.MustRefine[uint8, unsigned.LessThanEqual[uint8, boundable.U100]](101)
	})
}

func TestZeroRefinementIsUnrefined(t *testing.T) {
	var p Percent
	assert.False(t, p.IsRefined())
	assert.Equal(t, "<unrefined>", p.String())
	assert.Panics(t, func() { p.Get() })
	assert.Panics(t, func() { p.Take() })
	assert.Panics(t, func() { _, _ = p.Modify(func(v uint8) uint8 { return v }) })
	assert.Panics(t, func() { _, _ = p.Replace(1) })
}

func TestTakeConsumes(t *testing.T) {
	name, err := refined.Refine[string, unsigned.ClosedInterval[string, boundable.U1, boundable.U10]]("Good name")
	require.NoError(t, err)

	assert.Equal(t, "Good name", name.Take())
	assert.False(t, name.IsRefined())
	assert.Panics(t, func() { name.Take() })
}

func TestModify(t *testing.T) {
	p := refined.MustRefine[uint8, unsigned.LessThanEqual[uint8, boundable.U100]](40)

	doubled, err := p.Modify(func(v uint8) uint8 { return v * 2 })
	require.NoError(t, err)
	assert.Equal(t, uint8(80), doubled.Get())
	assert.False(t, p.IsRefined())

	_, err = doubled.Modify(func(v uint8) uint8 { return v + 30 })
	assert.EqualError(t, err, "refinement violated: must be less than or equal to 100")
	assert.False(t, doubled.IsRefined())
}

func TestReplaceAlwaysChecks(t *testing.T) {
	name := refined.MustRefine[string, unsigned.ClosedInterval[string, boundable.U1, boundable.U10]]("Ada")

	same, err := name.Replace("Ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", same.Get())

	_, err = same.Replace("")
	assert.EqualError(t, err, "refinement violated: must be greater than or equal to 1 and must be less than or equal to 10")
	assert.False(t, same.IsRefined())
}

type semVer struct{}

func (semVer) TypeString() string { return `^v\d+\.\d+\.\d+$` }

func TestStatefulRefinement(t *testing.T) {
	p, err := str.NewRegex[string, semVer]()
	require.NoError(t, err)
	assert.True(t, refined.IsMaterialized(p))
	assert.False(t, refined.IsMaterialized(str.Regex[string, semVer]{}))

	v, err := refined.RefineWithState(p, "v1.2.3")
	require.NoError(t, err)

	next, err := refined.ModifyWithState(&v, p, func(s string) string { return s + "-rc1" })
	assert.Error(t, err)
	assert.False(t, next.IsRefined())
	assert.False(t, v.IsRefined())

	w := refined.MustRefine[string, str.Regex[string, semVer]]("v0.0.1")
	w, err = refined.ReplaceWithState(&w, p, "v0.0.2")
	require.NoError(t, err)
	assert.Equal(t, "v0.0.2", w.Get())
}
