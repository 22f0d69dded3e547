package refined_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/refined"
	"github.com/roach88/refined/boundable"
	"github.com/roach88/refined/boundable/unsigned"
)

type account struct {
	Name  UserName `json:"name" yaml:"name"`
	Quota Percent  `json:"quota" yaml:"quota"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := account{
		Name:  refined.MustRefine[string, unsigned.ClosedInterval[string, boundable.U1, boundable.U10]]("ada"),
		Quota: refined.MustRefine[uint8, unsigned.LessThanEqual[uint8, boundable.U100]](75),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ada","quota":75}`, string(data))

	var out account
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "ada", out.Name.Get())
	assert.Equal(t, uint8(75), out.Quota.Get())
}

func TestJSONRejectsInvalid(t *testing.T) {
	var out account
	err := json.Unmarshal([]byte(`{"name":"ada","quota":150}`), &out)
	assert.True(t, refined.IsRefinementError(err))

	var name UserName
	err = json.Unmarshal([]byte(`null`), &name)
	assert.EqualError(t, err, "refinement violated: must be greater than or equal to 1 and must be less than or equal to 10")
	assert.False(t, name.IsRefined())

	err = json.Unmarshal([]byte(`12`), &name)
	assert.Error(t, err)
	assert.False(t, refined.IsRefinementError(err))
}

func TestMarshalUnrefined(t *testing.T) {
	_, err := json.Marshal(account{})
	assert.ErrorIs(t, err, refined.ErrUnrefined)

	_, err = yaml.Marshal(account{})
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	var out account
	require.NoError(t, yaml.Unmarshal([]byte("name: grace\nquota: 10\n"), &out))
	assert.Equal(t, "grace", out.Name.Get())
	assert.Equal(t, uint8(10), out.Quota.Get())

	data, err := yaml.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "name: grace\nquota: 10\n", string(data))

	err = yaml.Unmarshal([]byte("name: a name that is too long\nquota: 10\n"), &out)
	assert.True(t, refined.IsRefinementError(err))
}

func TestSQLValueAndScan(t *testing.T) {
	q := refined.MustRefine[uint8, unsigned.LessThanEqual[uint8, boundable.U100]](42)
	v, err := q.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	var scanned Percent
	require.NoError(t, scanned.Scan(int64(42)))
	assert.Equal(t, uint8(42), scanned.Get())

	assert.True(t, refined.IsRefinementError(scanned.Scan(int64(101))))
	assert.Equal(t, uint8(42), scanned.Get(), "failed scan leaves the value unchanged")

	assert.Error(t, scanned.Scan(int64(-1)))
	assert.Error(t, scanned.Scan(int64(300)))
	assert.Error(t, scanned.Scan(true))

	var name UserName
	require.NoError(t, name.Scan([]byte("ada")))
	assert.Equal(t, "ada", name.Get())

	_, err = UserName{}.Value()
	assert.ErrorIs(t, err, refined.ErrUnrefined)
}
