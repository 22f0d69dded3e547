package str_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/refined"
	"github.com/roach88/refined/str"
)

type (
	at      struct{}
	https   struct{}
	dotJSON struct{}
)

func (at) TypeString() string      { return "@" }
func (https) TypeString() string   { return "https://" }
func (dotJSON) TypeString() string { return ".json" }

type ServiceName string

func TestStringPredicates(t *testing.T) {
	tests := []struct {
		name    string
		p       refined.Predicate[string]
		accept  []string
		reject  []string
		message string
	}{
		{"trimmed", str.Trimmed[string]{}, []string{"", "a b"}, []string{" a", "a\n", "\ta"}, "must not have leading or trailing whitespace"},
		{"contains", str.Contains[string, at]{}, []string{"ada@example.com", "@"}, []string{"example.com"}, `must contain "@"`},
		{"starts with", str.StartsWith[string, https]{}, []string{"https://go.dev"}, []string{"http://go.dev", " https://go.dev"}, `must start with "https://"`},
		{"ends with", str.EndsWith[string, dotJSON]{}, []string{"users.json"}, []string{"users.yaml", "users.json "}, `must end with ".json"`},
		{"uuid", str.UUID[string]{}, []string{"0190c8a8-4b7e-7cc1-9a0e-5b1b2f3c4d5e", "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"}, []string{"", "not-a-uuid", "0190c8a8-4b7e-7cc1-9a0e"}, "must be a valid UUID"},
		{"nfc", str.NFC[string]{}, []string{"caf\u00e9", "plain"}, []string{"cafe\u0301"}, "must be in Unicode normalization form C"},
		{"dns label", str.DNSLabel[string]{}, []string{"api", "my-service-1"}, []string{"", "-api", "API", "a.b", "x123456789012345678901234567890123456789012345678901234567890123"}, "must be a valid DNS label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.accept {
				assert.True(t, tt.p.Test(s), "expected %q to be accepted", s)
			}
			for _, s := range tt.reject {
				assert.False(t, tt.p.Test(s), "expected %q to be rejected", s)
			}
			assert.Equal(t, tt.message, tt.p.Message())
		})
	}
}

func TestNamedStringTypes(t *testing.T) {
	name, err := refined.Refine[ServiceName, str.DNSLabel[ServiceName]]("billing")
	require.NoError(t, err)
	assert.Equal(t, ServiceName("billing"), name.Get())

	_, err = refined.Refine[ServiceName, str.Trimmed[ServiceName]](" billing")
	assert.EqualError(t, err, "refinement violated: must not have leading or trailing whitespace")
}
