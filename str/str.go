package str

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/roach88/refined"
)

// String is any type whose underlying type is string.
type String interface {
	~string
}

// Trimmed accepts strings without leading or trailing white space.
type Trimmed[T String] struct{}

func (Trimmed[T]) Test(value T) bool { return IsTrimmed(string(value)) }
func (Trimmed[T]) Message() string   { return TrimmedMessage }

// Contains accepts strings containing the literal lifted by S.
type Contains[T String, S refined.TypeString] struct{}

func (Contains[T, S]) Test(value T) bool {
	return strings.Contains(string(value), refined.Lift[S]())
}
func (Contains[T, S]) Message() string { return ContainsMessage(refined.Lift[S]()) }

// StartsWith accepts strings beginning with the literal lifted by S.
type StartsWith[T String, S refined.TypeString] struct{}

func (StartsWith[T, S]) Test(value T) bool {
	return strings.HasPrefix(string(value), refined.Lift[S]())
}
func (StartsWith[T, S]) Message() string { return StartsWithMessage(refined.Lift[S]()) }

// EndsWith accepts strings ending with the literal lifted by S.
type EndsWith[T String, S refined.TypeString] struct{}

func (EndsWith[T, S]) Test(value T) bool {
	return strings.HasSuffix(string(value), refined.Lift[S]())
}
func (EndsWith[T, S]) Message() string { return EndsWithMessage(refined.Lift[S]()) }

// UUID accepts UUIDs in any of the forms uuid.Parse understands.
type UUID[T String] struct{}

func (UUID[T]) Test(value T) bool { return IsUUID(string(value)) }
func (UUID[T]) Message() string   { return UUIDMessage }

// NFC accepts strings in Unicode normalization form C.
type NFC[T String] struct{}

func (NFC[T]) Test(value T) bool { return IsNFC(string(value)) }
func (NFC[T]) Message() string   { return NFCMessage }

// DNSLabel accepts RFC 1123 DNS labels: at most 63 lowercase alphanumerics
// or '-', starting and ending with an alphanumeric.
type DNSLabel[T String] struct{}

func (DNSLabel[T]) Test(value T) bool { return IsDNSLabel(string(value)) }
func (DNSLabel[T]) Message() string   { return DNSLabelMessage }

const (
	TrimmedMessage  = "must not have leading or trailing whitespace"
	UUIDMessage     = "must be a valid UUID"
	NFCMessage      = "must be in Unicode normalization form C"
	DNSLabelMessage = "must be a valid DNS label"
)

func ContainsMessage(sub string) string   { return fmt.Sprintf("must contain %q", sub) }
func StartsWithMessage(pre string) string { return fmt.Sprintf("must start with %q", pre) }
func EndsWithMessage(suf string) string   { return fmt.Sprintf("must end with %q", suf) }

func IsTrimmed(s string) bool {
	return strings.TrimSpace(s) == s
}

func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}

func IsNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}

func IsDNSLabel(s string) bool {
	return len(validation.IsDNS1123Label(s)) == 0
}
