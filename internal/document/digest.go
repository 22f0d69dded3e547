package document

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainDocument separates document digests from any other hash of the same
// bytes. The version suffix changes whenever the canonical encoding does.
const DomainDocument = "refined/document/v1"

// Digest returns the content address of v: SHA256(domain + 0x00 + canonical
// JSON), hex encoded. Documents that differ only in key order, white space or
// Unicode normalization share a digest.
func Digest(v Value) (string, error) {
	canonical, err := Marshal(v)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(DomainDocument))
	h.Write([]byte{0x00})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// RecordsDigest is the digest of records as one array.
func RecordsDigest(records []Object) (string, error) {
	arr := make(Array, len(records))
	for i, r := range records {
		arr[i] = r
	}
	return Digest(arr)
}
