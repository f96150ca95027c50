package compliance

import (
	"crypto/sha256"
	"fmt"
)

// sha256String calculates the SHA256 hash of the input and returns its hex representation.
func sha256String(input []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(input))
}

// Checksum returns the SHA256 checksum of the event's JSON encoding.
//
// Consumers of the audit trail compare it against the message body to
// detect records altered after publishing.
func (e Event) Checksum() (string, error) {
	body, err := e.ToJSON()
	if err != nil {
		return "", err
	}
	return sha256String(body), nil
}
