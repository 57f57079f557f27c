package crypto

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"errors"
	"fmt"
	"hash"
)

// AuthenticatorLength is the length of RADIUS authenticators in bytes
const AuthenticatorLength = 16

var (
	// ErrEmptySecret indicates that a shared secret is required but missing
	ErrEmptySecret = errors.New("shared secret cannot be empty")
	// ErrAuthenticatorMismatch indicates authenticator validation failed
	ErrAuthenticatorMismatch = errors.New("authenticator validation failed")
)

// Authenticator represents a 16-byte RADIUS authenticator
type Authenticator [AuthenticatorLength]byte

// GenerateRequestAuthenticator generates a random Request Authenticator for Access-Request packets
func GenerateRequestAuthenticator() (Authenticator, error) {
	var auth Authenticator
	if _, err := rand.Read(auth[:]); err != nil {
		return auth, fmt.Errorf("failed to generate random authenticator: %w", err)
	}
	return auth, nil
}

// writeHeader feeds Code + Identifier + Length + authenticator field into h
func writeHeader(h hash.Hash, code, identifier uint8, length uint16, auth Authenticator) {
	h.Write([]byte{code, identifier, byte(length >> 8), byte(length)})
	h.Write(auth[:])
}

// CalculateRequestAuthenticator calculates the Request Authenticator for Accounting, CoA and Disconnect requests.
// Request Authenticator = MD5(Code + ID + Length + 16 zero octets + Request Attributes + Secret)
func CalculateRequestAuthenticator(code, identifier uint8, length uint16, attributes, sharedSecret []byte) Authenticator {
	h := md5.New()
	writeHeader(h, code, identifier, length, Authenticator{})
	h.Write(attributes)
	h.Write(sharedSecret)

	var result Authenticator
	copy(result[:], h.Sum(nil))
	return result
}

// ValidateRequestAuthenticator validates a Request Authenticator of a signed request
func ValidateRequestAuthenticator(code, identifier uint8, length uint16, attributes []byte, receivedAuth Authenticator, sharedSecret []byte) bool {
	expected := CalculateRequestAuthenticator(code, identifier, length, attributes, sharedSecret)
	return expected.Equal(receivedAuth)
}

// CalculateResponseAuthenticator calculates the Response Authenticator as defined in RFC 2865 Section 3.
// Response Authenticator = MD5(Code + ID + Length + Request Authenticator + Response Attributes + Secret)
func CalculateResponseAuthenticator(code, identifier uint8, length uint16, requestAuth Authenticator, attributes, sharedSecret []byte) Authenticator {
	h := md5.New()
	writeHeader(h, code, identifier, length, requestAuth)
	h.Write(attributes)
	h.Write(sharedSecret)

	var result Authenticator
	copy(result[:], h.Sum(nil))
	return result
}

// ValidateResponseAuthenticator validates a Response Authenticator
func ValidateResponseAuthenticator(code, identifier uint8, length uint16, requestAuth Authenticator, attributes []byte, receivedAuth Authenticator, sharedSecret []byte) bool {
	expected := CalculateResponseAuthenticator(code, identifier, length, requestAuth, attributes, sharedSecret)
	return expected.Equal(receivedAuth)
}

// String returns a hex representation of the authenticator
func (a Authenticator) String() string {
	return fmt.Sprintf("%x", a[:])
}

// Equal compares two authenticators in constant time
func (a Authenticator) Equal(other Authenticator) bool {
	return hmac.Equal(a[:], other[:])
}

// IsZero returns true if the authenticator is all zeros
func (a Authenticator) IsZero() bool {
	return a.Equal(Authenticator{})
}
