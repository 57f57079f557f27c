package crypto

import (
	"crypto/md5"
	"errors"
	"fmt"
)

const (
	// PasswordBlockLength is the block size of the User-Password hiding scheme
	PasswordBlockLength = md5.Size
	// MaxPasswordLength is the longest plaintext accepted by RFC 2865 Section 5.2
	MaxPasswordLength = 128
)

var (
	// ErrPasswordTooLong indicates a plaintext password longer than MaxPasswordLength
	ErrPasswordTooLong = errors.New("password too long")
	// ErrInvalidCiphertext indicates an obfuscated password that is not a whole number of blocks
	ErrInvalidCiphertext = errors.New("invalid obfuscated password length")
)

// EncryptUserPassword hides a password as described in RFC 2865 Section 5.2.
//
// The password is zero padded to a multiple of 16 octets (at least one block), then
//
//	c(1) = p(1) XOR MD5(secret + request authenticator)
//	c(i) = p(i) XOR MD5(secret + c(i-1))
//
// requestAuth must be the authenticator that is actually transmitted with the packet.
func EncryptUserPassword(password, sharedSecret []byte, requestAuth Authenticator) ([]byte, error) {
	if len(sharedSecret) == 0 {
		return nil, ErrEmptySecret
	}

	if len(password) > MaxPasswordLength {
		return nil, fmt.Errorf("%w: %d bytes, maximum %d", ErrPasswordTooLong, len(password), MaxPasswordLength)
	}

	blocks := (len(password) + PasswordBlockLength - 1) / PasswordBlockLength
	if blocks == 0 {
		blocks = 1
	}

	result := make([]byte, blocks*PasswordBlockLength)
	copy(result, password)

	prev := requestAuth[:]
	for offset := 0; offset < len(result); offset += PasswordBlockLength {
		key := passwordKey(sharedSecret, prev)
		block := result[offset : offset+PasswordBlockLength]
		for i := range block {
			block[i] ^= key[i]
		}
		prev = block
	}

	return result, nil
}

// DecryptUserPassword reverses EncryptUserPassword and strips the zero padding
func DecryptUserPassword(ciphertext, sharedSecret []byte, requestAuth Authenticator) ([]byte, error) {
	if len(sharedSecret) == 0 {
		return nil, ErrEmptySecret
	}

	if len(ciphertext) == 0 || len(ciphertext)%PasswordBlockLength != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidCiphertext, len(ciphertext))
	}

	result := make([]byte, len(ciphertext))

	prev := requestAuth[:]
	for offset := 0; offset < len(ciphertext); offset += PasswordBlockLength {
		key := passwordKey(sharedSecret, prev)
		for i := 0; i < PasswordBlockLength; i++ {
			result[offset+i] = ciphertext[offset+i] ^ key[i]
		}
		prev = ciphertext[offset : offset+PasswordBlockLength]
	}

	end := len(result)
	for end > 0 && result[end-1] == 0 {
		end--
	}

	return result[:end], nil
}

func passwordKey(sharedSecret, prev []byte) [md5.Size]byte {
	buf := make([]byte, 0, len(sharedSecret)+len(prev))
	buf = append(buf, sharedSecret...)
	buf = append(buf, prev...)
	return md5.Sum(buf)
}
