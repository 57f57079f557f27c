package packet

import "errors"

var (
	// ErrInvalidAttributeValue indicates a value that cannot be represented in the target data type
	ErrInvalidAttributeValue = errors.New("invalid attribute value")
	// ErrMalformedAttribute indicates a wire value whose length does not fit its data type
	ErrMalformedAttribute = errors.New("malformed attribute")
	// ErrMalformedPacket indicates a structural violation in a received packet
	ErrMalformedPacket = errors.New("malformed packet")
	// ErrPacketTooLarge indicates a packet exceeding MaxPacketLength
	ErrPacketTooLarge = errors.New("packet too large")
	// ErrIdentifierMismatch indicates a reply that does not belong to the outstanding request
	ErrIdentifierMismatch = errors.New("identifier mismatch")
	// ErrAuthenticatorNotSet indicates an operation that needs the request authenticator before it is generated
	ErrAuthenticatorNotSet = errors.New("request authenticator not set")
)
