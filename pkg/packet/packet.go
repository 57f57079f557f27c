package packet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vitalvas/radclient/pkg/crypto"
	"github.com/vitalvas/radclient/pkg/dictionary"
)

// Packet represents a RADIUS packet as defined in RFC 2865
type Packet struct {
	Code          Code
	Identifier    uint8
	Authenticator crypto.Authenticator
	Attributes    []*Attribute
	Dict          *dictionary.Dictionary

	authenticatorSet bool
}

// New creates an empty packet with the specified code and identifier.
// The authenticator is unset until one of the Generate methods or SetAuthenticator is called.
func New(dict *dictionary.Dictionary, code Code, identifier uint8) *Packet {
	return &Packet{
		Code:       code,
		Identifier: identifier,
		Attributes: make([]*Attribute, 0),
		Dict:       dict,
	}
}

// Len returns the serialized length of the packet
func (p *Packet) Len() int {
	length := PacketHeaderLength
	for _, attr := range p.Attributes {
		length += attr.Length()
	}
	return length
}

// AddAttribute appends an already encoded attribute
func (p *Packet) AddAttribute(attr *Attribute) {
	p.Attributes = append(p.Attributes, attr)
}

func (p *Packet) appendValue(attrType uint8, name string, raw []byte, decoded any) error {
	if len(raw) > MaxAttributeValueLength {
		return fmt.Errorf("%w: %s value of %d bytes exceeds maximum of %d",
			ErrInvalidAttributeValue, name, len(raw), MaxAttributeValueLength)
	}

	p.AddAttribute(&Attribute{
		Type:    attrType,
		Value:   raw,
		Name:    name,
		Decoded: decoded,
		Known:   true,
	})
	return nil
}

func (p *Packet) lookup(name string) (*dictionary.AttributeDefinition, error) {
	if p.Dict == nil {
		return nil, fmt.Errorf("%w: %q (no dictionary)", dictionary.ErrUnknownAttribute, name)
	}

	def, ok := p.Dict.LookupByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", dictionary.ErrUnknownAttribute, name)
	}
	return def, nil
}

// SetAttribute resolves name through the dictionary, encodes value for the
// attribute's data type and appends it. Integer attributes accept enumerated
// value names ("Start") and decimal strings; date attributes accept decimal
// Unix seconds and RFC 3339 strings.
func (p *Packet) SetAttribute(name string, value any) error {
	def, err := p.lookup(name)
	if err != nil {
		return err
	}

	if def.Encryption != dictionary.EncryptionNone {
		return fmt.Errorf("%w: %s must be set with SetEncodedAttribute", ErrInvalidAttributeValue, name)
	}

	value, err = normalizeValue(def, value)
	if err != nil {
		return err
	}

	raw, err := EncodeValue(def.DataType, value)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", name, err)
	}

	decoded, err := DecodeValue(def.DataType, raw)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", name, err)
	}

	return p.appendValue(def.ID, def.Name, raw, decoded)
}

func normalizeValue(def *dictionary.AttributeDefinition, value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}

	switch def.DataType {
	case dictionary.DataTypeInteger:
		if v, found := def.LookupValue(s); found {
			return v, nil
		}
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is neither a number nor a known %s value", ErrInvalidAttributeValue, s, def.Name)
		}
		return uint32(n), nil
	case dictionary.DataTypeDate:
		s = strings.TrimSpace(s)
		if n, err := strconv.ParseUint(s, 10, 32); err == nil {
			return uint32(n), nil
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is neither Unix seconds nor an RFC 3339 time", ErrInvalidAttributeValue, s)
		}
		return t, nil
	default:
		return value, nil
	}
}

// Set appends one of the core attributes without a dictionary name lookup.
// User-Password goes through SetUserPassword instead.
func (p *Packet) Set(attr CoreAttribute, value any) error {
	if !attr.IsValid() {
		return fmt.Errorf("%w: %s", dictionary.ErrUnknownAttribute, attr)
	}
	if attr == AttrUserPassword {
		return fmt.Errorf("%w: %s must be set with SetUserPassword", ErrInvalidAttributeValue, attr)
	}

	raw, err := EncodeValue(attr.DataType(), value)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", attr, err)
	}

	decoded, err := DecodeValue(attr.DataType(), raw)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", attr, err)
	}

	return p.appendValue(uint8(attr), attr.String(), raw, decoded)
}

// SetUserPassword appends the User-Password attribute obfuscated per RFC 2865 Section 5.2.
// The request authenticator must already be set.
func (p *Packet) SetUserPassword(password, secret []byte) error {
	ciphertext, err := p.obfuscate(password, secret)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", AttrUserPassword, err)
	}
	return p.appendValue(uint8(AttrUserPassword), AttrUserPassword.String(), ciphertext, ciphertext)
}

// SetEncodedAttribute behaves like SetAttribute but routes the encoded value
// through the User-Password obfuscation. The request authenticator must already be set.
func (p *Packet) SetEncodedAttribute(name string, value any, secret []byte) error {
	def, err := p.lookup(name)
	if err != nil {
		return err
	}

	plaintext, err := EncodeValue(def.DataType, value)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", name, err)
	}

	ciphertext, err := p.obfuscate(plaintext, secret)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", name, err)
	}

	return p.appendValue(def.ID, def.Name, ciphertext, ciphertext)
}

func (p *Packet) obfuscate(plaintext, secret []byte) ([]byte, error) {
	if !p.authenticatorSet {
		return nil, ErrAuthenticatorNotSet
	}

	ciphertext, err := crypto.EncryptUserPassword(plaintext, secret, p.Authenticator)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAttributeValue, err)
		}
		return nil, err
	}
	return ciphertext, nil
}

// SetAuthenticator sets the packet authenticator
func (p *Packet) SetAuthenticator(auth crypto.Authenticator) {
	p.Authenticator = auth
	p.authenticatorSet = true
}

// HasAuthenticator reports whether the authenticator has been set
func (p *Packet) HasAuthenticator() bool {
	return p.authenticatorSet
}

// GenerateRequestAuthenticator fills the authenticator with random bytes (Access-Request)
func (p *Packet) GenerateRequestAuthenticator() error {
	auth, err := crypto.GenerateRequestAuthenticator()
	if err != nil {
		return err
	}
	p.SetAuthenticator(auth)
	return nil
}

// GenerateSignedAuthenticator computes the Request Authenticator over the
// assembled packet (Accounting, CoA and Disconnect requests). It must be
// called after the last attribute is appended.
func (p *Packet) GenerateSignedAuthenticator(secret []byte) error {
	if len(secret) == 0 {
		return crypto.ErrEmptySecret
	}

	length := p.Len()
	if length > MaxPacketLength {
		return fmt.Errorf("%w: %d bytes", ErrPacketTooLarge, length)
	}

	auth := crypto.CalculateRequestAuthenticator(uint8(p.Code), p.Identifier, uint16(length), p.encodeAttributes(), secret)
	p.SetAuthenticator(auth)
	return nil
}

// VerifyResponse checks the Response Authenticator of p against the request it answers
func (p *Packet) VerifyResponse(request *Packet, secret []byte) bool {
	length := p.Len()
	if length > MaxPacketLength {
		return false
	}

	return crypto.ValidateResponseAuthenticator(uint8(p.Code), p.Identifier, uint16(length),
		request.Authenticator, p.encodeAttributes(), p.Authenticator, secret)
}

// GetAttribute returns the first attribute with the specified name
func (p *Packet) GetAttribute(name string) (*Attribute, bool) {
	for _, attr := range p.Attributes {
		if attr.Name == name {
			return attr, true
		}
	}
	return nil, false
}

// GetAttributes returns all attributes with the specified name
func (p *Packet) GetAttributes(name string) []*Attribute {
	var attrs []*Attribute
	for _, attr := range p.Attributes {
		if attr.Name == name {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// Values returns the decoded attributes keyed by name. When an attribute
// occurs more than once the last occurrence wins.
func (p *Packet) Values() map[string]any {
	values := make(map[string]any, len(p.Attributes))
	for _, attr := range p.Attributes {
		values[attr.Name] = attr.Decoded
	}
	return values
}

// String returns a string representation of the packet
func (p *Packet) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Code=%s(%d), ID=%d, Length=%d, Attributes=%d",
		p.Code, p.Code, p.Identifier, p.Len(), len(p.Attributes))

	for _, attr := range p.Attributes {
		// never print obfuscated values
		if attr.Type == uint8(AttrUserPassword) {
			fmt.Fprintf(&sb, "\n  %s(%d)=<hidden>", attr.Name, attr.Type)
			continue
		}
		fmt.Fprintf(&sb, "\n  %s", attr)
	}
	return sb.String()
}
