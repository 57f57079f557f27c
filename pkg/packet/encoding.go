package packet

import (
	"encoding/binary"
	"fmt"

	"github.com/vitalvas/radclient/pkg/dictionary"
)

// Encode converts a Packet into its binary representation per RFC 2865 Section 3
func (p *Packet) Encode() ([]byte, error) {
	length := p.Len()
	if length > MaxPacketLength {
		return nil, fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrPacketTooLarge, length, MaxPacketLength)
	}

	data := make([]byte, PacketHeaderLength, length)

	// Header
	data[0] = byte(p.Code)
	data[1] = p.Identifier
	binary.BigEndian.PutUint16(data[2:4], uint16(length))
	copy(data[4:20], p.Authenticator[:])

	return appendAttributes(data, p.Attributes), nil
}

func (p *Packet) encodeAttributes() []byte {
	return appendAttributes(make([]byte, 0, p.Len()-PacketHeaderLength), p.Attributes)
}

func appendAttributes(data []byte, attrs []*Attribute) []byte {
	for _, attr := range attrs {
		data = append(data, attr.Type, byte(attr.Length()))
		data = append(data, attr.Value...)
	}
	return data
}

// Decode parses binary data into a Packet per RFC 2865 Section 3. Attribute
// codes are resolved through dict; codes it does not know are kept as raw
// octets named "Attr-<code>".
func Decode(dict *dictionary.Dictionary, data []byte) (*Packet, error) {
	if len(data) < MinPacketLength {
		return nil, fmt.Errorf("%w: packet too short: %d bytes", ErrMalformedPacket, len(data))
	}

	if len(data) > MaxPacketLength {
		return nil, fmt.Errorf("%w: packet too long: %d bytes", ErrMalformedPacket, len(data))
	}

	length := int(binary.BigEndian.Uint16(data[2:4]))
	if length < MinPacketLength {
		return nil, fmt.Errorf("%w: invalid packet length in header: %d", ErrMalformedPacket, length)
	}

	if length != len(data) {
		return nil, fmt.Errorf("%w: packet length mismatch: header says %d, got %d", ErrMalformedPacket, length, len(data))
	}

	packet := New(dict, Code(data[0]), data[1])
	var auth [AuthenticatorLength]byte
	copy(auth[:], data[4:20])
	packet.SetAuthenticator(auth)

	offset := PacketHeaderLength
	for offset < length {
		if offset+AttributeHeaderLength > length {
			return nil, fmt.Errorf("%w: incomplete attribute header at offset %d", ErrMalformedPacket, offset)
		}

		attrType := data[offset]
		attrLength := int(data[offset+1])

		if attrLength < AttributeHeaderLength {
			return nil, fmt.Errorf("%w: invalid attribute length %d at offset %d", ErrMalformedPacket, attrLength, offset)
		}

		if offset+attrLength > length {
			return nil, fmt.Errorf("%w: attribute extends beyond packet: offset %d, length %d, packet length %d",
				ErrMalformedPacket, offset, attrLength, length)
		}

		value := make([]byte, attrLength-AttributeHeaderLength)
		copy(value, data[offset+AttributeHeaderLength:offset+attrLength])

		attr, err := decodeAttribute(dict, attrType, value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPacket, err)
		}

		packet.Attributes = append(packet.Attributes, attr)
		offset += attrLength
	}

	return packet, nil
}

func decodeAttribute(dict *dictionary.Dictionary, attrType uint8, value []byte) (*Attribute, error) {
	attr := &Attribute{
		Type:    attrType,
		Value:   value,
		Name:    unknownAttributeName(attrType),
		Decoded: value,
	}

	if dict == nil {
		return attr, nil
	}

	def, ok := dict.LookupByID(attrType)
	if !ok {
		return attr, nil
	}

	attr.Name = def.Name
	attr.Known = true

	if def.Encryption != dictionary.EncryptionNone {
		return attr, nil
	}

	decoded, err := DecodeValue(def.DataType, value)
	if err != nil {
		return nil, fmt.Errorf("attribute %s: %w", def.Name, err)
	}
	attr.Decoded = decoded

	return attr, nil
}

// Parse decodes a reply and checks that it answers the request with expectedIdentifier
func Parse(dict *dictionary.Dictionary, expectedIdentifier uint8, data []byte) (*Packet, error) {
	packet, err := Decode(dict, data)
	if err != nil {
		return nil, err
	}

	if packet.Identifier != expectedIdentifier {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrIdentifierMismatch, expectedIdentifier, packet.Identifier)
	}

	return packet, nil
}
