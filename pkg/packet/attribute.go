package packet

import (
	"fmt"

	"github.com/vitalvas/radclient/pkg/dictionary"
)

// Attribute represents a RADIUS attribute as it appears on the wire.
// Name and Decoded are filled in when the attribute was built from or
// resolved through a dictionary.
type Attribute struct {
	Type  uint8
	Value []byte

	// Name is the dictionary name, or "Attr-<type>" when the type is unknown
	Name string
	// Decoded is the typed value, or the raw octets for unknown and hidden attributes
	Decoded any
	// Known reports whether the type was resolved through the dictionary
	Known bool
}

// NewAttribute creates a raw RADIUS attribute
func NewAttribute(attrType uint8, value []byte) (*Attribute, error) {
	if len(value) > MaxAttributeValueLength {
		return nil, fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrInvalidAttributeValue, len(value), MaxAttributeValueLength)
	}

	return &Attribute{
		Type:    attrType,
		Value:   value,
		Name:    unknownAttributeName(attrType),
		Decoded: value,
	}, nil
}

// Length returns the encoded length including the Type and Length octets
func (a *Attribute) Length() int {
	return AttributeHeaderLength + len(a.Value)
}

// String returns a string representation of the attribute
func (a *Attribute) String() string {
	if a.Known {
		return fmt.Sprintf("%s(%d)=%v", a.Name, a.Type, a.Decoded)
	}
	return fmt.Sprintf("Type=%d, Length=%d, Value=%x", a.Type, a.Length(), a.Value)
}

func unknownAttributeName(attrType uint8) string {
	return fmt.Sprintf("Attr-%d", attrType)
}

// CoreAttribute enumerates the attributes the client sets on its own.
// They carry a fixed data type so building a request never depends on
// dictionary string lookups.
type CoreAttribute uint8

const (
	AttrUserName       CoreAttribute = 1
	AttrUserPassword   CoreAttribute = 2
	AttrNASIPAddress   CoreAttribute = 4
	AttrNASIdentifier  CoreAttribute = 32
	AttrAcctStatusType CoreAttribute = 40
	AttrAcctSessionID  CoreAttribute = 44
	AttrAcctAuthentic  CoreAttribute = 45
)

var coreAttributes = map[CoreAttribute]struct {
	name     string
	dataType dictionary.DataType
}{
	AttrUserName:       {"User-Name", dictionary.DataTypeString},
	AttrUserPassword:   {"User-Password", dictionary.DataTypeString},
	AttrNASIPAddress:   {"NAS-IP-Address", dictionary.DataTypeIPAddr},
	AttrNASIdentifier:  {"NAS-Identifier", dictionary.DataTypeString},
	AttrAcctStatusType: {"Acct-Status-Type", dictionary.DataTypeInteger},
	AttrAcctSessionID:  {"Acct-Session-Id", dictionary.DataTypeString},
	AttrAcctAuthentic:  {"Acct-Authentic", dictionary.DataTypeInteger},
}

// String returns the RFC name of the attribute
func (a CoreAttribute) String() string {
	if def, ok := coreAttributes[a]; ok {
		return def.name
	}
	return unknownAttributeName(uint8(a))
}

// DataType returns the wire data type of the attribute
func (a CoreAttribute) DataType() dictionary.DataType {
	return coreAttributes[a].dataType
}

// IsValid reports whether a is one of the enumerated attributes
func (a CoreAttribute) IsValid() bool {
	_, ok := coreAttributes[a]
	return ok
}

// AcctStatusType is the value of the Acct-Status-Type attribute (RFC 2866 Section 5.1)
type AcctStatusType uint32

const (
	AcctStatusStart         AcctStatusType = 1
	AcctStatusStop          AcctStatusType = 2
	AcctStatusInterimUpdate AcctStatusType = 3
	AcctStatusAccountingOn  AcctStatusType = 7
	AcctStatusAccountingOff AcctStatusType = 8
)

// String returns the RFC name of the status type
func (s AcctStatusType) String() string {
	switch s {
	case AcctStatusStart:
		return "Start"
	case AcctStatusStop:
		return "Stop"
	case AcctStatusInterimUpdate:
		return "Interim-Update"
	case AcctStatusAccountingOn:
		return "Accounting-On"
	case AcctStatusAccountingOff:
		return "Accounting-Off"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(s))
	}
}

// AcctAuthenticRADIUS is the Acct-Authentic value for users authenticated by RADIUS
const AcctAuthenticRADIUS uint32 = 1
