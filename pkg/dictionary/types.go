package dictionary

// DataType represents the data type of an attribute per RFC 2865 Section 5
type DataType string

const (
	DataTypeString   DataType = "string"   // Text, UTF-8 encoded
	DataTypeOctets   DataType = "octets"   // Raw bytes
	DataTypeInteger  DataType = "integer"  // 32-bit unsigned integer
	DataTypeIPAddr   DataType = "ipaddr"   // IPv4 address
	DataTypeDate     DataType = "date"     // 32-bit Unix timestamp
	DataTypeIPv6Addr DataType = "ipv6addr" // IPv6 address (RFC 3162)
)

// IsValid reports whether the data type can be encoded by this library
func (dt DataType) IsValid() bool {
	switch dt {
	case DataTypeString, DataTypeOctets, DataTypeInteger,
		DataTypeIPAddr, DataTypeDate, DataTypeIPv6Addr:
		return true
	default:
		return false
	}
}

// FixedLength returns the wire length for fixed-width data types and 0 for variable ones
func (dt DataType) FixedLength() int {
	switch dt {
	case DataTypeInteger, DataTypeIPAddr, DataTypeDate:
		return 4
	case DataTypeIPv6Addr:
		return 16
	default:
		return 0
	}
}

// EncryptionType represents the encryption type of an attribute
type EncryptionType string

const (
	EncryptionNone         EncryptionType = ""
	EncryptionUserPassword EncryptionType = "user-password" // RFC 2865 Section 5.2
)

// AttributeDefinition defines a RADIUS attribute per RFC 2865 Section 5
type AttributeDefinition struct {
	ID          uint8             `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	DataType    DataType          `yaml:"data_type" json:"data_type"`
	Encryption  EncryptionType    `yaml:"encryption,omitempty" json:"encryption,omitempty"`
	Values      map[string]uint32 `yaml:"values,omitempty" json:"values,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
}

// LookupValue resolves an enumerated value name, e.g. "Start" for Acct-Status-Type
func (a *AttributeDefinition) LookupValue(name string) (uint32, bool) {
	v, ok := a.Values[name]
	return v, ok
}

// ValueName returns the enumerated name for a numeric value, if one is defined.
// When several names share a value the lexically smallest one is returned.
func (a *AttributeDefinition) ValueName(value uint32) (string, bool) {
	found := ""
	for name, v := range a.Values {
		if v == value && (found == "" || name < found) {
			found = name
		}
	}
	return found, found != ""
}
