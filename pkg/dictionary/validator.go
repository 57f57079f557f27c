package dictionary

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidDefinition indicates an attribute definition that cannot be registered
var ErrInvalidDefinition = errors.New("invalid attribute definition")

// MaxNameLength limits attribute and value names
const MaxNameLength = 64

// ValidateDefinition checks a single attribute definition before it is registered.
// Definitions loaded from files go through the same checks as the built-in ones.
func ValidateDefinition(attr *AttributeDefinition) error {
	if attr == nil {
		return fmt.Errorf("%w: nil definition", ErrInvalidDefinition)
	}

	if attr.Name == "" {
		return fmt.Errorf("%w: id %d has no name", ErrInvalidDefinition, attr.ID)
	}

	if !isValidName(attr.Name) {
		return fmt.Errorf("%w: name %q contains invalid characters", ErrInvalidDefinition, attr.Name)
	}

	if attr.ID == 0 {
		return fmt.Errorf("%w: %q uses reserved id 0", ErrInvalidDefinition, attr.Name)
	}

	if !attr.DataType.IsValid() {
		return fmt.Errorf("%w: %q has unsupported data type %q", ErrInvalidDefinition, attr.Name, attr.DataType)
	}

	switch attr.Encryption {
	case EncryptionNone:
	case EncryptionUserPassword:
		if attr.DataType != DataTypeString && attr.DataType != DataTypeOctets {
			return fmt.Errorf("%w: %q: %s encryption requires string or octets, got %s",
				ErrInvalidDefinition, attr.Name, attr.Encryption, attr.DataType)
		}
	default:
		return fmt.Errorf("%w: %q has unsupported encryption %q", ErrInvalidDefinition, attr.Name, attr.Encryption)
	}

	if len(attr.Values) > 0 && attr.DataType != DataTypeInteger {
		return fmt.Errorf("%w: %q: enumerated values require integer data type, got %s",
			ErrInvalidDefinition, attr.Name, attr.DataType)
	}

	for name := range attr.Values {
		if !isValidName(name) {
			return fmt.Errorf("%w: %q: value name %q contains invalid characters", ErrInvalidDefinition, attr.Name, name)
		}
	}

	return nil
}

func isValidName(name string) bool {
	if name == "" || len(name) > MaxNameLength {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '.' {
			return false
		}
	}
	return true
}
