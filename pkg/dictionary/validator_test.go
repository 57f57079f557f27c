package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDefinition(t *testing.T) {
	tests := []struct {
		name    string
		attr    *AttributeDefinition
		wantErr bool
	}{
		{"valid string", &AttributeDefinition{ID: 1, Name: "User-Name", DataType: DataTypeString}, false},
		{"valid password", &AttributeDefinition{ID: 2, Name: "User-Password", DataType: DataTypeString, Encryption: EncryptionUserPassword}, false},
		{"valid enum", &AttributeDefinition{ID: 6, Name: "Service-Type", DataType: DataTypeInteger, Values: map[string]uint32{"Framed-User": 2}}, false},
		{"nil", nil, true},
		{"empty name", &AttributeDefinition{ID: 1, DataType: DataTypeString}, true},
		{"bad name", &AttributeDefinition{ID: 1, Name: "User Name", DataType: DataTypeString}, true},
		{"long name", &AttributeDefinition{ID: 1, Name: strings.Repeat("A", MaxNameLength+1), DataType: DataTypeString}, true},
		{"reserved id", &AttributeDefinition{ID: 0, Name: "Zero", DataType: DataTypeString}, true},
		{"bad type", &AttributeDefinition{ID: 1, Name: "User-Name", DataType: "tlv"}, true},
		{"encrypted integer", &AttributeDefinition{ID: 2, Name: "User-Password", DataType: DataTypeInteger, Encryption: EncryptionUserPassword}, true},
		{"unknown encryption", &AttributeDefinition{ID: 2, Name: "User-Password", DataType: DataTypeString, Encryption: "tunnel-password"}, true},
		{"enum on string", &AttributeDefinition{ID: 1, Name: "User-Name", DataType: DataTypeString, Values: map[string]uint32{"Admin": 1}}, true},
		{"bad enum name", &AttributeDefinition{ID: 6, Name: "Service-Type", DataType: DataTypeInteger, Values: map[string]uint32{"Framed User": 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDefinition(tt.attr)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDefinition)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAddStandardAttributesValidates(t *testing.T) {
	dict := New()
	err := dict.AddStandardAttributes([]*AttributeDefinition{
		{ID: 1, Name: "User-Name", DataType: DataTypeString},
		{ID: 0, Name: "Broken", DataType: DataTypeString},
	})

	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Equal(t, 0, dict.Len())
}
