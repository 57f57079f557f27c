package dictionary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAttributes() []*AttributeDefinition {
	return []*AttributeDefinition{
		{ID: 1, Name: "User-Name", DataType: DataTypeString},
		{ID: 4, Name: "NAS-IP-Address", DataType: DataTypeIPAddr},
		{
			ID:       40,
			Name:     "Acct-Status-Type",
			DataType: DataTypeInteger,
			Values: map[string]uint32{
				"Start":          1,
				"Stop":           2,
				"Alive":          3,
				"Interim-Update": 3,
			},
		},
	}
}

func TestNew(t *testing.T) {
	dict := New()
	assert.Equal(t, 0, dict.Len())
	assert.Empty(t, dict.Attributes())
}

func TestDictionaryResolve(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddStandardAttributes(testAttributes()))

	code, dataType, err := dict.Resolve("NAS-IP-Address")
	require.NoError(t, err)
	assert.Equal(t, uint8(4), code)
	assert.Equal(t, DataTypeIPAddr, dataType)

	name, dataType, err := dict.ResolveCode(1)
	require.NoError(t, err)
	assert.Equal(t, "User-Name", name)
	assert.Equal(t, DataTypeString, dataType)
}

func TestDictionaryResolveUnknown(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddStandardAttributes(testAttributes()))

	_, _, err := dict.Resolve("No-Such-Attribute")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
	assert.Contains(t, err.Error(), "No-Such-Attribute")

	_, _, err = dict.ResolveCode(200)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestDictionaryAddStandardAttributes(t *testing.T) {
	tests := []struct {
		name    string
		attrs   []*AttributeDefinition
		wantErr error
	}{
		{
			name:  "valid",
			attrs: []*AttributeDefinition{{ID: 12, Name: "Framed-MTU", DataType: DataTypeInteger}},
		},
		{
			name:    "duplicate name",
			attrs:   []*AttributeDefinition{{ID: 99, Name: "User-Name", DataType: DataTypeString}},
			wantErr: ErrDuplicateAttribute,
		},
		{
			name:    "duplicate id",
			attrs:   []*AttributeDefinition{{ID: 1, Name: "Other-Name", DataType: DataTypeString}},
			wantErr: ErrDuplicateAttribute,
		},
		{
			name: "duplicate within batch",
			attrs: []*AttributeDefinition{
				{ID: 60, Name: "CHAP-Challenge", DataType: DataTypeOctets},
				{ID: 61, Name: "CHAP-Challenge", DataType: DataTypeOctets},
			},
			wantErr: ErrDuplicateAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := New()
			require.NoError(t, dict.AddStandardAttributes(testAttributes()))

			err := dict.AddStandardAttributes(tt.attrs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, len(testAttributes()), dict.Len(), "failed batch must not be partially applied")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDictionaryRejectsUnsupportedDataType(t *testing.T) {
	dict := New()
	err := dict.AddStandardAttributes([]*AttributeDefinition{
		{ID: 97, Name: "Framed-IPv6-Prefix", DataType: "ipv6prefix"},
	})
	assert.Error(t, err)
	assert.Equal(t, 0, dict.Len())
}

func TestAttributeDefinitionValues(t *testing.T) {
	dict := New()
	require.NoError(t, dict.AddStandardAttributes(testAttributes()))

	attr, ok := dict.LookupByName("Acct-Status-Type")
	require.True(t, ok)

	v, ok := attr.LookupValue("Interim-Update")
	assert.True(t, ok)
	assert.Equal(t, uint32(3), v)

	_, ok = attr.LookupValue("Bogus")
	assert.False(t, ok)

	name, ok := attr.ValueName(3)
	assert.True(t, ok)
	assert.Equal(t, "Alive", name)

	_, ok = attr.ValueName(42)
	assert.False(t, ok)
}

func TestDataTypeFixedLength(t *testing.T) {
	assert.Equal(t, 4, DataTypeInteger.FixedLength())
	assert.Equal(t, 4, DataTypeIPAddr.FixedLength())
	assert.Equal(t, 4, DataTypeDate.FixedLength())
	assert.Equal(t, 16, DataTypeIPv6Addr.FixedLength())
	assert.Equal(t, 0, DataTypeString.FixedLength())
	assert.Equal(t, 0, DataTypeOctets.FixedLength())
}

func BenchmarkLookupByID(b *testing.B) {
	dict := New()
	attrs := make([]*AttributeDefinition, 100)
	for i := range attrs {
		attrs[i] = &AttributeDefinition{
			ID:       uint8(i + 1),
			Name:     fmt.Sprintf("Attr-%d", i+1),
			DataType: DataTypeString,
		}
	}
	require.NoError(b, dict.AddStandardAttributes(attrs))

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = dict.LookupByID(50)
		}
	})
}

func BenchmarkResolve(b *testing.B) {
	dict := New()
	attrs := make([]*AttributeDefinition, 100)
	for i := range attrs {
		attrs[i] = &AttributeDefinition{
			ID:       uint8(i + 1),
			Name:     fmt.Sprintf("Attr-%d", i+1),
			DataType: DataTypeString,
		}
	}
	require.NoError(b, dict.AddStandardAttributes(attrs))

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _, _ = dict.Resolve("Attr-50")
		}
	})
}
