package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/radclient/pkg/dictionaries"
	"github.com/vitalvas/radclient/pkg/dictionary"
)

func TestNewAttribute(t *testing.T) {
	attr, err := NewAttribute(200, []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, uint8(200), attr.Type)
	assert.Equal(t, 4, attr.Length())
	assert.Equal(t, "Attr-200", attr.Name)
	assert.False(t, attr.Known)
	assert.Equal(t, "Type=200, Length=4, Value=0102", attr.String())

	_, err = NewAttribute(200, make([]byte, MaxAttributeValueLength+1))
	assert.ErrorIs(t, err, ErrInvalidAttributeValue)

	attr, err = NewAttribute(200, make([]byte, MaxAttributeValueLength))
	require.NoError(t, err)
	assert.Equal(t, MaxAttributeLength, attr.Length())
}

func TestCoreAttributesMatchDefaultDictionary(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	for attr := range coreAttributes {
		t.Run(attr.String(), func(t *testing.T) {
			code, dataType, err := dict.Resolve(attr.String())
			require.NoError(t, err)
			assert.Equal(t, uint8(attr), code)
			assert.Equal(t, attr.DataType(), dataType)
		})
	}
}

func TestCoreAttributeUnknown(t *testing.T) {
	attr := CoreAttribute(99)
	assert.False(t, attr.IsValid())
	assert.Equal(t, "Attr-99", attr.String())
	assert.Equal(t, dictionary.DataType(""), attr.DataType())
}

func TestAcctStatusTypeString(t *testing.T) {
	assert.Equal(t, "Start", AcctStatusStart.String())
	assert.Equal(t, "Stop", AcctStatusStop.String())
	assert.Equal(t, "Interim-Update", AcctStatusInterimUpdate.String())
	assert.Equal(t, "Accounting-On", AcctStatusAccountingOn.String())
	assert.Equal(t, "Accounting-Off", AcctStatusAccountingOff.String())
	assert.Equal(t, "Unknown(42)", AcctStatusType(42).String())
}

func TestAcctStatusTypeMatchesDictionaryValues(t *testing.T) {
	dict, err := dictionaries.NewDefault()
	require.NoError(t, err)

	def, ok := dict.LookupByName(AttrAcctStatusType.String())
	require.True(t, ok)

	for _, status := range []AcctStatusType{AcctStatusStart, AcctStatusStop, AcctStatusInterimUpdate} {
		v, found := def.LookupValue(status.String())
		require.True(t, found, status.String())
		assert.Equal(t, uint32(status), v)
	}

	def, ok = dict.LookupByName(AttrAcctAuthentic.String())
	require.True(t, ok)
	v, found := def.LookupValue("RADIUS")
	require.True(t, found)
	assert.Equal(t, AcctAuthenticRADIUS, v)
}
