package packet

import (
	"encoding/binary"
	"fmt"
	"math"
	"net"
	"net/netip"
	"time"

	"github.com/vitalvas/radclient/pkg/dictionary"
)

// EncodeValue converts a typed value into its wire representation for dataType.
//
// Accepted Go types per data type:
//   - string: string, []byte
//   - integer: any signed or unsigned integer within 0..2^32-1
//   - ipaddr: net.IP, netip.Addr, string (IPv4 only)
//   - ipv6addr: net.IP, netip.Addr, string
//   - date: time.Time between 1970 and 2106, or an integer of Unix seconds
//   - octets: []byte, string
func EncodeValue(dataType dictionary.DataType, value any) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch dataType {
	case dictionary.DataTypeString:
		data, err = encodeString(value)
	case dictionary.DataTypeOctets:
		data, err = encodeOctets(value)
	case dictionary.DataTypeInteger:
		data, err = encodeInteger(value)
	case dictionary.DataTypeIPAddr:
		data, err = encodeIPv4(value)
	case dictionary.DataTypeIPv6Addr:
		data, err = encodeIPv6(value)
	case dictionary.DataTypeDate:
		data, err = encodeDate(value)
	default:
		return nil, fmt.Errorf("%w: unsupported data type %q", ErrInvalidAttributeValue, dataType)
	}

	if err != nil {
		return nil, err
	}

	if len(data) > MaxAttributeValueLength {
		return nil, fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrInvalidAttributeValue, len(data), MaxAttributeValueLength)
	}

	return data, nil
}

// DecodeValue is the inverse of EncodeValue. Integers decode to uint32,
// addresses to net.IP, dates to UTC time.Time, strings to string and octets to []byte.
func DecodeValue(dataType dictionary.DataType, data []byte) (any, error) {
	if want := dataType.FixedLength(); want != 0 && len(data) != want {
		return nil, fmt.Errorf("%w: %s requires %d bytes, got %d", ErrMalformedAttribute, dataType, want, len(data))
	}

	switch dataType {
	case dictionary.DataTypeString:
		return string(data), nil
	case dictionary.DataTypeOctets:
		return append([]byte(nil), data...), nil
	case dictionary.DataTypeInteger:
		return binary.BigEndian.Uint32(data), nil
	case dictionary.DataTypeIPAddr, dictionary.DataTypeIPv6Addr:
		return net.IP(append([]byte(nil), data...)), nil
	case dictionary.DataTypeDate:
		return time.Unix(int64(binary.BigEndian.Uint32(data)), 0).UTC(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported data type %q", ErrMalformedAttribute, dataType)
	}
}

func invalidType(dataType dictionary.DataType, value any) error {
	return fmt.Errorf("%w: cannot encode %T as %s", ErrInvalidAttributeValue, value, dataType)
}

func encodeString(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return append([]byte(nil), v...), nil
	default:
		return nil, invalidType(dictionary.DataTypeString, value)
	}
}

func encodeOctets(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return append([]byte(nil), v...), nil
	case string:
		return []byte(v), nil
	default:
		return nil, invalidType(dictionary.DataTypeOctets, value)
	}
}

func toUint32(value any) (uint32, bool) {
	var n int64
	switch v := value.(type) {
	case uint32:
		return v, true
	case AcctStatusType:
		return uint32(v), true
	case uint8:
		return uint32(v), true
	case uint16:
		return uint32(v), true
	case uint:
		if uint64(v) > math.MaxUint32 {
			return 0, false
		}
		return uint32(v), true
	case uint64:
		if v > math.MaxUint32 {
			return 0, false
		}
		return uint32(v), true
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	default:
		return 0, false
	}

	if n < 0 || n > math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}

func encodeInteger(value any) ([]byte, error) {
	n, ok := toUint32(value)
	if !ok {
		return nil, invalidType(dictionary.DataTypeInteger, value)
	}
	return binary.BigEndian.AppendUint32(nil, n), nil
}

func parseIP(value any) (net.IP, bool) {
	switch v := value.(type) {
	case net.IP:
		return v, v != nil
	case netip.Addr:
		if !v.IsValid() {
			return nil, false
		}
		return net.IP(v.AsSlice()), true
	case string:
		ip := net.ParseIP(v)
		return ip, ip != nil
	default:
		return nil, false
	}
}

func encodeIPv4(value any) ([]byte, error) {
	ip, ok := parseIP(value)
	if !ok {
		return nil, invalidType(dictionary.DataTypeIPAddr, value)
	}

	ipv4 := ip.To4()
	if ipv4 == nil {
		return nil, fmt.Errorf("%w: %s is not an IPv4 address", ErrInvalidAttributeValue, ip)
	}
	return append([]byte(nil), ipv4...), nil
}

func encodeIPv6(value any) ([]byte, error) {
	ip, ok := parseIP(value)
	if !ok {
		return nil, invalidType(dictionary.DataTypeIPv6Addr, value)
	}

	ipv6 := ip.To16()
	if ipv6 == nil {
		return nil, fmt.Errorf("%w: %s is not an IPv6 address", ErrInvalidAttributeValue, ip)
	}
	return append([]byte(nil), ipv6...), nil
}

func encodeDate(value any) ([]byte, error) {
	t, ok := value.(time.Time)
	if !ok {
		// integers are taken as Unix seconds
		n, ok := toUint32(value)
		if !ok {
			return nil, invalidType(dictionary.DataTypeDate, value)
		}
		return binary.BigEndian.AppendUint32(nil, n), nil
	}

	ts := t.Unix()
	if ts < 0 || ts > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %s is outside the 32-bit timestamp range", ErrInvalidAttributeValue, t)
	}
	return binary.BigEndian.AppendUint32(nil, uint32(ts)), nil
}
