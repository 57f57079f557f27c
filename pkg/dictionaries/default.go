package dictionaries

import "github.com/vitalvas/radclient/pkg/dictionary"

// NewDefault creates a dictionary pre-loaded with the standard RFC attributes.
// This is the dictionary a client uses when none is configured.
// Currently includes:
//   - RFC 2865 authentication attributes
//   - RFC 2866 accounting attributes
//   - RFC 2869 extension attributes
//   - RFC 3576 dynamic authorization attributes
//
// Returns an error if there are duplicate attribute names, which would indicate a programming error
// in the dictionary definitions.
//
// Example usage:
//
//	dict, err := dictionaries.NewDefault()
//	if err != nil {
//		return err
//	}
//	cl, err := client.New("10.0.0.1", client.WithDictionary(dict))
func NewDefault() (*dictionary.Dictionary, error) {
	dict := dictionary.New()

	if err := dict.AddStandardAttributes(StandardRFCAttributes); err != nil {
		return nil, err
	}

	return dict, nil
}
