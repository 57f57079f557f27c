package dictionary

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrUnknownAttribute indicates that a name or code is not registered in the dictionary
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrDuplicateAttribute indicates a conflicting attribute registration
	ErrDuplicateAttribute = errors.New("duplicate attribute")
)

// Dictionary provides fast lookup for RADIUS attributes.
// It is safe for concurrent reads after initialization is complete.
// Add* methods acquire write locks and should be called during initialization only.
type Dictionary struct {
	mu sync.RWMutex

	byID   map[uint8]*AttributeDefinition
	byName map[string]*AttributeDefinition
}

// New creates a new empty dictionary with fast lookup indices
func New() *Dictionary {
	return &Dictionary{
		byID:   make(map[uint8]*AttributeDefinition),
		byName: make(map[string]*AttributeDefinition),
	}
}

// AddStandardAttributes adds attribute definitions to the dictionary.
// Returns an error if any name or ID conflicts with an existing attribute
// or if a definition fails ValidateDefinition; nothing is added in that case.
func (d *Dictionary) AddStandardAttributes(attrs []*AttributeDefinition) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	seenNames := make(map[string]struct{}, len(attrs))
	seenIDs := make(map[uint8]struct{}, len(attrs))

	for _, attr := range attrs {
		if err := ValidateDefinition(attr); err != nil {
			return err
		}

		if _, exists := d.byName[attr.Name]; exists {
			return fmt.Errorf("%w: name %q already exists", ErrDuplicateAttribute, attr.Name)
		}
		if _, exists := seenNames[attr.Name]; exists {
			return fmt.Errorf("%w: name %q defined twice", ErrDuplicateAttribute, attr.Name)
		}

		if _, exists := d.byID[attr.ID]; exists {
			return fmt.Errorf("%w: id %d already exists", ErrDuplicateAttribute, attr.ID)
		}
		if _, exists := seenIDs[attr.ID]; exists {
			return fmt.Errorf("%w: id %d defined twice", ErrDuplicateAttribute, attr.ID)
		}

		seenNames[attr.Name] = struct{}{}
		seenIDs[attr.ID] = struct{}{}
	}

	for _, attr := range attrs {
		d.byID[attr.ID] = attr
		d.byName[attr.Name] = attr
	}

	return nil
}

// LookupByName finds an attribute by name
func (d *Dictionary) LookupByName(name string) (*AttributeDefinition, bool) {
	d.mu.RLock()
	attr, exists := d.byName[name]
	d.mu.RUnlock()
	return attr, exists
}

// LookupByID finds an attribute by its numeric type code
func (d *Dictionary) LookupByID(id uint8) (*AttributeDefinition, bool) {
	d.mu.RLock()
	attr, exists := d.byID[id]
	d.mu.RUnlock()
	return attr, exists
}

// Resolve returns the numeric code and data type registered for name
func (d *Dictionary) Resolve(name string) (uint8, DataType, error) {
	attr, ok := d.LookupByName(name)
	if !ok {
		return 0, "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	return attr.ID, attr.DataType, nil
}

// ResolveCode returns the name and data type registered for code
func (d *Dictionary) ResolveCode(code uint8) (string, DataType, error) {
	attr, ok := d.LookupByID(code)
	if !ok {
		return "", "", fmt.Errorf("%w: code %d", ErrUnknownAttribute, code)
	}
	return attr.Name, attr.DataType, nil
}

// Len returns the number of registered attributes
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byID)
}

// Attributes returns all registered attribute definitions
func (d *Dictionary) Attributes() []*AttributeDefinition {
	d.mu.RLock()
	defer d.mu.RUnlock()

	attrs := make([]*AttributeDefinition, 0, len(d.byID))
	for _, attr := range d.byID {
		attrs = append(attrs, attr)
	}
	return attrs
}
