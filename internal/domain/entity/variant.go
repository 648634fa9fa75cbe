// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/pkg/errors"

// Variant represents the kind of account. Each variant lives in its own table.
type Variant string

const (
	// VariantRescuer is a volunteer rescuer, the only variant that carries skills.
	VariantRescuer Variant = "rescuer"
	// VariantAuthority is a government or civil authority account.
	VariantAuthority Variant = "authority"
	// VariantOrganization is an NGO or relief organization account.
	VariantOrganization Variant = "organization"
)

// ErrInvalidVariant is returned when a string does not name a known variant.
var ErrInvalidVariant = errors.New("invalid account variant")

// Variants lists every supported variant in a stable order.
func Variants() []Variant {
	return []Variant{VariantRescuer, VariantAuthority, VariantOrganization}
}

// String returns the string representation of the Variant.
func (v Variant) String() string {
	return string(v)
}

// IsValid checks if the Variant is a known value.
func (v Variant) IsValid() bool {
	switch v {
	case VariantRescuer, VariantAuthority, VariantOrganization:
		return true
	default:
		return false
	}
}

// ParseVariant converts a raw string (usually a path parameter) to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.IsValid() {
		return "", errors.Wrapf(ErrInvalidVariant, "%q", s)
	}

	return v, nil
}
