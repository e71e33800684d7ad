package contract

import "github.com/zclconf/go-cty/cty"

// Declaration is a single item in a widget type's raw contract list.
//
// Exactly one of three forms is valid: a bare required name, a name carrying
// a default value, or the no-parameters sentinel. The zero value is not a
// valid declaration; use the constructors.
type Declaration struct {
	// Name is the parameter name. Empty for the no-parameters sentinel.
	Name string

	// Default is an optional pointer to the value used when the caller does
	// not supply this parameter. If nil, the parameter is required.
	Default *cty.Value

	// NoParams marks the sentinel declaration meaning "this type accepts
	// zero parameters". A sentinel must be the sole declaration of a type.
	NoParams bool

	// Description is optional documentation for the parameter. It plays no
	// part in validation.
	Description string
}

// Bare returns a declaration for a required parameter with no default.
func Bare(name string) Declaration {
	return Declaration{Name: name}
}

// WithDefault returns a declaration for a parameter that falls back to the
// given value when the caller omits it.
func WithDefault(name string, val cty.Value) Declaration {
	return Declaration{Name: name, Default: &val}
}

// NoParameters returns the sentinel declaration for a type that accepts no
// construction parameters at all.
func NoParameters() Declaration {
	return Declaration{NoParams: true}
}
