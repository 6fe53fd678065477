package versioncatalog

import "errors"

// Sentinel errors for catalog parsing and model mutation.
var (
	// ErrInvalidConfiguration indicates a version string the catalog cannot express,
	// such as a strict modifier (!!) without a version in front of it.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIllegalArgument indicates a model mutation that would break an invariant.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrMalformedCatalog indicates the catalog document is not valid TOML.
	ErrMalformedCatalog = errors.New("malformed version catalog")
)
