package override

import "errors"

// ErrUnknownAlias indicates an override version whose alias is not declared by
// the base catalog, with the ErrorOnUnknownAlias strategy.
var ErrUnknownAlias = errors.New("unknown version alias")
