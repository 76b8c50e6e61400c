package classpath

import "errors"

var (
	// Configuration errors
	ErrUnknownLayoutType   = errors.New("unknown classpath layout type")
	ErrMissingCustomLayout = errors.New("custom layout type was declared, but custom layout expression was not specified")

	// Interpolation errors are wrapped from pkg/utils/interpolate with the
	// artifact and template that triggered them.
	ErrEntryInterpolation = errors.New("error interpolating artifact path for classpath entry")
)
