package mazefile

import "errors"

var (
	// ErrFormat indicates the input is not a maze file.
	ErrFormat = errors.New("mazefile: not a maze file")
	// ErrUnsupportedVersion indicates a maze file of another format version.
	ErrUnsupportedVersion = errors.New("mazefile: unsupported format version")
	// ErrDimensions indicates squares that do not fill width x height.
	ErrDimensions = errors.New("mazefile: square count does not match dimensions")
)
