package trimesh

import "errors"

var (
	// ErrConfiguration indicates a malformed refinement plan or processor option.
	ErrConfiguration = errors.New("trimesh: invalid configuration")
	// ErrDegenerateDomain indicates a partition or base yielding a zero-area domain.
	ErrDegenerateDomain = errors.New("trimesh: degenerate domain")
	// ErrInvalidMesh indicates a cell referencing missing or repeated vertices.
	ErrInvalidMesh = errors.New("trimesh: invalid mesh")
	// ErrCellIndex indicates a marked cell index outside the mesh.
	ErrCellIndex = errors.New("trimesh: cell index out of range")
	// ErrGeometryMismatch indicates a mesh coordinate mapping outside the sampled image.
	ErrGeometryMismatch = errors.New("trimesh: geometry does not match image")
	// ErrUnsupportedColor indicates a pixel layout the color sampler does not know.
	ErrUnsupportedColor = errors.New("trimesh: unsupported color format")
	// ErrUnsupportedFormat indicates an output extension that cannot be encoded.
	ErrUnsupportedFormat = errors.New("trimesh: unsupported output format")
)
