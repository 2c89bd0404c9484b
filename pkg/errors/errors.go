// ================== pkg/errors/errors.go ==================
package errors

import "errors"

// Sentinel errors returned by the feature repositories. Handlers map
// ErrNotFound to 404 and ErrDuplicate to 409.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)
