package domain

import "errors"

// Domain errors (no external dependencies). Callable handlers map these to the
// stable machine-readable codes of the callable contract.
var (
	ErrUnauthenticated    = errors.New("caller is not authenticated")
	ErrPermissionDenied   = errors.New("caller lacks the required role")
	ErrInvalidArgument    = errors.New("invalid or missing request fields")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrFailedPrecondition = errors.New("required context is missing")
	ErrInternal           = errors.New("internal error")
)
