package applications

import "errors"

// Error kinds the pipeline produces. Handlers translate these to HTTP
// responses; nothing below the handler touches status codes.
var (
	ErrValidation = errors.New("validation error")
	ErrUpstream   = errors.New("model api error")
	ErrRender     = errors.New("render error")
	ErrNotFound   = errors.New("not found")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeUpstream   = "upstream_error"
	ErrorCodeRender     = "render_error"
	ErrorCodeInternal   = "internal_error"
)
