package types

import (
	"github.com/go-playground/validator/v10"
)

// ExtractRequest is the request body for POST /extract.
type ExtractRequest struct {
	Text    string `json:"text" validate:"required,min=1"`
	Persist bool   `json:"persist,omitempty"`
}

// ExtractResponse wraps an extraction result with the run ID assigned when the
// result was persisted.
type ExtractResponse struct {
	ID     string           `json:"id,omitempty"`
	Result ExtractionResult `json:"result"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
