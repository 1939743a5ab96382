package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// api-level errors shared across handlers
var (
	ErrInvalidParams = errors.New("invalid params")
	ErrInvalidID     = errors.New("invalid id")
)

type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

// ExtractErrorFields turns validator failures into per-field messages.
// Non-validation errors yield no fields.
func ExtractErrorFields(err error) []ErrorField {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, ErrorField{
			FieldName:    fe.Field(),
			ErrorMessage: validationMessage(fe),
		})
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "len":
		return "invalid length"
	case "oneof":
		return "must be one of the allowed values"
	case "gte":
		return "must be greater than or equal to the allowed minimum"
	case "lte":
		return "must be less than or equal to the allowed maximum"
	case "gt":
		return "must be greater than the allowed minimum"
	case "lt":
		return "must be less than the allowed maximum"
	case "uuid":
		return "invalid UUID format"
	default:
		return "invalid input"
	}
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
