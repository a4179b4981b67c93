package validation

import (
	"strings"

	apperrors "qrpagemaker/internal/errors"
	"qrpagemaker/internal/models"
)

// ValidateRequest checks that a page request carries the required
// fields and normalizes leading/trailing whitespace in place.
func ValidateRequest(req *models.PageRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.URL = strings.TrimSpace(req.URL)

	if req.Title == "" {
		return &apperrors.InputError{Field: "title", Message: "title is required"}
	}
	if req.URL == "" {
		return &apperrors.InputError{Field: "url", Message: "URL is required"}
	}
	return nil
}
