package booking

import (
	"strings"

	"github.com/kvartirnik/house-booking/internal/httperr"
)

// NormalizeComment trims surrounding whitespace and rejects blank
// comments. The trimmed value is what gets persisted.
func NormalizeComment(comment string) (string, error) {
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		return "", httperr.ValidationError(
			"invalid_comment",
			"Validation failed",
			"comment: This value should not be blank.",
		)
	}
	return trimmed, nil
}
