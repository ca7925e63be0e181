package impl

import (
	"strings"

	domainerrors "indocafe/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// parseID parses a client supplied identifier. Blank and malformed values are rejected
// before any storage access.
func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domainerrors.ErrInvalidArgument.WithDetails(field + " must be a valid UUID")
	}

	return id, nil
}

// newID returns a time-ordered identifier so that id order follows insertion order.
func newID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to generate id")
	}

	return id, nil
}
