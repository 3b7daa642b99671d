package model

import "github.com/google/uuid"

// ParseID parses an identifier token, failing with INVALID_INPUT.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewInvalidInput("Invalid ID format: "+raw, err)
	}
	return id, nil
}
