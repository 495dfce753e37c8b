package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-user-bff/models"
)

// decodeUsers decodes a collection response. The remote store answers with a
// JSON array; a single object is accepted as a one-element result and an
// empty body as no rows.
func decodeUsers(body []byte) ([]models.User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []models.User{}, nil
	}

	if trimmed[0] == '{' {
		var user models.User
		if err := json.Unmarshal(trimmed, &user); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return []models.User{user}, nil
	}

	users := make([]models.User, 0)
	if err := json.Unmarshal(trimmed, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return users, nil
}

// decodeTransactionHandle extracts transaction_id from a begin_transaction
// response. Both string and numeric ids are accepted.
func decodeTransactionHandle(body []byte) (models.TransactionHandle, error) {
	var raw struct {
		ID json.RawMessage `json:"transaction_id"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.TransactionHandle{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var id string
	if err := json.Unmarshal(raw.ID, &id); err != nil {
		var number json.Number
		if err = json.Unmarshal(raw.ID, &number); err != nil {
			return models.TransactionHandle{}, fmt.Errorf("%w: transaction_id is missing", ErrMalformedResponse)
		}
		id = number.String()
	}

	handle := models.TransactionHandle{ID: id}
	if handle.IsZero() {
		return handle, fmt.Errorf("%w: transaction_id is empty", ErrMalformedResponse)
	}

	return handle, nil
}

// userPatch builds the partial document for an update. The id and
// created_at of the stored user are never part of it.
func userPatch(input models.NewUser, passwordHash string, updatedAt models.Timestamp) models.UserPatch {
	return models.UserPatch{
		Username:  input.Username,
		Email:     input.Email,
		Password:  passwordHash,
		UpdatedAt: updatedAt,
	}
}
