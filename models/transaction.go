package models

// TransactionHandle identifies one remote transaction opened by
// begin_transaction. A handle belongs to exactly one create/update/delete call
// and is dropped once that call commits or rolls back.
type TransactionHandle struct {
	ID string `json:"transaction_id"`
}

// IsZero reports whether the handle carries no identifier.
func (h TransactionHandle) IsZero() bool {
	return h.ID == ""
}
