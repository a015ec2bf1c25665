// Package ledgerexport defines the persisted-layout DTOs the
// (external) storage collaborator consumes. They are plain structs
// with protobuf well-known timestamp fields so the collaborator can
// serialize them without re-deriving wire semantics for time.Time.
package ledgerexport

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TransactionRecord is one transaction projected for persistence.
// Data holds the same attribute map the transaction's Data() method
// returns.
type TransactionRecord struct {
	ID        string
	Type      string
	ProductID string
	CreatedAt *timestamppb.Timestamp
	Data      map[string]string
}

// BlockRecord is one block projected for persistence.
type BlockRecord struct {
	Index        int64
	Timestamp    *timestamppb.Timestamp
	PreviousHash string
	Hash         string
	Nonce        int64
	Transactions []TransactionRecord
}
