package ledger

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// ProductStatus is the status carried by a PRODUCT_TRANSFER transaction
// and surfaced in traceability reports.
type ProductStatus string

// The four statuses the external authorization/UI collaborators are
// documented to know about (spec §6).
const (
	StatusCreated    ProductStatus = "CREATED"
	StatusInTransit  ProductStatus = "IN_TRANSIT"
	StatusDelivered  ProductStatus = "DELIVERED"
	StatusVerified   ProductStatus = "VERIFIED"
)

func (s ProductStatus) valid() bool {
	switch s {
	case StatusCreated, StatusInTransit, StatusDelivered, StatusVerified:
		return true
	}
	return false
}

// Transaction is the capability set every ledger event variant
// implements: identity, a fixed type tag, a creation timestamp, a
// deterministic attribute projection, and self-validation.
type Transaction interface {
	ID() string
	Type() string
	CreatedAt() time.Time
	// Data is the variant's attribute map rendered for hashing, rule
	// evaluation, and traceability projection. Keys are the variant's
	// field names; values are rendered as strings (booleans as "true"/
	// "false") so every consumer shares one representation.
	Data() map[string]string
	// ProductID is the product this event concerns, used to build the
	// traceability projection without type-switching at every call site.
	ProductID() string
	Validate() error
	// Canonical is the deterministic byte rendering used for hashing:
	// identifier, type, timestamp, then the attribute map in sorted-key
	// order. Stable for a given set of field values.
	Canonical() []byte
}

// envelope holds the fields common to every transaction variant.
type envelope struct {
	id        string
	timestamp time.Time
}

func (e envelope) ID() string           { return e.id }
func (e envelope) CreatedAt() time.Time { return e.timestamp }

// SetTimestampForTesting overrides a transaction's creation timestamp.
// Production code assigns the timestamp once at construction and never
// calls this; it exists so dependent packages can build deterministic
// fixtures (e.g. for transit-time statistics) without sleeping in tests.
func SetTimestampForTesting(tx Transaction, at time.Time) {
	switch v := tx.(type) {
	case *ProductCreationTx:
		v.timestamp = at
	case *ProductTransferTx:
		v.timestamp = at
	case *ProductVerificationTx:
		v.timestamp = at
	}
}

func canonicalize(id, typ string, ts time.Time, data map[string]string) []byte {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(id)
	b.WriteString(typ)
	b.WriteString(ts.Format(time.RFC3339Nano))
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(data[k])
		b.WriteString(";")
	}
	return []byte(b.String())
}

func requireNonEmpty(fields map[string]string) error {
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return wrapField(name, ErrMissingField)
		}
	}
	return nil
}

func wrapField(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// FieldError names the specific field that failed validation, matching
// spec §7's requirement that InvalidTransaction errors carry a
// field-level message.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *FieldError) Unwrap() error { return e.Err }

// --- PRODUCT_CREATION -------------------------------------------------

const TypeProductCreation = "PRODUCT_CREATION"

type ProductCreationTx struct {
	envelope
	SupplierID         string
	ProductID_         string
	ProductName        string
	ProductDescription string // may be empty, never absent
	Origin             string
}

// NewProductCreationTx constructs a creation event stamped with the
// current time.
func NewProductCreationTx(id, supplierID, productID, productName, description, origin string) *ProductCreationTx {
	return &ProductCreationTx{
		envelope:           envelope{id: strings.TrimSpace(id), timestamp: time.Now()},
		SupplierID:         supplierID,
		ProductID_:         productID,
		ProductName:        productName,
		ProductDescription: description,
		Origin:             origin,
	}
}

func (t *ProductCreationTx) Type() string      { return TypeProductCreation }
func (t *ProductCreationTx) ProductID() string { return t.ProductID_ }

func (t *ProductCreationTx) Data() map[string]string {
	return map[string]string{
		"supplierId":         t.SupplierID,
		"productId":          t.ProductID_,
		"productName":        t.ProductName,
		"productDescription": t.ProductDescription,
		"origin":             t.Origin,
	}
}

func (t *ProductCreationTx) Validate() error {
	if strings.TrimSpace(t.id) == "" {
		return ErrEmptyIdentifier
	}
	if t.timestamp.IsZero() {
		return ErrMissingTimestamp
	}
	return requireNonEmpty(map[string]string{
		"supplierId":  t.SupplierID,
		"productId":   t.ProductID_,
		"productName": t.ProductName,
		"origin":      t.Origin,
	})
}

func (t *ProductCreationTx) Canonical() []byte {
	return canonicalize(t.id, t.Type(), t.timestamp, t.Data())
}

// --- PRODUCT_TRANSFER ---------------------------------------------------

const TypeProductTransfer = "PRODUCT_TRANSFER"

type ProductTransferTx struct {
	envelope
	FromParty    string
	ToParty      string
	ProductID_   string
	FromLocation string
	ToLocation   string
	NewStatus    ProductStatus
}

func NewProductTransferTx(id, fromParty, toParty, productID, fromLocation, toLocation string, newStatus ProductStatus) *ProductTransferTx {
	return &ProductTransferTx{
		envelope:     envelope{id: strings.TrimSpace(id), timestamp: time.Now()},
		FromParty:    fromParty,
		ToParty:      toParty,
		ProductID_:   productID,
		FromLocation: fromLocation,
		ToLocation:   toLocation,
		NewStatus:    newStatus,
	}
}

func (t *ProductTransferTx) Type() string      { return TypeProductTransfer }
func (t *ProductTransferTx) ProductID() string { return t.ProductID_ }

func (t *ProductTransferTx) Data() map[string]string {
	return map[string]string{
		"fromParty":    t.FromParty,
		"toParty":      t.ToParty,
		"productId":    t.ProductID_,
		"fromLocation": t.FromLocation,
		"toLocation":   t.ToLocation,
		"newStatus":    string(t.NewStatus),
	}
}

func (t *ProductTransferTx) Validate() error {
	if strings.TrimSpace(t.id) == "" {
		return ErrEmptyIdentifier
	}
	if t.timestamp.IsZero() {
		return ErrMissingTimestamp
	}
	if err := requireNonEmpty(map[string]string{
		"fromParty":    t.FromParty,
		"toParty":      t.ToParty,
		"productId":    t.ProductID_,
		"fromLocation": t.FromLocation,
		"toLocation":   t.ToLocation,
	}); err != nil {
		return err
	}
	if !t.NewStatus.valid() {
		return wrapField("newStatus", ErrInvalidStatus)
	}
	return nil
}

func (t *ProductTransferTx) Canonical() []byte {
	return canonicalize(t.id, t.Type(), t.timestamp, t.Data())
}

// --- PRODUCT_VERIFICATION -----------------------------------------------

const TypeProductVerification = "PRODUCT_VERIFICATION"

type ProductVerificationTx struct {
	envelope
	VerifierID         string
	ProductID_         string
	VerificationResult bool
	VerificationNotes  string // may be empty, never absent
}

func NewProductVerificationTx(id, verifierID, productID string, result bool, notes string) *ProductVerificationTx {
	return &ProductVerificationTx{
		envelope:           envelope{id: strings.TrimSpace(id), timestamp: time.Now()},
		VerifierID:         verifierID,
		ProductID_:         productID,
		VerificationResult: result,
		VerificationNotes:  notes,
	}
}

func (t *ProductVerificationTx) Type() string      { return TypeProductVerification }
func (t *ProductVerificationTx) ProductID() string { return t.ProductID_ }

func (t *ProductVerificationTx) Data() map[string]string {
	return map[string]string{
		"verifierId":         t.VerifierID,
		"productId":          t.ProductID_,
		"verificationResult": strconv.FormatBool(t.VerificationResult),
		"verificationNotes":  t.VerificationNotes,
		"verified":           strconv.FormatBool(t.VerificationResult),
	}
}

func (t *ProductVerificationTx) Validate() error {
	if strings.TrimSpace(t.id) == "" {
		return ErrEmptyIdentifier
	}
	if t.timestamp.IsZero() {
		return ErrMissingTimestamp
	}
	return requireNonEmpty(map[string]string{
		"verifierId": t.VerifierID,
		"productId":  t.ProductID_,
	})
}

func (t *ProductVerificationTx) Canonical() []byte {
	return canonicalize(t.id, t.Type(), t.timestamp, t.Data())
}
