// Package ledger implements the append-only, tamper-evident transaction
// ledger: transaction variants, block construction and mining, and the
// in-memory chain that links them together.
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HashHex renders the SHA-256 digest of data as 64 lowercase hex characters.
func HashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CanonicalEncode builds the exact byte sequence hashed for a block:
// index, timestamp (RFC3339Nano), the canonical rendering of each
// transaction in order, previousHash, and nonce, concatenated with no
// separators. Producer and verifier must call this same function —
// any other encoding of the same fields is a protocol bug, not a
// stylistic choice.
func CanonicalEncode(index int64, timestampRFC3339Nano string, txs []Transaction, previousHash string, nonce int64) []byte {
	var buf []byte
	buf = append(buf, strconv.FormatInt(index, 10)...)
	buf = append(buf, timestampRFC3339Nano...)
	for _, tx := range txs {
		buf = append(buf, tx.Canonical()...)
	}
	buf = append(buf, previousHash...)
	buf = append(buf, strconv.FormatInt(nonce, 10)...)
	return buf
}
