package ledger

import (
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/nexuscore/provenance/internal/ledgerexport"
)

// GenesisPreviousHash is the sentinel previous-hash value used by the
// genesis block. It is the single character "0", not a 64-zero hash —
// spec.md §9(a) flags the source as inconsistent between a "0" sentinel
// and a 64-zero hash in different code paths; this module picks "0"
// everywhere and the chain's genesis-linkage check is exempt from
// comparing it against anything.
const GenesisPreviousHash = "0"

// Block is an ordered batch of transactions linked to its predecessor
// by hash. Fields are exported and individually settable on purpose:
// spec.md's tamper-detection tests rely on being able to mutate a
// single field and observe IsHashValid flip to false.
type Block struct {
	Index        int64
	Timestamp    time.Time
	Transactions []Transaction
	PreviousHash string
	Hash         string
	Nonce        int64
}

// NewBlock copies the transaction sequence, stamps the current time,
// zeroes the nonce, and computes the initial hash over those fields.
func NewBlock(index int64, transactions []Transaction, previousHash string) *Block {
	txs := make([]Transaction, len(transactions))
	copy(txs, transactions)

	b := &Block{
		Index:        index,
		Timestamp:    time.Now(),
		Transactions: txs,
		PreviousHash: previousHash,
		Nonce:        0,
	}
	b.Hash = b.computeHash()
	return b
}

// computeHash recomputes the hash from the block's current fields; it
// never reads or writes b.Hash itself.
func (b *Block) computeHash() string {
	data := CanonicalEncode(b.Index, b.Timestamp.Format(time.RFC3339Nano), b.Transactions, b.PreviousHash, b.Nonce)
	return HashHex(data)
}

// IsHashValid recomputes the hash from the current fields and reports
// whether it still matches the stored Hash. Mutating Index, Timestamp,
// PreviousHash, Transactions, or Nonce without recomputing Hash makes
// this return false — that is the mechanism by which tampering is
// detected.
func (b *Block) IsHashValid() bool {
	return b.Hash == b.computeHash()
}

// Mine increments Nonce and recomputes Hash until Hash has a prefix of
// difficulty '0' characters. Timestamp is not touched. Difficulty 0
// accepts the first computed hash; negative difficulty is a caller
// error the chain rejects before ever calling Mine.
func (b *Block) Mine(difficulty int) {
	prefix := strings.Repeat("0", difficulty)
	b.Hash = b.computeHash()
	for !strings.HasPrefix(b.Hash, prefix) {
		b.Nonce++
		b.Hash = b.computeHash()
	}
}

// hasDifficultyPrefix reports whether Hash begins with the required
// number of zero characters, without re-mining.
func (b *Block) hasDifficultyPrefix(difficulty int) bool {
	return strings.HasPrefix(b.Hash, strings.Repeat("0", difficulty))
}

// TransactionsCopy returns a defensive copy of the block's transaction
// slice; mutating the returned slice does not affect the block.
func (b *Block) TransactionsCopy() []Transaction {
	out := make([]Transaction, len(b.Transactions))
	copy(out, b.Transactions)
	return out
}

// ToExport projects the block into the persisted-layout DTO the
// storage collaborator consumes.
func (b *Block) ToExport() ledgerexport.BlockRecord {
	txs := make([]ledgerexport.TransactionRecord, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = transactionToExport(tx)
	}
	return ledgerexport.BlockRecord{
		Index:        b.Index,
		Timestamp:    timestamppb.New(b.Timestamp),
		PreviousHash: b.PreviousHash,
		Hash:         b.Hash,
		Nonce:        b.Nonce,
		Transactions: txs,
	}
}

func transactionToExport(tx Transaction) ledgerexport.TransactionRecord {
	data := tx.Data()
	dataCopy := make(map[string]string, len(data))
	for k, v := range data {
		dataCopy[k] = v
	}
	return ledgerexport.TransactionRecord{
		ID:        tx.ID(),
		Type:      tx.Type(),
		ProductID: tx.ProductID(),
		CreatedAt: timestamppb.New(tx.CreatedAt()),
		Data:      dataCopy,
	}
}
