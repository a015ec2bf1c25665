package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Recorder receives observations about chain activity. internal/metrics
// implements it; tests and callers that don't care about metrics can
// pass nil (every call site nil-checks before use).
type Recorder interface {
	ObserveChainHeight(height int)
	ObserveMempoolSize(size int)
	ObserveMineDuration(d time.Duration)
}

// ChainReader is the read-only surface the verification and
// traceability services depend on (compliance and optimization work on
// transaction slices instead). Keeping it narrow lets those packages be
// tested against a fake chain.
type ChainReader interface {
	GetChain() []*Block
	GetLatestBlock() *Block
	GetTransactionHistory() []Transaction
	GetProductHistory(productID string) ([]Transaction, error)
	IsChainValid() bool
}

// Chain is the authoritative in-memory ledger: an ordered sequence of
// blocks plus a pending mempool, both guarded by a single read-write
// lock. Only AddTransaction and MinePendingTransactions mutate state;
// every other method is a pure, lock-protected observer.
type Chain struct {
	mu         sync.RWMutex
	blocks     []*Block
	mempool    []Transaction
	difficulty int

	log      *zap.SugaredLogger
	recorder Recorder
}

// NewChain constructs a chain with a genesis block appended. The
// genesis hash is computed once and not mined, so it need not carry
// the difficulty prefix. difficulty must be non-negative; log and
// recorder may be nil.
func NewChain(difficulty int, log *zap.SugaredLogger, recorder Recorder) (*Chain, error) {
	if difficulty < 0 {
		return nil, ErrInvalidDifficulty
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	genesis := &Block{
		Index:        0,
		Timestamp:    time.Now(),
		Transactions: []Transaction{},
		PreviousHash: GenesisPreviousHash,
	}
	genesis.Hash = genesis.computeHash()

	c := &Chain{
		blocks:     []*Block{genesis},
		mempool:    make([]Transaction, 0),
		difficulty: difficulty,
		log:        log,
		recorder:   recorder,
	}
	c.record()
	log.Infow("chain initialized", "difficulty", difficulty, "genesisHash", genesis.Hash)
	return c, nil
}

// record pushes current height/mempool size to the recorder, if any.
// Caller must hold at least a read lock.
func (c *Chain) record() {
	if c.recorder == nil {
		return
	}
	c.recorder.ObserveChainHeight(len(c.blocks))
	c.recorder.ObserveMempoolSize(len(c.mempool))
}

// AddTransaction appends tx to the mempool unconditionally. Validation
// is deferred to mining; two calls with equal identifiers both land in
// the mempool.
func (c *Chain) AddTransaction(tx Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mempool = append(c.mempool, tx)
	c.record()
	c.log.Debugw("transaction queued", "id", tx.ID(), "type", tx.Type())
}

// MinePendingTransactions snapshots the mempool into a new block, mines
// it at the configured difficulty, appends it to the chain, and clears
// the mempool — all under the same write lock, so no reader ever
// observes the block appended without the mempool cleared or vice
// versa. An empty mempool still produces a block with zero
// transactions.
func (c *Chain) MinePendingTransactions() *Block {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := make([]Transaction, len(c.mempool))
	copy(pending, c.mempool)

	latest := c.blocks[len(c.blocks)-1]
	block := NewBlock(int64(len(c.blocks)), pending, latest.Hash)

	start := time.Now()
	block.Mine(c.difficulty)
	elapsed := time.Since(start)

	c.blocks = append(c.blocks, block)
	c.mempool = c.mempool[:0]

	if c.recorder != nil {
		c.recorder.ObserveMineDuration(elapsed)
	}
	c.record()
	c.log.Infow("mined block", "height", block.Index, "hash", block.Hash, "txCount", len(pending), "elapsed", elapsed)
	return block
}

// GetChain returns a defensive copy of the chain: a new slice of
// shallow-copied *Block values, so mutating the returned blocks or
// slice never affects the chain's own state.
func (c *Chain) GetChain() []*Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyBlocksLocked()
}

func (c *Chain) copyBlocksLocked() []*Block {
	out := make([]*Block, len(c.blocks))
	for i, b := range c.blocks {
		cp := *b
		cp.Transactions = b.TransactionsCopy()
		out[i] = &cp
	}
	return out
}

// GetLatestBlock returns a copy of the highest-indexed block.
func (c *Chain) GetLatestBlock() *Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	latest := c.blocks[len(c.blocks)-1]
	cp := *latest
	cp.Transactions = latest.TransactionsCopy()
	return &cp
}

// GetTransactionHistory concatenates the transaction sequences of every
// non-genesis block in chain order.
func (c *Chain) GetTransactionHistory() []Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.transactionHistoryLocked()
}

func (c *Chain) transactionHistoryLocked() []Transaction {
	var out []Transaction
	for _, b := range c.blocks[1:] {
		out = append(out, b.TransactionsCopy()...)
	}
	return out
}

// GetProductHistory returns the chronological subsequence of
// transactions whose ProductID matches id; empty if the product has no
// recorded event. id must be non-empty after trimming.
func (c *Chain) GetProductHistory(id string) ([]Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.Wrap(ErrEmptyProductID, "GetProductHistory")
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Transaction
	for _, tx := range c.transactionHistoryLocked() {
		if tx.ProductID() == id {
			out = append(out, tx)
		}
	}
	return out, nil
}

// IsChainValid walks blocks [1..n], failing on hash-invariant breakage,
// previous-hash mismatch, or a missing difficulty prefix. The genesis
// block's hash invariant is checked but it is exempt from the
// difficulty requirement. A false return is a detection, not a repair.
func (c *Chain) IsChainValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.blocks[0].IsHashValid() {
		return false
	}
	for i := 1; i < len(c.blocks); i++ {
		curr, prev := c.blocks[i], c.blocks[i-1]
		if !curr.IsHashValid() {
			return false
		}
		if curr.PreviousHash != prev.Hash {
			return false
		}
		if !curr.hasDifficultyPrefix(c.difficulty) {
			return false
		}
	}
	return true
}

// Difficulty returns the chain's configured mining difficulty.
func (c *Chain) Difficulty() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.difficulty
}

var _ ChainReader = (*Chain)(nil)
