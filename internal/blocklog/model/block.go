// Package model defines domain models for block log analysis.
package model

import (
	"fmt"
	"strconv"
)

// BlockHash identifies a block. Hex encoded, compared only for equality and order.
type BlockHash string

// Height is a block number.
type Height uint64

// Time is a block timestamp in unix seconds.
type Time uint64

// ParseHeight parses a decimal block height.
func ParseHeight(s string) (Height, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse height %q: %w", s, err)
	}
	return Height(v), nil
}

// ParseTime parses a decimal unix timestamp.
func ParseTime(s string) (Time, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", s, err)
	}
	return Time(v), nil
}

// Block represents a single block record from a block log batch.
// Two blocks with the same Hash are the same block regardless of other fields.
type Block struct {
	Ticker          string
	Hash            BlockHash
	ParentHash      BlockHash
	Height          Height
	Time            Time
	TransactionType string
	Transactions    []Transaction
}

// Blockchain is one ingested batch of blocks in input order.
// It is not assumed to be ordered, linked, unique or acyclic.
type Blockchain []Block

// Hashes returns block hashes in batch order.
func (c Blockchain) Hashes() []BlockHash {
	out := make([]BlockHash, 0, len(c))
	for _, b := range c {
		out = append(out, b.Hash)
	}
	return out
}

// Ticker returns the first non-empty record ticker, or "" if no record has one.
func (c Blockchain) Ticker() string {
	for _, b := range c {
		if b.Ticker != "" {
			return b.Ticker
		}
	}
	return ""
}

// TransactionCount returns the number of transactions across all blocks.
func (c Blockchain) TransactionCount() int {
	n := 0
	for _, b := range c {
		n += len(b.Transactions)
	}
	return n
}
