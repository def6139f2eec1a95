// Package graph reconstructs chain structure from a flat batch of block records.
//
// Edges are implicit: a block is the child of every block whose hash equals its
// parent hash. The package deduplicates batches, detects fork points (parent
// hashes claimed by more than one block), indexes blocks by hash and walks
// descendant chains.
//
// All functions treat their input as read-only and return new values, so a
// deduplicated batch can be shared between goroutines without locking.
//
// Walking assumes the batch forms a forest. Inconsistent input that links a
// block back to one of its own descendants is reported as ErrCycle.
package graph

import "errors"

var (
	// ErrCycle is returned when a walk revisits a block.
	ErrCycle = errors.New("cycle detected")
	// ErrDuplicateHash is returned by IndexByHashStrict for a repeated block hash.
	ErrDuplicateHash = errors.New("duplicate block hash")
)
