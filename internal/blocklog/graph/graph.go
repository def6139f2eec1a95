package graph

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
)

// Graph is a batch with its parent/child edges derived once.
// Walks over a Graph behave exactly like Children and Chain over the same
// batch but cost O(children) per step instead of a full scan.
type Graph struct {
	blocks   model.Blockchain
	index    map[model.BlockHash]model.Block
	children map[model.BlockHash][]int
}

// NewGraph indexes chain. The batch should already be deduplicated.
func NewGraph(chain model.Blockchain) *Graph {
	g := &Graph{
		blocks:   chain,
		index:    IndexByHash(chain),
		children: make(map[model.BlockHash][]int, len(chain)),
	}
	for i, b := range chain {
		g.children[b.ParentHash] = append(g.children[b.ParentHash], i)
	}
	return g
}

// Len returns the number of blocks in the graph.
func (g *Graph) Len() int {
	return len(g.blocks)
}

// Blocks returns the underlying batch.
func (g *Graph) Blocks() model.Blockchain {
	return g.blocks
}

// Lookup returns the block with the given hash. A miss is not an error: parent
// hashes routinely point outside the batch.
func (g *Graph) Lookup(hash model.BlockHash) (model.Block, bool) {
	b, ok := g.index[hash]
	return b, ok
}

// Children returns the direct children of hash in batch order.
func (g *Graph) Children(hash model.BlockHash) []model.Block {
	idx := g.children[hash]
	if len(idx) == 0 {
		return nil
	}
	out := make([]model.Block, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.blocks[i])
	}
	return out
}

// Chain follows the first child in batch order from block down to a tip.
func (g *Graph) Chain(block model.Block) ([]model.Block, error) {
	return follow(block, func(parent model.Block) (model.Block, bool) {
		idx := g.children[parent.Hash]
		if len(idx) == 0 {
			return model.Block{}, false
		}
		return g.blocks[idx[0]], true
	})
}

// Roots returns blocks whose parent is not part of the batch.
func (g *Graph) Roots() []model.Block {
	var out []model.Block
	for _, b := range g.blocks {
		if _, ok := g.index[b.ParentHash]; !ok {
			out = append(out, b)
		}
	}
	return out
}

// Tips returns blocks without children.
func (g *Graph) Tips() []model.Block {
	var out []model.Block
	for _, b := range g.blocks {
		if len(g.children[b.Hash]) == 0 {
			out = append(out, b)
		}
	}
	return out
}

// Branches returns every path from block to a reachable tip, depth first with
// children visited in batch order. The first branch equals Chain(block).
func (g *Graph) Branches(block model.Block) ([][]model.Block, error) {
	var out [][]model.Block
	onPath := mapset.NewThreadUnsafeSet[model.BlockHash]()

	var walk func(path []model.Block) error
	walk = func(path []model.Block) error {
		cur := path[len(path)-1]
		if !onPath.Add(cur.Hash) {
			return fmt.Errorf("branch %s from %s: %w", cur.Hash, block.Hash, ErrCycle)
		}
		defer onPath.Remove(cur.Hash)

		idx := g.children[cur.Hash]
		if len(idx) == 0 {
			out = append(out, append([]model.Block(nil), path...))
			return nil
		}
		for _, i := range idx {
			if err := walk(append(path, g.blocks[i])); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk([]model.Block{block}); err != nil {
		return nil, err
	}
	return out, nil
}

// Longest returns the longest descendant path of block. Ties go to the branch
// found first in batch order.
func (g *Graph) Longest(block model.Block) ([]model.Block, error) {
	branches, err := g.Branches(block)
	if err != nil {
		return nil, err
	}
	var longest []model.Block
	for _, b := range branches {
		if len(b) > len(longest) {
			longest = b
		}
	}
	return longest, nil
}
