package graph

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
)

// Children returns the blocks in chain whose parent is block, in batch order.
// An empty result means block is a chain tip.
func Children(block model.Block, chain model.Blockchain) []model.Block {
	var out []model.Block
	for _, b := range chain {
		if b.ParentHash == block.Hash {
			out = append(out, b)
		}
	}
	return out
}

// Chain follows the first child of every block, starting at block, until a tip.
// At a fork only the first child in batch order is followed; use Children to
// explore the other branches.
func Chain(block model.Block, chain model.Blockchain) ([]model.Block, error) {
	return follow(block, func(parent model.Block) (model.Block, bool) {
		for _, b := range chain {
			if b.ParentHash == parent.Hash {
				return b, true
			}
		}
		return model.Block{}, false
	})
}

func follow(start model.Block, firstChild func(model.Block) (model.Block, bool)) ([]model.Block, error) {
	visited := mapset.NewThreadUnsafeSet(start.Hash)
	out := []model.Block{start}
	for cur := start; ; {
		next, ok := firstChild(cur)
		if !ok {
			return out, nil
		}
		if !visited.Add(next.Hash) {
			return nil, fmt.Errorf("follow %s from %s: %w", next.Hash, start.Hash, ErrCycle)
		}
		out = append(out, next)
		cur = next
	}
}
