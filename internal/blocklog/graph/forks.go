package graph

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
)

// DuplicatedParents returns every parent hash claimed by two or more blocks.
// An empty set means no fork was observed. Duplicate blocks also count, so
// callers should Dedup first.
func DuplicatedParents(chain model.Blockchain) mapset.Set[model.BlockHash] {
	parents := make([]model.BlockHash, 0, len(chain))
	for _, b := range chain {
		parents = append(parents, b.ParentHash)
	}
	slices.Sort(parents)

	forks := mapset.NewThreadUnsafeSet[model.BlockHash]()
	for i := 1; i < len(parents); i++ {
		if parents[i] == parents[i-1] {
			forks.Add(parents[i])
		}
	}
	return forks
}

// SortedHashes returns the members of set in ascending order.
func SortedHashes(set mapset.Set[model.BlockHash]) []model.BlockHash {
	if set == nil {
		return nil
	}
	out := set.ToSlice()
	slices.Sort(out)
	return out
}
