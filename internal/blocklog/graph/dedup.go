package graph

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
)

// Dedup keeps the first occurrence of every block hash, preserving batch order.
// Later blocks with an already seen hash are dropped even if their other fields differ.
func Dedup(chain model.Blockchain) model.Blockchain {
	seen := mapset.NewThreadUnsafeSetWithSize[model.BlockHash](len(chain))
	out := make(model.Blockchain, 0, len(chain))
	for _, b := range chain {
		if !seen.Add(b.Hash) {
			continue
		}
		out = append(out, b)
	}
	return out
}
