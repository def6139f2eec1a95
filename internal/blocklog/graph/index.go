package graph

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
)

// IndexByHash maps every block hash in chain to its block.
// The batch is expected to be deduplicated; otherwise the last occurrence of a hash wins.
func IndexByHash(chain model.Blockchain) map[model.BlockHash]model.Block {
	index := make(map[model.BlockHash]model.Block, len(chain))
	for _, b := range chain {
		index[b.Hash] = b
	}
	return index
}

// IndexByHashStrict is IndexByHash that fails on the first repeated hash.
func IndexByHashStrict(chain model.Blockchain) (map[model.BlockHash]model.Block, error) {
	index := make(map[model.BlockHash]model.Block, len(chain))
	for i, b := range chain {
		if _, ok := index[b.Hash]; ok {
			return nil, fmt.Errorf("index block %d: %w %s", i, ErrDuplicateHash, b.Hash)
		}
		index[b.Hash] = b
	}
	return index, nil
}
