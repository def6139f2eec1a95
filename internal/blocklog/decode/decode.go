// Package decode turns block log JSON into model values.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
	"github.com/shopspring/decimal"
)

var (
	// ErrDecode marks a batch that could not be decoded. The whole batch is rejected.
	ErrDecode = errors.New("decode block log")
	// ErrMissingField is wrapped into ErrDecode for a required field that is absent or empty.
	ErrMissingField = errors.New("missing required field")
)

type rawBlock struct {
	Ticker             string           `json:"ticker"`
	BlockHash          string           `json:"block_hash"`
	ParentHash         string           `json:"parent_hash"`
	BlockHeight        string           `json:"block_height"`
	Time               string           `json:"time"`
	TransactionType    string           `json:"transaction_type"`
	TransactionObjects []rawTransaction `json:"transaction_objects"`
}

type rawTransaction struct {
	TxID    string              `json:"txid"`
	Value   decimal.NullDecimal `json:"value"`
	Details rawDetail           `json:"details"`
}

type rawDetail struct {
	BlockHash string  `json:"blockHash"`
	Nonce     string  `json:"nonce"`
	From      string  `json:"from"`
	To        *string `json:"to"`
}

// Decoder decodes a JSON array of block records.
type Decoder struct {
	// Strict enables hex validation of hashes and addresses and checks that
	// every transaction references its enclosing block.
	Strict bool
}

// Decode reads the whole batch from r, preserving array order.
// block_hash, parent_hash and every transaction's txid, value and details.from
// are required in both modes.
func (d *Decoder) Decode(r io.Reader) (model.Blockchain, error) {
	var raw []rawBlock
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	chain := make(model.Blockchain, 0, len(raw))
	for i, rb := range raw {
		b, err := d.block(rb)
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %w", ErrDecode, i, err)
		}
		chain = append(chain, b)
	}
	return chain, nil
}

func (d *Decoder) block(rb rawBlock) (model.Block, error) {
	if rb.BlockHash == "" {
		return model.Block{}, fmt.Errorf("block_hash: %w", ErrMissingField)
	}
	if rb.ParentHash == "" {
		return model.Block{}, fmt.Errorf("parent_hash: %w", ErrMissingField)
	}
	height, err := model.ParseHeight(rb.BlockHeight)
	if err != nil {
		return model.Block{}, fmt.Errorf("block_height: %w", err)
	}
	ts, err := model.ParseTime(rb.Time)
	if err != nil {
		return model.Block{}, fmt.Errorf("time: %w", err)
	}

	b := model.Block{
		Ticker:          rb.Ticker,
		Hash:            model.BlockHash(rb.BlockHash),
		ParentHash:      model.BlockHash(rb.ParentHash),
		Height:          height,
		Time:            ts,
		TransactionType: rb.TransactionType,
		Transactions:    make([]model.Transaction, 0, len(rb.TransactionObjects)),
	}
	for j, rt := range rb.TransactionObjects {
		if err := requireTransaction(rt); err != nil {
			return model.Block{}, fmt.Errorf("transaction %d: %w", j, err)
		}
		b.Transactions = append(b.Transactions, transaction(rt))
		if d.Strict {
			if err := checkTransaction(b.Hash, b.Transactions[j]); err != nil {
				return model.Block{}, fmt.Errorf("transaction %d: %w", j, err)
			}
		}
	}

	if d.Strict {
		if err := b.Hash.Validate(); err != nil {
			return model.Block{}, fmt.Errorf("block_hash: %w", err)
		}
		if err := b.ParentHash.Validate(); err != nil {
			return model.Block{}, fmt.Errorf("parent_hash: %w", err)
		}
	}
	return b, nil
}

func requireTransaction(rt rawTransaction) error {
	switch {
	case rt.TxID == "":
		return fmt.Errorf("txid: %w", ErrMissingField)
	case !rt.Value.Valid:
		return fmt.Errorf("value: %w", ErrMissingField)
	case rt.Details.From == "":
		return fmt.Errorf("details.from: %w", ErrMissingField)
	}
	return nil
}

func transaction(rt rawTransaction) model.Transaction {
	tx := model.Transaction{
		TxID:  rt.TxID,
		Value: rt.Value.Decimal,
		Details: model.TransactionDetail{
			BlockHash: model.BlockHash(rt.Details.BlockHash),
			Nonce:     rt.Details.Nonce,
			From:      model.Address(rt.Details.From),
		},
	}
	if rt.Details.To != nil {
		to := model.Address(*rt.Details.To)
		tx.Details.To = &to
	}
	return tx
}

func checkTransaction(blockHash model.BlockHash, tx model.Transaction) error {
	if tx.Details.BlockHash != blockHash {
		return fmt.Errorf("blockHash %s does not match block %s", tx.Details.BlockHash, blockHash)
	}
	if err := tx.Details.From.Validate(); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if tx.Details.To != nil {
		if err := tx.Details.To.Validate(); err != nil {
			return fmt.Errorf("to: %w", err)
		}
	}
	return nil
}
