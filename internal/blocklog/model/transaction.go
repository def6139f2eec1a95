package model

import "github.com/shopspring/decimal"

// Address is a hex encoded account address.
type Address string

// Transaction is a transaction embedded in a block record.
type Transaction struct {
	TxID    string
	Value   decimal.Decimal
	Details TransactionDetail
}

// TransactionDetail carries the node-reported transaction fields.
// To is nil for contract creation.
type TransactionDetail struct {
	BlockHash BlockHash
	Nonce     string
	From      Address
	To        *Address
}

// IsContractCreation reports whether the transaction has no recipient.
func (d TransactionDetail) IsContractCreation() bool {
	return d.To == nil
}
