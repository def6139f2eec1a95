package model

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrInvalidHash is returned for hashes that are not 0x-prefixed 32 byte hex strings.
	ErrInvalidHash = errors.New("invalid block hash")
	// ErrInvalidAddress is returned for malformed account addresses.
	ErrInvalidAddress = errors.New("invalid address")
)

// Validate checks that h is a 0x-prefixed 32 byte hex string.
func (h BlockHash) Validate() error {
	raw, err := hexutil.Decode(string(h))
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidHash, h, err)
	}
	if len(raw) != common.HashLength {
		return fmt.Errorf("%w %q: want %d bytes, got %d", ErrInvalidHash, h, common.HashLength, len(raw))
	}
	return nil
}

// Validate checks that a is a 0x-prefixed 20 byte hex address.
func (a Address) Validate() error {
	raw, err := hexutil.Decode(string(a))
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidAddress, a, err)
	}
	if len(raw) != common.AddressLength {
		return fmt.Errorf("%w %q: want %d bytes, got %d", ErrInvalidAddress, a, common.AddressLength, len(raw))
	}
	return nil
}
