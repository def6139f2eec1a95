// Package report renders block log analysis results as human readable text.
package report

import (
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const contractCreation = "<contract creation>"

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// BlockLine formats a block as "<grouped height> - <hash>", e.g. "10,939,864 - 0xf092...".
func BlockLine(b model.Block) string {
	return printer().Sprintf("%d - %s", uint64(b.Height), string(b.Hash))
}

// TransactionLine formats a transaction as "from: <from>, to: <to>, <value>".
func TransactionLine(tx model.Transaction) string {
	to := contractCreation
	if tx.Details.To != nil {
		to = string(*tx.Details.To)
	}
	return fmt.Sprintf("from: %s, to: %s, %s", tx.Details.From, to, tx.Value.String())
}

// WriteChainSummary writes the length and the first and last block of chain under name.
func WriteChainSummary(w io.Writer, name string, chain []model.Block) error {
	p := printer()
	if _, err := p.Fprintf(w, "%s\nLength:      %d\n", name, len(chain)); err != nil {
		return err
	}
	if len(chain) > 0 {
		if _, err := fmt.Fprintf(w, "First block: %s\nLast block:  %s\n", BlockLine(chain[0]), BlockLine(chain[len(chain)-1])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteReorgCount writes the number of fork points found in a batch.
func WriteReorgCount(w io.Writer, forks int) error {
	_, err := fmt.Fprintf(w, "Number of duplicate Parent references (reorgs): %d\n\n", forks)
	return err
}

// WriteTransactions writes one TransactionLine per transaction of b.
func WriteTransactions(w io.Writer, b model.Block) error {
	for _, tx := range b.Transactions {
		if _, err := fmt.Fprintln(w, TransactionLine(tx)); err != nil {
			return err
		}
	}
	return nil
}
