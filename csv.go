package payxgo

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVSource streams transaction records from `type, client, tx, amount`
// delimited input. Fields are whitespace-tolerant and a leading header row
// is skipped. Rows that cannot be parsed come back as ErrMalformedRecord so
// the caller can count them; they are never handed to a Ledger.
type CSVSource struct {
	r    *csv.Reader
	line int
}

var (
	_ Source = (*CSVSource)(nil)
)

func NewCSVSource(r io.Reader) *CSVSource {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// dispute-family rows may omit the amount column entirely
	cr.FieldsPerRecord = -1
	return &CSVSource{r: cr}
}

// Next returns the next record, io.EOF at end of input, or an
// ErrMalformedRecord for an unparseable row.
func (s *CSVSource) Next() (Transaction, error) {
	for {
		rec, err := s.r.Read()
		if err == io.EOF {
			return Transaction{}, io.EOF
		}
		s.line++
		if err != nil {
			return Transaction{}, ErrMalformedRecord{Line: s.line, Reason: err.Error()}
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if s.line == 1 && strings.EqualFold(rec[0], "type") {
			continue
		}
		return s.parse(rec)
	}
}

func (s *CSVSource) parse(rec []string) (Transaction, error) {
	if len(rec) < 3 {
		return Transaction{}, ErrMalformedRecord{Line: s.line, Reason: "too few fields"}
	}
	kind, ok := ParseTxKind(rec[0])
	if !ok {
		return Transaction{}, ErrMalformedRecord{
			Line:   s.line,
			Reason: fmt.Sprintf("unknown record type %q", rec[0]),
		}
	}
	client, err := strconv.ParseUint(rec[1], 10, 16)
	if err != nil {
		return Transaction{}, ErrMalformedRecord{
			Line:   s.line,
			Reason: fmt.Sprintf("invalid client id %q", rec[1]),
		}
	}
	txid, err := strconv.ParseUint(rec[2], 10, 32)
	if err != nil {
		return Transaction{}, ErrMalformedRecord{
			Line:   s.line,
			Reason: fmt.Sprintf("invalid tx id %q", rec[2]),
		}
	}

	tx := Transaction{
		Kind:     kind,
		ClientID: uint16(client),
		TxID:     uint32(txid),
	}
	if !tx.HasAmount() {
		// a stray amount on a dispute/resolve/chargeback row is ignored
		return tx, nil
	}
	if len(rec) < 4 || rec[3] == "" {
		return Transaction{}, ErrMalformedRecord{Line: s.line, Reason: "missing amount"}
	}
	amt, err := decimal.NewFromString(rec[3])
	if err != nil {
		return Transaction{}, ErrMalformedRecord{
			Line:   s.line,
			Reason: fmt.Sprintf("invalid amount %q", rec[3]),
		}
	}
	if amt.IsNegative() {
		return Transaction{}, ErrMalformedRecord{Line: s.line, Reason: "negative amount"}
	}
	tx.Amount = amt.Round(4)
	return tx, nil
}
