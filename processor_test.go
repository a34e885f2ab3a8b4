package payxgo_test

import (
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/payxgo"
)

type stubNext struct {
	tx  payxgo.Transaction
	err error
}

// stubSource replays a fixed sequence of records and parse errors.
type stubSource struct {
	seq []stubNext
	i   int
}

func (s *stubSource) Next() (payxgo.Transaction, error) {
	if s.i >= len(s.seq) {
		return payxgo.Transaction{}, io.EOF
	}
	n := s.seq[s.i]
	s.i++
	return n.tx, n.err
}

func sourceOf(txs ...payxgo.Transaction) *stubSource {
	seq := make([]stubNext, len(txs))
	for i, tx := range txs {
		seq[i] = stubNext{tx: tx}
	}
	return &stubSource{seq: seq}
}

func renderRows(accts []payxgo.Account) []string {
	rows := make([]string, len(accts))
	for i, a := range accts {
		locked := "f"
		if a.Locked {
			locked = "t"
		}
		rows[i] = a.Available.StringFixed(4) + "/" + a.Held.StringFixed(4) + "/" + locked
	}
	return rows
}

func TestProcessorRun(t *testing.T) {
	t.Run("preserves per-client order under concurrent dispatch", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		log := zerolog.Nop()

		// alternating deposit/withdrawal pairs only balance out if each
		// client's records are applied strictly in arrival order
		var txs []payxgo.Transaction
		txid := uint32(1)
		for i := 0; i < 200; i++ {
			client := uint16(i%8 + 1)
			txs = append(txs, payxgo.Transaction{
				Kind:     payxgo.TxDeposit,
				ClientID: client,
				TxID:     txid,
				Amount:   decimal.RequireFromString("5"),
			})
			txid++
			txs = append(txs, payxgo.Transaction{
				Kind:     payxgo.TxWithdrawal,
				ClientID: client,
				TxID:     txid,
				Amount:   decimal.RequireFromString("5"),
			})
			txid++
		}

		proc := payxgo.NewProcessor(4, 16, &log)
		accts, err := proc.Run(context.Background(), sourceOf(txs...))
		reqrd.Nil(err)

		reqrd.Len(accts, 8)
		for _, a := range accts {
			as.Equal("0.0000", a.Available.StringFixed(4))
			as.Equal("0.0000", a.Held.StringFixed(4))
		}
		counts := proc.Counts()
		as.Equal(uint64(len(txs)), counts.Accepted)
		as.Equal(uint64(0), counts.Rejected())
	})

	t.Run("matches sequential processing on an interleaved stream", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		log := zerolog.Nop()

		rng := rand.New(rand.NewSource(42))
		var txs []payxgo.Transaction
		txid := uint32(1)
		for i := 0; i < 500; i++ {
			client := uint16(rng.Intn(10) + 1)
			switch r := rng.Float64(); {
			case r < 0.5:
				txs = append(txs, payxgo.Transaction{
					Kind:     payxgo.TxDeposit,
					ClientID: client,
					TxID:     txid,
					Amount:   decimal.New(int64(rng.Intn(100000)), -4),
				})
				txid++
			case r < 0.8:
				txs = append(txs, payxgo.Transaction{
					Kind:     payxgo.TxWithdrawal,
					ClientID: client,
					TxID:     txid,
					Amount:   decimal.New(int64(rng.Intn(50000)), -4),
				})
				txid++
			case r < 0.9 && txid > 1:
				txs = append(txs, payxgo.Transaction{
					Kind:     payxgo.TxDispute,
					ClientID: client,
					TxID:     uint32(rng.Intn(int(txid-1))) + 1,
				})
			default:
				kind := payxgo.TxResolve
				if rng.Intn(2) == 0 {
					kind = payxgo.TxChargeback
				}
				txs = append(txs, payxgo.Transaction{
					Kind:     kind,
					ClientID: client,
					TxID:     uint32(rng.Intn(int(txid))) + 1,
				})
			}
		}

		seq := payxgo.NewProcessor(1, 1, &log)
		want, err := seq.Run(context.Background(), sourceOf(txs...))
		reqrd.Nil(err)

		par := payxgo.NewProcessor(4, 32, &log)
		got, err := par.Run(context.Background(), sourceOf(txs...))
		reqrd.Nil(err)

		as.Equal(renderRows(want), renderRows(got))
	})

	t.Run("counts malformed rows and keeps going", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		log := zerolog.Nop()

		src := &stubSource{seq: []stubNext{
			{tx: payxgo.Transaction{
				Kind: payxgo.TxDeposit, ClientID: 1, TxID: 1,
				Amount: decimal.RequireFromString("3"),
			}},
			{err: payxgo.ErrMalformedRecord{Line: 3, Reason: "invalid amount"}},
			{tx: payxgo.Transaction{
				Kind: payxgo.TxDeposit, ClientID: 1, TxID: 2,
				Amount: decimal.RequireFromString("4"),
			}},
		}}

		proc := payxgo.NewProcessor(2, 4, &log)
		accts, err := proc.Run(context.Background(), src)
		reqrd.Nil(err)

		reqrd.Len(accts, 1)
		as.Equal("7.0000", accts[0].Available.StringFixed(4))
		counts := proc.Counts()
		as.Equal(uint64(2), counts.Accepted)
		as.Equal(uint64(1), counts.Malformed)
	})

	t.Run("returns the snapshot in ascending client order", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		log := zerolog.Nop()

		var txs []payxgo.Transaction
		for i, client := range []uint16{9, 2, 7, 4} {
			txs = append(txs, payxgo.Transaction{
				Kind:     payxgo.TxDeposit,
				ClientID: client,
				TxID:     uint32(i + 1),
				Amount:   decimal.RequireFromString("1"),
			})
		}

		proc := payxgo.NewProcessor(3, 4, &log)
		accts, err := proc.Run(context.Background(), sourceOf(txs...))
		reqrd.Nil(err)

		reqrd.Len(accts, 4)
		var got []uint16
		for _, a := range accts {
			got = append(got, a.ClientID)
		}
		as.Equal([]uint16{2, 4, 7, 9}, got)
	})
}
