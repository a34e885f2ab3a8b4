package main

import (
	"encoding/csv"
	"flag"
	"math/rand"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type txRef struct {
	client uint16
	tx     uint32
}

// gentx writes a synthetic transactions CSV for exercising the engine:
// mostly deposits and withdrawals, occasional dispute chains, and an
// optional fraction of malformed rows to feed the rejection counters.
func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	clients := flag.Int("clients", 10, "number of distinct clients")
	records := flag.Int("records", 1000, "number of records to generate")
	malformed := flag.Float64("malformed", 0, "fraction of malformed rows")
	out := flag.String("out", "transactions.csv", "output file")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating output file")
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(*seed))
	w := csv.NewWriter(f)
	w.Write([]string{"type", "client", "tx", "amount"})

	nextTx := uint32(1)
	var clean []txRef
	var disputed []txRef

	for i := 0; i < *records; i++ {
		if rng.Float64() < *malformed {
			w.Write([]string{"deposit", "nope", strconv.FormatUint(uint64(nextTx), 10), "x"})
			nextTx++
			continue
		}
		client := uint16(rng.Intn(*clients) + 1)
		cs := strconv.FormatUint(uint64(client), 10)
		switch r := rng.Float64(); {
		case r < 0.6:
			amt := decimal.NewFromFloat(rng.Float64() * 1000).Round(4)
			w.Write([]string{"deposit", cs, strconv.FormatUint(uint64(nextTx), 10), amt.String()})
			clean = append(clean, txRef{client: client, tx: nextTx})
			nextTx++
		case r < 0.85:
			amt := decimal.NewFromFloat(rng.Float64() * 200).Round(4)
			w.Write([]string{"withdrawal", cs, strconv.FormatUint(uint64(nextTx), 10), amt.String()})
			nextTx++
		case r < 0.95 && len(clean) > 0:
			pick := clean[rng.Intn(len(clean))]
			w.Write([]string{
				"dispute",
				strconv.FormatUint(uint64(pick.client), 10),
				strconv.FormatUint(uint64(pick.tx), 10),
				"",
			})
			disputed = append(disputed, pick)
		case len(disputed) > 0:
			pick := disputed[rng.Intn(len(disputed))]
			kind := "resolve"
			if rng.Float64() < 0.3 {
				kind = "chargeback"
			}
			w.Write([]string{
				kind,
				strconv.FormatUint(uint64(pick.client), 10),
				strconv.FormatUint(uint64(pick.tx), 10),
				"",
			})
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		logger.Fatal().Err(err).Msg("error writing records")
	}
	logger.Info().Int("records", *records).Str("file", *out).Msg("workload generated")
}
