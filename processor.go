package payxgo

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Source yields parsed transaction records until io.EOF.
type Source interface {
	Next() (Transaction, error)
}

// Processor fans records out to workers partitioned by client id. Each
// worker exclusively owns one store shard and applies its queue
// sequentially, so two records of the same client are never in flight
// together and per-client arrival order is preserved. Workers=1 degenerates
// to fully sequential processing.
type Processor struct {
	workers int
	depth   int
	counter *Counter
	log     *zerolog.Logger
}

func NewProcessor(workers, depth int, log *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	if depth < 1 {
		depth = 1
	}
	return &Processor{
		workers: workers,
		depth:   depth,
		counter: &Counter{},
		log:     log,
	}
}

// Counts returns accept/reject totals for the run so far.
func (p *Processor) Counts() Counts {
	return p.counter.Counts()
}

// Run drives the source to exhaustion and returns the merged final account
// snapshot, ascending by client id. Malformed rows are counted and dropped;
// any other source error aborts the run.
func (p *Processor) Run(ctx context.Context, src Source) ([]Account, error) {
	stores := make([]*MemStore, p.workers)
	queues := make([]chan Transaction, p.workers)
	for i := range stores {
		stores[i] = NewMemStore()
		queues[i] = make(chan Transaction, p.depth)
	}

	grp, gctx := errgroup.WithContext(ctx)
	for i := 0; i < p.workers; i++ {
		i := i
		grp.Go(func() error {
			app := Chain(
				NewLedger(stores[i]),
				NewCountMiddleware(p.counter),
				NewLogMiddleware(p.log),
			)
			for tx := range queues[i] {
				// rejections are non-fatal; the middlewares record them
				_ = app.Apply(tx)
			}
			return nil
		})
	}

	var srcErr error
feed:
	for {
		tx, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var mr ErrMalformedRecord
			if errors.As(err, &mr) {
				p.counter.Malformed()
				p.log.Warn().Err(err).Msg("record dropped")
				continue
			}
			srcErr = err
			break
		}
		select {
		case queues[int(tx.ClientID)%p.workers] <- tx:
		case <-gctx.Done():
			srcErr = gctx.Err()
			break feed
		}
	}
	for _, q := range queues {
		close(q)
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if srcErr != nil {
		return nil, srcErr
	}

	var accts []Account
	for _, st := range stores {
		accts = append(accts, st.Snapshot()...)
	}
	sort.Slice(accts, func(i, j int) bool {
		return accts[i].ClientID < accts[j].ClientID
	})
	return accts, nil
}
