package payxgo

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

type Middleware func(Applier) Applier

// Chain applies middlewares outermost-first around an Applier.
func Chain(app Applier, mws ...Middleware) Applier {
	for i := len(mws) - 1; i >= 0; i-- {
		app = mws[i](app)
	}
	return app
}

//
// Rejection logging middleware
//

// logMiddleware emits one warn line per rejected record. Rejections are an
// expected part of normal operation, never fatal, so they are reported to
// the log and the stream moves on.
type logMiddleware struct {
	next Applier
	log  *zerolog.Logger
}

var (
	_ Applier = (*logMiddleware)(nil)
)

func NewLogMiddleware(log *zerolog.Logger) Middleware {
	return func(next Applier) Applier {
		return &logMiddleware{
			next: next,
			log:  log,
		}
	}
}

func (l *logMiddleware) Apply(tx Transaction) error {
	err := l.next.Apply(tx)
	if err != nil {
		l.log.Warn().
			Err(err).
			Str("kind", tx.Kind.String()).
			Uint16("client", tx.ClientID).
			Uint32("tx", tx.TxID).
			Msg("record rejected")
	}
	return err
}

//
// Rejection counting middleware
//

// Counter accumulates accept/reject totals. One Counter is shared by every
// worker in a run, so all fields are atomics.
type Counter struct {
	accepted     atomic.Uint64
	duplicate    atomic.Uint64
	locked       atomic.Uint64
	insufficient atomic.Uint64
	unknown      atomic.Uint64
	invalid      atomic.Uint64
	malformed    atomic.Uint64
}

// Malformed records never reach Apply; the input loop reports them here.
func (c *Counter) Malformed() {
	c.malformed.Add(1)
}

func (c *Counter) observe(err error) {
	switch err.(type) {
	case nil:
		c.accepted.Add(1)
	case ErrDuplicateTransaction:
		c.duplicate.Add(1)
	case ErrAccountLocked:
		c.locked.Add(1)
	case ErrInsufficientFunds:
		c.insufficient.Add(1)
	case ErrUnknownTransaction:
		c.unknown.Add(1)
	case ErrInvalidState:
		c.invalid.Add(1)
	default:
		c.malformed.Add(1)
	}
}

// Counts is a point-in-time copy of a Counter.
type Counts struct {
	Accepted     uint64
	Duplicate    uint64
	Locked       uint64
	Insufficient uint64
	Unknown      uint64
	InvalidState uint64
	Malformed    uint64
}

func (c *Counter) Counts() Counts {
	return Counts{
		Accepted:     c.accepted.Load(),
		Duplicate:    c.duplicate.Load(),
		Locked:       c.locked.Load(),
		Insufficient: c.insufficient.Load(),
		Unknown:      c.unknown.Load(),
		InvalidState: c.invalid.Load(),
		Malformed:    c.malformed.Load(),
	}
}

func (c Counts) Rejected() uint64 {
	return c.Duplicate + c.Locked + c.Insufficient + c.Unknown + c.InvalidState + c.Malformed
}

type countMiddleware struct {
	next Applier
	ctr  *Counter
}

var (
	_ Applier = (*countMiddleware)(nil)
)

func NewCountMiddleware(ctr *Counter) Middleware {
	return func(next Applier) Applier {
		return &countMiddleware{
			next: next,
			ctr:  ctr,
		}
	}
}

func (m *countMiddleware) Apply(tx Transaction) error {
	err := m.next.Apply(tx)
	m.ctr.observe(err)
	return err
}
