package loadgen

import (
	"context"
	"math"
	"math/rand"
	"time"

	exchangev1 "github.com/exchange-core/matching-engine/internal/domain/exchange/v1"
	orderv1 "github.com/exchange-core/matching-engine/internal/domain/order/v1"
	"github.com/exchange-core/matching-engine/pkg/errors"
	"github.com/exchange-core/matching-engine/pkg/logger"
	"github.com/oklog/ulid/v2"
)

// Generator drives an exchange with randomized submit/cancel traffic and
// measures the wall-clock latency of each call. It is an external caller of
// the engine: rejected cancels are expected under random traffic and are
// counted, not treated as failures.
type Generator struct {
	exchange exchangev1.Exchange
	logger   *logger.Logger
	opts     *Options

	rng     *rand.Rand
	entropy *ulid.MonotonicEntropy
	placed  []string
	stats   Stats
}

// Stats accumulates the outcome of a generator run.
type Stats struct {
	Operations      int
	Submits         int
	Cancels         int
	RejectedSubmits int
	RejectedCancels int
	Elapsed         time.Duration
}

// NsPerOp returns the average latency per operation in nanoseconds.
func (s Stats) NsPerOp() int64 {
	if s.Operations == 0 {
		return 0
	}
	return s.Elapsed.Nanoseconds() / int64(s.Operations)
}

// NewGenerator creates a generator that drives the given exchange.
func NewGenerator(exchange exchangev1.Exchange, log *logger.Logger, opts *Options) *Generator {
	if opts == nil {
		opts = DefaultOptions()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Generator{
		exchange: exchange,
		logger:   log,
		opts:     opts,
		rng:      rng,
		entropy:  ulid.Monotonic(rng, 0),
	}
}

// Run issues the configured number of operations sequentially, reporting
// progress at the configured interval. It stops early when ctx is cancelled.
func (g *Generator) Run(ctx context.Context) (Stats, error) {
	for i := 0; i < g.opts.Operations; i++ {
		if err := ctx.Err(); err != nil {
			return g.stats, errors.NewTracer("loadgen interrupted").Wrap(err)
		}

		g.step()

		// A non-positive interval disables progress reports.
		if g.opts.ReportInterval > 0 && i > 0 && i%g.opts.ReportInterval == 0 {
			g.report()
		}
	}
	g.report()
	return g.stats, nil
}

// step issues one operation. The submit probability decays exponentially with
// the number of placed orders, so a long run settles into a steady mix of
// submissions and cancellations.
func (g *Generator) step() {
	submitProbability := math.Exp(-float64(len(g.placed)) * math.Ln2 / g.opts.SubmitHalfLife)
	cancel := len(g.placed) > 0 && submitProbability < g.rng.Float64()

	if cancel {
		target := g.placed[g.rng.Intn(len(g.placed))]

		start := time.Now()
		err := g.exchange.Cancel(target)
		g.stats.Elapsed += time.Since(start)

		g.stats.Cancels++
		if err != nil {
			// Random targets hit executed and already-cancelled orders.
			g.stats.RejectedCancels++
		}
	} else {
		id := ulid.MustNew(ulid.Now(), g.entropy).String()
		side := orderv1.SideSell
		if g.rng.Intn(2) == 0 {
			side = orderv1.SideBuy
		}
		price := g.opts.PriceMin + g.rng.Int63n(g.opts.PriceMax-g.opts.PriceMin+1)
		size := g.opts.SizeMin + g.rng.Int63n(g.opts.SizeMax-g.opts.SizeMin+1)

		start := time.Now()
		err := g.exchange.Submit(id, side, price, size)
		g.stats.Elapsed += time.Since(start)

		g.stats.Submits++
		if err != nil {
			g.stats.RejectedSubmits++
			g.logger.Warn("submit rejected",
				logger.Field{Key: "orderID", Value: id},
				logger.Field{Key: "error", Value: err.Error()},
			)
		} else {
			g.placed = append(g.placed, id)
		}
	}
	g.stats.Operations++
}

func (g *Generator) report() {
	g.logger.Info("loadgen progress",
		logger.Field{Key: "operations", Value: g.stats.Operations},
		logger.Field{Key: "submits", Value: g.stats.Submits},
		logger.Field{Key: "cancels", Value: g.stats.Cancels},
		logger.Field{Key: "rejectedCancels", Value: g.stats.RejectedCancels},
		logger.Field{Key: "elapsedNs", Value: g.stats.Elapsed.Nanoseconds()},
		logger.Field{Key: "nsPerOp", Value: g.stats.NsPerOp()},
	)
}
