// Package selfcheck verifies at runtime that identity tokens behave as promised in the
// running binary: stable across relocation, unique among live tokens, distinct on clone,
// totally ordered and consistently hashed.
package selfcheck

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/krew-solutions/unique-id-go/uniqueid/idset"
)

type Report struct {
	RunID    uuid.UUID
	Tokens   int
	Checks   int
	Duration time.Duration
}

type Checker struct {
	cfg    Config
	logger hclog.Logger
}

func New(cfg Config, logger hclog.Logger) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Checker{cfg: cfg, logger: logger.Named("selfcheck")}, nil
}

// Run mints Workers*TokensPerWorker tokens, keeps all of them alive until it returns and
// checks every property on them. Violations are returned as a wrapped *multierror.Error
// of *Violation values; the Report is filled in either way.
func (c *Checker) Run(ctx context.Context) (Report, error) {
	runID := uuid.New()
	logger := c.logger.With("run_id", runID.String())
	start := time.Now()
	logger.Info("starting", "workers", c.cfg.Workers, "tokens_per_worker", c.cfg.TokensPerWorker)

	live := idset.New()
	rec := &recorder{logger: logger}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < c.cfg.Workers; w++ {
		g.Go(func() error {
			return c.work(gctx, w, live, rec)
		})
	}
	err := g.Wait()

	report := Report{RunID: runID, Tokens: live.Len()}
	if err != nil {
		report.Checks = rec.count()
		report.Duration = time.Since(start)
		logger.Warn("interrupted", "error", err)
		return report, errors.Wrap(err, "selfcheck: run interrupted")
	}

	checkSetOrder(live, rec)
	checkEndToEnd(c.cfg.GrowthPushes, rec)

	report.Checks = rec.count()
	report.Duration = time.Since(start)
	if verr := rec.err(); verr != nil {
		logger.Error("failed", "violations", len(verr.Errors), "checks", report.Checks)
		return report, errors.Wrapf(verr, "selfcheck: %d violation(s)", len(verr.Errors))
	}
	logger.Info("passed", "tokens", report.Tokens, "checks", report.Checks, "duration", report.Duration)
	return report, nil
}

func (c *Checker) work(ctx context.Context, worker int, live *idset.Set, rec *recorder) error {
	logger := rec.logger.With("worker", worker)
	logger.Debug("minting")

	ids := mint(c.cfg.TokensPerWorker)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		checkSelfEquality(id, rec)
		checkHash(id, rec)
		checkClone(id, rec)
		rec.check(PropertyUniqueness, live.Add(id), "worker %d: id %s was already issued to a live token", worker, id)
	}
	checkPairOrder(ids, rec)
	checkRelocation(ids[0], c.cfg.GrowthPushes, rec)

	logger.Debug("done", "tokens", len(ids))
	return nil
}

type recorder struct {
	logger hclog.Logger

	mu         sync.Mutex
	checks     int
	violations *multierror.Error
}

func (r *recorder) check(property Property, ok bool, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks++
	if ok {
		return
	}
	v := &Violation{Property: property, Detail: fmt.Sprintf(format, args...)}
	r.violations = multierror.Append(r.violations, v)
	r.logger.Warn("violation", "property", string(property), "detail", v.Detail)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checks
}

func (r *recorder) err() *multierror.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.violations == nil || len(r.violations.Errors) == 0 {
		return nil
	}
	return r.violations
}
