// Package executor funnels every storage access of the process through one
// mutex-guarded sqlx handle and retries calls that fail because the storage
// engine is busy.
package executor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/snake-arena/internal/logger"
)

// FetchMode selects how a statement's result is consumed.
type FetchMode int

const (
	// FetchNone executes the statement and returns its sql.Result.
	FetchNone FetchMode = iota
	// FetchOne scans a single row into dest.
	FetchOne
	// FetchAll scans every row into dest, which must point to a slice.
	FetchAll
)

// State is the lifecycle position of a single Execute call.
type State string

const (
	StatePending   State = "pending"
	StateExecuting State = "executing"
	StateRetrying  State = "retrying"
	StateCommitted State = "committed"
	StateFailed    State = "failed"
)

// Defaults for the retry budget.
const (
	DefaultAttempts = 5
	DefaultDelay    = 500 * time.Millisecond
)

var (
	// ErrRetriesExhausted wraps the last contention error once the retry budget is spent.
	ErrRetriesExhausted = errors.New("storage busy: retries exhausted")
	// ErrUnknownFetchMode is returned for a FetchMode outside the declared constants.
	ErrUnknownFetchMode = errors.New("unknown fetch mode")
)

// Executor runs one statement at a time across the whole process.
type Executor struct {
	mu           sync.Mutex
	db           *sqlx.DB
	attempts     int
	delay        time.Duration
	isContention func(error) bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithRetry overrides the attempt count and the fixed delay between attempts.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(e *Executor) {
		if attempts > 0 {
			e.attempts = attempts
		}
		if delay >= 0 {
			e.delay = delay
		}
	}
}

// WithContentionClassifier replaces IsContention as the retry predicate.
func WithContentionClassifier(fn func(error) bool) Option {
	return func(e *Executor) {
		e.isContention = fn
	}
}

// New creates an Executor over db.
func New(db *sqlx.DB, opts ...Option) *Executor {
	e := &Executor{
		db:           db,
		attempts:     DefaultAttempts,
		delay:        DefaultDelay,
		isContention: IsContention,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs query with args under the executor lock.
// Queries use '?' placeholders; they are rebound for the underlying driver.
// The returned sql.Result is only set for FetchNone.
func (e *Executor) Execute(ctx context.Context, mode FetchMode, dest any, query string, args ...any) (sql.Result, error) {
	query = e.db.Rebind(query)
	log := logger.Log.With("query", strings.Join(strings.Fields(query), " "))
	log.Debugw("storage call", "state", StatePending)

	e.mu.Lock()
	defer e.mu.Unlock()

	var lastErr error
	for attempt := 1; attempt <= e.attempts; attempt++ {
		log.Debugw("storage call", "state", StateExecuting, "attempt", attempt)

		res, err := e.run(ctx, mode, dest, query, args)
		if err == nil {
			log.Debugw("storage call", "state", StateCommitted, "attempt", attempt)
			return res, nil
		}
		if !e.isContention(err) {
			log.Debugw("storage call", "state", StateFailed, "attempt", attempt, "error", err)
			return nil, err
		}

		lastErr = err
		if attempt == e.attempts {
			break
		}

		log.Warnw("storage busy, retrying",
			"state", StateRetrying,
			"attempt", attempt,
			"max_attempts", e.attempts,
			"delay", e.delay,
			"error", err,
		)

		timer := time.NewTimer(e.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	log.Errorw("storage busy, giving up", "state", StateFailed, "attempts", e.attempts, "error", lastErr)
	return nil, fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr)
}

// Ping checks the storage connection. It waits for the lock like any other call.
func (e *Executor) Ping(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.db.PingContext(ctx)
}

func (e *Executor) run(ctx context.Context, mode FetchMode, dest any, query string, args []any) (sql.Result, error) {
	switch mode {
	case FetchNone:
		return e.db.ExecContext(ctx, query, args...)
	case FetchOne:
		return nil, e.db.GetContext(ctx, dest, query, args...)
	case FetchAll:
		// sqlx appends to the destination slice; a retried attempt must start empty.
		resetSlice(dest)
		return nil, e.db.SelectContext(ctx, dest, query, args...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFetchMode, mode)
	}
}

func resetSlice(dest any) {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	if elem := v.Elem(); elem.Kind() == reflect.Slice {
		elem.SetLen(0)
	}
}
