package kat

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
	"github.com/izouxv/goEcc/curve"
)

// Result is the outcome of a failed vector.
type Result struct {
	Index  int
	Vector Vector
	Got    bool  // result of the validity check, meaningless if Err is set
	Err    error // set when the vector could not be evaluated
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("vector %d (%s): %v", r.Index, r.Vector.Curve, r.Err)
	}
	return fmt.Sprintf("vector %d (%s): valid=%t, expected %t", r.Index, r.Vector.Curve, r.Got, r.Vector.Valid)
}

// Report summarizes a run.
type Report struct {
	ID       string
	Digest   common.Hash
	Total    int
	Passed   int
	Failures []Result
}

// OK reports whether every vector in the run passed.
func (r *Report) OK() bool {
	return r.Total > 0 && r.Passed == r.Total
}

// Runner checks vectors against the curve catalog.
type Runner struct {
	log log.Logger
}

// NewRunner returns a runner logging to logger, or to the root logger if
// logger is nil.
func NewRunner(logger log.Logger) *Runner {
	if logger == nil {
		logger = log.Root()
	}
	return &Runner{log: logger}
}

// Check evaluates a single vector.
func Check(v Vector) (bool, error) {
	c := curve.CurveGet(v.Curve)
	if c == nil {
		return false, fmt.Errorf("%w: %s", ErrUnknownCurve, v.Curve)
	}
	if v.X == nil || v.Y == nil {
		return false, fmt.Errorf("%w: missing coordinate", ErrInvalidVector)
	}
	return curve.IsPointValid(c, curve.NewPoint(v.X, v.Y)), nil
}

// Run checks every vector. It stops early if ctx is cancelled, returning
// the partial report together with the context error.
func (r *Runner) Run(ctx context.Context, vectors []Vector) (*Report, error) {
	digest, err := Digest(vectors)
	if err != nil {
		return nil, err
	}
	report := &Report{ID: uuid.New().String(), Digest: digest}
	logger := r.log.With("run", report.ID)
	logger.Debug("Running known-answer vectors", "count", len(vectors), "digest", digest)

	for i, v := range vectors {
		if err := ctx.Err(); err != nil {
			logger.Warn("Run interrupted", "checked", report.Total, "err", err)
			return report, err
		}
		report.Total++

		got, err := Check(v)
		switch {
		case err != nil:
			logger.Warn("Vector not evaluated", "index", i, "curve", v.Curve, "err", err)
			report.Failures = append(report.Failures, Result{Index: i, Vector: v, Err: err})
		case got != v.Valid:
			logger.Warn("Vector failed", "index", i, "curve", v.Curve, "valid", got, "expected", v.Valid, "comment", v.Comment)
			report.Failures = append(report.Failures, Result{Index: i, Vector: v, Got: got})
		default:
			logger.Trace("Vector passed", "index", i, "curve", v.Curve, "valid", got)
			report.Passed++
		}
	}
	logger.Info("Known-answer run complete", "total", report.Total, "passed", report.Passed, "failed", len(report.Failures))
	return report, nil
}
