// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     script
// Description: Executes scripts against a registry
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package script

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
	exfclog "github.com/msto63/exfc/foundation/core/log"
	"github.com/msto63/exfc/internal/render"
	"github.com/msto63/exfc/pkg/core/logging"
	"github.com/msto63/exfc/pkg/exception"
)

// Result is the outcome of one executed step
type Result struct {
	Step    int
	Op      Op
	Index   int
	ID      int
	Outcome string
	Err     error
}

// Failed reports whether the outcome differed from the expectation
func (r Result) Failed() bool {
	return errors.Is(r.Err, ErrUnexpected)
}

// Runner executes scripts against one registry
type Runner struct {
	registry *exception.Registry
	renderer *render.Renderer
	logger   *exfclog.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(registry *exception.Registry, renderer *render.Renderer, logger *exfclog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{
		registry: registry,
		renderer: renderer,
		logger:   logger.WithName("script"),
	}
}

// Run executes the steps in order. A fatal error, including the one produced
// by a throw step, ends the run and is returned as is. An unexpected outcome
// ends the run unless the script continues on error; the returned error then
// joins all failures.
func (r *Runner) Run(ctx context.Context, s *Script) ([]Result, error) {
	logger := r.logger.WithField("script", s.Name)
	logger.Info("script started", exfclog.Int("steps", len(s.Steps)))

	results := make([]Result, 0, len(s.Steps))
	var failures []error

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := r.execute(s, i+1, step)
		if err != nil && exception.IsFatal(err) {
			logger.Debug("fatal step", logging.Fields("step", i+1, "op", step.Op))
			return results, err
		}
		res.Outcome = outcomeOf(err)

		want := step.Expect
		if want == "" {
			want = OutcomeOK
		}
		if res.Outcome != want {
			res.Err = exfcerror.Wrap(errors.Join(ErrUnexpected, orOK(err)),
				fmt.Sprintf("step %d (%s, line %d): expected %s, got %s", i+1, step.Op, step.Line, want, res.Outcome)).
				WithDetail("step", i+1)
		}
		results = append(results, res)

		if res.Err != nil {
			logger.Warn("step failed", logging.Fields("step", i+1, "op", step.Op), exfclog.Err(res.Err))
			if !s.ContinueOnError {
				return results, res.Err
			}
			failures = append(failures, res.Err)
			continue
		}
		logger.Debug("step done", logging.Fields("step", i+1, "op", step.Op, "outcome", res.Outcome))
	}

	logger.Info("script finished", logging.Fields("steps", len(results), "failures", len(failures)))
	return results, errors.Join(failures...)
}

func (r *Runner) execute(s *Script, n int, step Step) (Result, error) {
	res := Result{Step: n, Op: step.Op, Index: -1, ID: -1}
	var err error

	switch step.Op {
	case OpAdd:
		res.ID = *step.ID
		res.Index, err = r.registry.Add(step.Name, step.Description, *step.ID)
		if err == nil {
			r.renderer.Success("added %s (id %d) at slot %d", step.Name, res.ID, res.Index)
		}

	case OpAddNext:
		res.Index, res.ID, err = r.registry.AddNext(step.Name, step.Description)
		if err == nil {
			r.renderer.Success("added %s (id %d) at slot %d", step.Name, res.ID, res.Index)
		}

	case OpRemove:
		if step.ID != nil {
			res.Index, err = r.registry.RemoveByID(*step.ID)
		} else {
			res.Index, err = r.registry.RemoveByName(step.Name)
		}
		if err == nil {
			r.renderer.Success("removed slot %d", res.Index)
		}

	case OpFind:
		var rec exception.Record
		res.Index, rec, err = r.find(step)
		if err == nil {
			res.ID = rec.ID
			err = r.renderer.Record(res.Index, rec)
		}

	case OpCompact:
		res.Index, err = r.registry.Compact()
		if err == nil {
			r.renderer.Info("compacted, %d record(s)", res.Index)
		}

	case OpList:
		var records []exception.Record
		records, err = r.registry.GetAll()
		if err == nil {
			err = r.renderer.Records(s.Name, records)
		}

	case OpThrow:
		var rec exception.Record
		res.Index, rec, err = r.find(step)
		if err == nil {
			return res, r.throw(s, n, step, rec)
		}

	default:
		err = fmt.Errorf("unknown op %q", step.Op)
	}

	return res, err
}

func (r *Runner) find(step Step) (int, exception.Record, error) {
	var (
		index int
		err   error
	)
	switch {
	case step.ID != nil && step.Name != "":
		index, err = r.registry.FindByRecord(exception.Record{Name: step.Name, ID: *step.ID})
	case step.ID != nil:
		index, err = r.registry.FindByID(*step.ID)
	default:
		index, err = r.registry.FindByName(step.Name)
	}
	if err != nil {
		return -1, exception.Record{}, err
	}

	rec, err := r.registry.At(index)
	return index, rec, err
}

// throw builds the fatal signal for a throw step, located at the step
func (r *Runner) throw(s *Script, n int, step Step, rec exception.Record) error {
	file := "script"
	if s.Source != "" {
		file = filepath.Base(s.Source)
	}
	loc := exception.Location{
		File:     file,
		Line:     step.Line,
		Function: fmt.Sprintf("step %d", n),
	}
	return exception.NewFatal(rec, loc, step.Message)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, exception.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, exception.ErrDuplicate):
		return OutcomeDuplicate
	case errors.Is(err, exception.ErrFull):
		return OutcomeFull
	case errors.Is(err, exception.ErrRejected):
		return OutcomeRejected
	case errors.Is(err, exception.ErrInvalidArgument):
		return OutcomeInvalidArgument
	default:
		return err.Error()
	}
}

func orOK(err error) error {
	if err == nil {
		return errors.New("step succeeded")
	}
	return err
}
