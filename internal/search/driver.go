// Package search implements the depth-first search driver: it explores
// the tree of databases the stepper produces until every branch is
// either pruned (inconsistent) or saturated (empty queue), collecting
// the saturated databases as models.
package search

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/robsimmons/aspis/internal/database"
	"github.com/robsimmons/aspis/internal/logging"
	"github.com/robsimmons/aspis/internal/rule"
	"github.com/robsimmons/aspis/internal/stepper"
)

// Options configures a Run: model cap, pause hook, cancellation, and
// timeout are all things the driver may impose on top of the core
// stepping rules, as explicit fields rather than caller-wraps-the-driver
// conventions.
type Options struct {
	// MaxModels stops the search as soon as this many saturated models
	// have been collected. 0 means unbounded.
	MaxModels int

	// PauseHook, if set, is called at the top of every loop iteration
	// with the database about to be stepped. It never mutates solver
	// state; returning false stops the search early, the same way
	// Cancel does, with whatever models have been collected so far.
	PauseHook func(database.Database) bool

	// Cancel, if non-nil, stops the search early (partial results
	// returned) the first time it is closed or receives a value.
	Cancel <-chan struct{}

	// Deadline, if non-zero, stops the search early once wall-clock time
	// passes it.
	Deadline time.Time

	// Trace enables debug logging via the "search" category logger: each
	// branching step, each pruned branch, and each saturated model's
	// stats, labelled by branch id. Individual work items are not logged.
	Trace bool
}

// Model pairs a saturated Database with the branch identifier the driver
// stamped on it the last time the tree forked on its way to saturation —
// purely a diagnostic label (branching order affects which model is
// found first, never the set of models), never consulted by matching or
// insertion logic.
type Model struct {
	DB     database.Database
	Branch uuid.UUID
}

// Result is what Run returns: the saturated models found, and whether
// the search stopped early (cancellation, deadline, pause hook,
// MaxModels, or a fatal stepper fault) rather than running the tree to
// exhaustion.
type Result struct {
	Models       []Model
	StoppedEarly bool
}

type frame struct {
	db     database.Database
	branch uuid.UUID
}

// Run explores program's tree of databases to saturation, starting from
// program.DB, and returns every saturated model found. The frontier is
// a plain Go slice used as a stack — DFS, first alternative explored
// first — since Database itself is already O(1) to copy.
func Run(program rule.Program, opts Options) Result {
	stack := []frame{{db: program.DB}}
	var result Result

	log := logging.Get(logging.CategorySearch)

	for len(stack) > 0 {
		if cancelled(opts) {
			result.StoppedEarly = true
			return result
		}

		top := stack[len(stack)-1]

		if opts.PauseHook != nil && !opts.PauseHook(top.db) {
			result.StoppedEarly = true
			return result
		}

		if top.db.QueueEmpty() {
			stack = stack[:len(stack)-1]
			result.Models = append(result.Models, Model{DB: top.db, Branch: top.branch})
			if opts.Trace {
				log.Debug("saturated model found", zapBranch(top.branch), zapStats(top.db))
			}
			if opts.MaxModels > 0 && len(result.Models) >= opts.MaxModels {
				result.StoppedEarly = len(stack) > 0
				return result
			}
			continue
		}

		successors, err := stepper.Step(program, top.db)
		if err != nil {
			// A fatal fault (compiler invariant violation, queue
			// under-flow): this is not a prunable outcome, it is a bug
			// upstream of the core. Stop the whole search and surface it.
			log.Error("fatal stepper fault", zapBranch(top.branch), zap.Error(err))
			result.StoppedEarly = true
			return result
		}

		stack = stack[:len(stack)-1]
		switch len(successors) {
		case 0:
			if opts.Trace {
				log.Debug("branch pruned", zapBranch(top.branch))
			}
			// prune: nothing pushed back
		case 1:
			stack = append(stack, frame{db: successors[0], branch: top.branch})
		default:
			// Push in reverse so the first alternative ends up on top of
			// the stack and is explored first: DFS, first alternative
			// explored first.
			if opts.Trace {
				log.Debug("branching", zapBranch(top.branch), zap.Int("successors", len(successors)))
			}
			for i := len(successors) - 1; i >= 0; i-- {
				stack = append(stack, frame{db: successors[i], branch: uuid.New()})
			}
		}
	}

	return result
}

func cancelled(opts Options) bool {
	if !opts.Deadline.IsZero() && time.Now().After(opts.Deadline) {
		return true
	}
	if opts.Cancel == nil {
		return false
	}
	select {
	case <-opts.Cancel:
		return true
	default:
		return false
	}
}
