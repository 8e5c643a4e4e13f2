// Package dispatcher is the entry point from the CLI layer into the
// conversion core. It recognizes the input once, runs the interpreter table
// and decides between an ambiguous overview and a focused result.
package dispatcher

import (
	"time"

	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/interpreters"
	"github.com/arthur-debert/guess/pkg/logging"
	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

// Options configures a Dispatcher. Zero values fall back to the wall
// clock, the local zone and the default thresholds.
type Options struct {
	Settings interpreters.Settings
	Now      func() time.Time
	Location *time.Location
}

// Dispatcher converts raw input into a DispatchResult
type Dispatcher struct {
	settings interpreters.Settings
	now      func() time.Time
	location *time.Location
}

// New creates a Dispatcher
func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		settings: opts.Settings,
		now:      opts.Now,
		location: opts.Location,
	}
	if d.settings == (interpreters.Settings{}) {
		d.settings = interpreters.DefaultSettings()
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.location == nil {
		d.location = time.Local
	}
	return d
}

// Dispatch converts raw with the default dispatcher
func Dispatch(raw string, forced types.Domain) (types.DispatchResult, error) {
	return New(Options{}).Dispatch(raw, forced)
}

// Dispatch converts raw. A forced domain other than DomainNone restricts
// the conversion to that domain.
func (d *Dispatcher) Dispatch(raw string, forced types.Domain) (types.DispatchResult, error) {
	logger := logging.GetLogger("dispatcher")
	done := logging.LogOperationStart(logger, "dispatch")
	defer done()

	h := recognizer.Recognize(raw)
	implied := h.ImpliedDomain()
	logger.Debug().
		Str("input", raw).
		Str("normalized", h.Normalized).
		Str("forced", forced.String()).
		Str("implied", implied.String()).
		Msg("Dispatching input")

	if h.Empty() {
		return types.DispatchResult{}, errors.Unrecognized(raw)
	}

	env := interpreters.Env{Now: d.now(), Location: d.location}
	table := interpreters.Table(env, d.settings)

	target := implied
	if forced != types.DomainNone {
		target = forced
		h.Forced = true
	}
	if target != types.DomainNone {
		return d.dispatchFocused(raw, h, table, target)
	}

	var survivors []candidate
	for _, in := range table {
		if !in.CanInterpret(raw, h) {
			continue
		}
		results, err := in.Interpret(raw, h)
		if err != nil {
			return types.DispatchResult{}, interpreterFailed(err, in.Domain)
		}
		for _, r := range results {
			if reason, ok := plausible(r, h, d.settings); !ok {
				logger.Trace().
					Str("domain", r.Domain.String()).
					Str("source", r.Source).
					Str("reason", reason).
					Msg("Rejected implausible interpretation")
				continue
			}
			survivors = append(survivors, candidate{interpretation: r, prefer: in.Prefer})
		}
	}

	return assemble(raw, survivors)
}

func (d *Dispatcher) dispatchFocused(raw string, h recognizer.Hints, table []interpreters.Interpreter, target types.Domain) (types.DispatchResult, error) {
	logger := logging.GetLogger("dispatcher")

	in, ok := interpreters.Find(table, target)
	if !ok {
		return types.DispatchResult{}, errors.Newf(errors.ErrUnknownDomain, "no interpreter for domain %s", target)
	}
	if !in.CanInterpret(raw, h) {
		logger.Debug().Str("domain", target.String()).Msg("Target domain rejected input")
		return types.DispatchResult{}, errors.Unrecognized(raw).WithDetail("domain", target.String())
	}

	results, err := in.Interpret(raw, h)
	if err != nil {
		return types.DispatchResult{}, interpreterFailed(err, target)
	}
	candidates := make([]candidate, len(results))
	for i, r := range results {
		candidates[i] = candidate{interpretation: r, prefer: in.Prefer}
	}
	return assemble(raw, candidates)
}

// interpreterFailed passes coded interpreter errors through unchanged and
// marks anything else as internal.
func interpreterFailed(err error, d types.Domain) error {
	if errors.GetErrorCode(err) != errors.ErrUnknown {
		return err
	}
	return errors.Wrapf(err, errors.ErrInternal, "%s interpreter failed", d)
}
