package callback

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"launch_dashboard/internal/domain"
	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/domain/value"
	"launch_dashboard/pkg/contextx"
	"launch_dashboard/pkg/errcodes"
	"launch_dashboard/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type (
	ControlID string
	OutputID  string
)

// Snapshot is the state of every control at the moment a callback fires.
type Snapshot struct {
	Site    value.SiteSelection
	Payload value.PayloadRange
}

type HandleFunc func(ctx context.Context, snapshot Snapshot) (entity.Figure, error)

// Callback recomputes one output whenever any of its triggers changes.
type Callback struct {
	Output   OutputID
	Triggers []ControlID
	Handle   HandleFunc
}

type invocationObserver interface {
	ObserveCallback(output string, started time.Time, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveCallback(string, time.Time, error) {}

type Registry struct {
	mu        sync.RWMutex
	callbacks map[OutputID]Callback
	observer  invocationObserver
}

// NewRegistry creates an empty registry. A nil observer disables metrics.
func NewRegistry(observer invocationObserver) *Registry {
	if observer == nil {
		observer = nopObserver{}
	}

	return &Registry{
		callbacks: make(map[OutputID]Callback),
		observer:  observer,
	}
}

func (r *Registry) Register(cb Callback) error {
	switch {
	case cb.Output == "":
		return domain.NewError(errcodes.ValidationError, "callback output is empty")
	case len(cb.Triggers) == 0:
		return domain.NewError(errcodes.ValidationError, fmt.Sprintf("callback %s has no triggers", cb.Output))
	case cb.Handle == nil:
		return domain.NewError(errcodes.ValidationError, fmt.Sprintf("callback %s has no handler", cb.Output))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.callbacks[cb.Output]; ok {
		return domain.NewError(errcodes.DuplicateCallbackOutput, fmt.Sprintf("callback %s already registered", cb.Output))
	}

	cb.Triggers = slices.Clone(cb.Triggers)
	r.callbacks[cb.Output] = cb

	return nil
}

// Invoke runs the callback bound to output against snapshot.
func (r *Registry) Invoke(ctx context.Context, output OutputID, snapshot Snapshot) (entity.Figure, error) {
	r.mu.RLock()
	cb, ok := r.callbacks[output]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.NewError(errcodes.UnknownCallbackOutput, fmt.Sprintf("unknown callback output %q", output))
	}

	started := time.Now()
	figure, err := cb.Handle(ctx, snapshot)
	r.observer.ObserveCallback(string(output), started, err)

	if err != nil {
		return nil, fmt.Errorf("callback %s: %w", output, err)
	}

	logger(ctx).Debug(
		"callback invoked",
		slog.String(logx.FieldCallbackOutput, string(output)),
		logx.Stringer(logx.FieldSite, snapshot.Site),
		logx.Stringer(logx.FieldPayloadRange, snapshot.Payload),
		slog.Int64(logx.FieldDurationMs, time.Since(started).Milliseconds()),
	)

	return figure, nil
}

// Affected lists, in sorted order, the outputs that control triggers.
func (r *Registry) Affected(control ControlID) []OutputID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	outputs := make([]OutputID, 0)
	for output, cb := range r.callbacks {
		if slices.Contains(cb.Triggers, control) {
			outputs = append(outputs, output)
		}
	}

	slices.Sort(outputs)

	return outputs
}

// Callbacks returns every registration ordered by output.
func (r *Registry) Callbacks() []Callback {
	r.mu.RLock()
	defer r.mu.RUnlock()

	callbacks := slices.Collect(maps.Values(r.callbacks))
	slices.SortFunc(callbacks, func(a, b Callback) int {
		return cmp.Compare(a.Output, b.Output)
	})

	for i := range callbacks {
		callbacks[i].Triggers = slices.Clone(callbacks[i].Triggers)
	}

	return callbacks
}
