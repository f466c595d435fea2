package typeaccessor

import (
	"context"
	"fmt"
	"time"

	"github.com/movekit/typeaccessor/codec"
	"github.com/movekit/typeaccessor/fetch"
	"github.com/movekit/typeaccessor/pkg/move"
	"github.com/movekit/typeaccessor/pkg/walker"
	"github.com/movekit/typeaccessor/source"
)

// Builder accumulates the inputs of one resolution run and is consumed by
// Build exactly once. Configuration methods return the receiver so calls
// chain:
//
//	accessor, err := typeaccessor.NewBuilder().
//		Source(src).
//		LookupModule(move.MustModuleID("0x1::coin")).
//		Build(ctx)
//
// A Builder is single-owner: it must not be driven by more than one
// goroutine.
type Builder struct {
	opts     buildOptions
	frontier idSet
	queue    *moduleQueue
	src      source.ModuleSource
	dec      codec.Decoder
	recurse  bool
	consumed bool
}

// NewBuilder creates a Builder with recursion enabled and no seeds.
func NewBuilder(opts ...Option) *Builder {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{
		opts:    o,
		queue:   newModuleQueue(),
		recurse: true,
	}
}

// LookupModules adds module identifiers to resolve. Duplicates collapse
// into the frontier. A module source must be attached before Build if any
// lookups are requested.
func (b *Builder) LookupModules(ids ...move.ModuleID) *Builder {
	for _, id := range ids {
		b.frontier.insert(id)
	}
	return b
}

// LookupModule adds one module identifier to resolve.
func (b *Builder) LookupModule(id move.ModuleID) *Builder {
	return b.LookupModules(id)
}

// AddModules seeds structured modules the caller already has. A seeded
// module is never fetched, even when other modules reference it.
func (b *Builder) AddModules(mods ...*move.Module) *Builder {
	for _, mod := range mods {
		b.queue.insert(mod.ID, mod)
	}
	return b
}

// AddModule seeds one structured module.
func (b *Builder) AddModule(mod *move.Module) *Builder {
	return b.AddModules(mod)
}

// Source attaches the module source used to fetch frontier entries.
func (b *Builder) Source(src source.ModuleSource) *Builder {
	b.src = src
	return b
}

// Decoder overrides the module decoder. The default is codec.JSON.
func (b *Builder) Decoder(dec codec.Decoder) *Builder {
	b.dec = dec
	return b
}

// NoRecurse disables transitive resolution: modules discovered while
// walking field types are not added to the frontier, so only the seeds are
// indexed.
func (b *Builder) NoRecurse() *Builder {
	b.recurse = false
	return b
}

// Build runs the resolution fixpoint and returns the finished index.
//
// The loop strictly prioritizes retrieval over walking: the frontier is
// drained in ascending identifier order first, then queued modules are
// walked smallest-first, with discoveries (when recursion is enabled)
// feeding the next retrieval round. Any fetch or decode failure, and any
// cancellation of ctx, aborts the whole build; no partial index is ever
// returned.
func (b *Builder) Build(ctx context.Context) (*TypeAccessor, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	if b.frontier.empty() && b.queue.empty() {
		return nil, ErrEmptyInput
	}
	if !b.frontier.empty() && b.src == nil {
		return nil, ErrMissingSource
	}
	if b.dec == nil {
		b.dec = codec.JSON{}
	}

	b.opts.metrics.recordBuildStart()
	log := b.opts.logger

	fieldInfo := make(map[move.ModuleID]map[string]map[string]move.Expr)
	indexed := make(map[move.ModuleID]bool)

	for {
		switch {
		case !b.frontier.empty():
			if err := b.retrieve(ctx, indexed); err != nil {
				return nil, err
			}

		case !b.queue.empty():
			for !b.queue.empty() {
				id, mod := b.queue.popFirst()

				res, err := walker.Walk(mod)
				if err != nil {
					return nil, err
				}

				structs := make(map[string]map[string]move.Expr, len(res.Structs))
				fields := 0
				for name, fieldTypes := range res.Structs {
					structs[name] = fieldTypes
					fields += len(fieldTypes)
				}
				fieldInfo[id] = structs
				indexed[id] = true
				b.opts.metrics.recordWalk(len(structs), fields)

				if !b.recurse {
					continue
				}
				for _, discovered := range res.Discovered {
					if indexed[discovered] || b.queue.has(discovered) {
						continue
					}
					b.frontier.insert(discovered)
				}
			}

		default:
			log.Debug().Int("modules", len(fieldInfo)).Msg("type index complete")
			b.opts.metrics.recordBuildSuccess()
			return newTypeAccessor(fieldInfo), nil
		}
	}
}

// retrieve drains the frontier into the known-module queue, fetching and
// decoding each pending identifier. Identifiers already queued or indexed
// are skipped without touching the source.
func (b *Builder) retrieve(ctx context.Context, indexed map[move.ModuleID]bool) error {
	if b.opts.fetchConcurrency > 1 {
		return b.retrieveParallel(ctx, indexed)
	}

	for !b.frontier.empty() {
		id := b.frontier.popFirst()
		if b.queue.has(id) || indexed[id] {
			continue
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("typeaccessor: build aborted: %w", err)
		}

		mod, err := b.fetchAndDecode(ctx, id)
		if err != nil {
			return err
		}
		b.queue.insert(id, mod)
	}
	return nil
}

// retrieveParallel drains the current frontier in one bounded-parallel
// batch. Results are decoded and inserted in ascending identifier order,
// so the queue ends up identical to a serial drain.
func (b *Builder) retrieveParallel(ctx context.Context, indexed map[move.ModuleID]bool) error {
	drained := b.frontier.drain()
	pending := drained[:0]
	for _, id := range drained {
		if b.queue.has(id) || indexed[id] {
			continue
		}
		pending = append(pending, id)
	}
	if len(pending) == 0 {
		return nil
	}
	if b.src == nil {
		return &FetchError{ID: pending[0], Err: ErrMissingSource}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("typeaccessor: build aborted: %w", err)
	}

	src := instrumentedSource{src: b.src, metrics: b.opts.metrics}
	results, err := fetch.Batch(ctx, src, pending, b.opts.fetchConcurrency)
	if err != nil {
		return err
	}

	for _, r := range results {
		mod, err := b.decode(r.ID, r.Data)
		if err != nil {
			return err
		}
		b.queue.insert(r.ID, mod)
	}
	return nil
}

// instrumentedSource records fetch metrics and attributes failures to the
// identifier they belong to, so a parallel batch surfaces the same errors
// a serial drain would.
type instrumentedSource struct {
	src     source.ModuleSource
	metrics *Metrics
}

func (s instrumentedSource) FetchModule(ctx context.Context, id move.ModuleID) ([]byte, error) {
	started := time.Now()
	data, err := s.src.FetchModule(ctx, id)
	s.metrics.recordFetch(time.Since(started), err)
	if err != nil {
		return nil, &FetchError{ID: id, Err: err}
	}
	return data, nil
}

// fetchAndDecode retrieves one module and decodes it, wrapping failures
// with the identifier they belong to.
func (b *Builder) fetchAndDecode(ctx context.Context, id move.ModuleID) (*move.Module, error) {
	if b.src == nil {
		// The frontier was empty at validation time; a module discovered
		// during the walk still needs a source.
		return nil, &FetchError{ID: id, Err: ErrMissingSource}
	}

	started := time.Now()
	data, err := b.src.FetchModule(ctx, id)
	b.opts.metrics.recordFetch(time.Since(started), err)
	if err != nil {
		return nil, &FetchError{ID: id, Err: err}
	}
	b.opts.logger.Debug().Stringer("module", id).Int("bytes", len(data)).Msg("module retrieved")

	return b.decode(id, data)
}

// decode turns raw bytes into a structured module, keyed by the identifier
// it was requested under.
func (b *Builder) decode(id move.ModuleID, data []byte) (*move.Module, error) {
	mod, err := b.dec.Decode(data)
	if err != nil {
		b.opts.metrics.recordDecodeError()
		return nil, &DecodeError{ID: id, Err: err}
	}
	if mod.ID != id {
		b.opts.logger.Warn().
			Stringer("requested", id).
			Stringer("declared", mod.ID).
			Msg("module declares a different identifier than requested")
	}
	return mod, nil
}
