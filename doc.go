// Package typeaccessor builds a complete field-type index for on-chain
// Move modules.
//
// Given a set of module identifiers, it fetches each module's ABI,
// parses every struct field's type expression, and recursively resolves
// the modules those types reference until the index is closed: every
// struct type reachable from the requested modules has its field types
// recorded.
//
// # Quick Start
//
//	import (
//	    ta "github.com/movekit/typeaccessor"
//	    "github.com/movekit/typeaccessor/pkg/move"
//	    "github.com/movekit/typeaccessor/source"
//	)
//
//	src, err := source.NewREST(source.RESTConfig{Endpoint: endpoint})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	accessor, err := ta.NewBuilder().
//	    Source(src).
//	    LookupModule(move.MustModuleID("0x1::coin")).
//	    Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	typ, ok := accessor.Lookup(move.MustModuleID("0x1::coin"), "Coin", "value")
//
// # Design
//
// The build alternates two phases until a fixpoint: retrieval drains a
// deduplicated frontier of module identifiers in ascending order, then
// each retrieved module is walked and the struct types its fields
// reference seed the next retrieval round. The resulting index is
// immutable and safe for concurrent reads.
//
// Builds are all-or-nothing: any fetch or decode failure, or a canceled
// context, aborts the whole build rather than returning a partial index.
// The same inputs always produce the same index, regardless of fetch
// parallelism.
//
//   - Small interfaces: one-method ModuleSource and Decoder for
//     composability
//   - Functional options for ambient concerns (logging, metrics,
//     parallelism)
//   - LRU caching and request collapsing layered as a source decorator
//   - Context-based cancellation and timeout
package typeaccessor
