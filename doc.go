// Package guilders implements the valuation engine behind the Guilders
// dashboard: currency conversion through a rate table, category and
// cash-flow aggregation of accounts and transactions, and merging of
// per-account balance histories into a single net-worth series.
//
// The engine is pure: every function is a stateless transform over
// already-fetched data, never performs I/O, and never fails. Missing
// collections yield empty results, unparseable amounts coerce to zero,
// and unknown currency codes behave as the base currency. Strictness
// lives at the boundary (JSONL decoding, the rates provider, the CLI),
// not in the engine.
package guilders
