// Package batch prices lists of scenarios in parallel.
//
// Each scenario names an engine (Mellin series, PROJ barrier, PROJ European
// or closed-form Black–Scholes), a Lévy model and a contract. A Runner prices
// them on a bounded worker pool, keeps input order in its output, rounds
// prices to a fixed number of decimal places and optionally records every
// row. A failing scenario is reported on its own row and does not stop the
// others; only cancellation of the context aborts the batch.
package batch
