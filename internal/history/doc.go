// Package history persists a ledger of pipeline runs in SQLite.
//
// Each run gets one row updated as stages progress, so operators can audit
// past runs with `finetrain runs` after the process exits. The ledger is
// observability only: write failures never abort a pipeline.
package history
