// Package preflight provides readiness checks for the external binaries and
// filesystem paths a pipeline run depends on.
//
// These checks run in two contexts:
//   - The run command calls RunAll before allocating a run directory, so a
//     missing trainer binary fails in seconds rather than after captioning.
//   - The CLI "finetrain doctor" command renders the same checks for
//     operators diagnosing an installation.
package preflight
