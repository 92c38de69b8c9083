// Package trainer wraps the external training tool. The derived per-run
// configuration file is the tool's sole input; every training parameter is
// read from it.
package trainer
