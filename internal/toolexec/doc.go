// Package toolexec runs external stage binaries to completion and reports a
// structured result the orchestrator can act on.
//
// Stages are long-running (captioning and training can take hours), so the
// default executor inherits the operator's stdout/stderr instead of capturing
// them, and announces the exact command line before launch. Control flow is
// driven by the returned Result, never by parsing tool output.
package toolexec
