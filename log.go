package dssp

import "fmt"

// logf writes one diagnostic line to s.logWriter. It is only ever called
// from behind an Options.Verbose check — see flow.FlowOptions.Verbose in the
// teacher codebase for the pattern this follows: plain Fprintf, no
// structured logger, because diagnostics here are a debugging aid with no
// semantic effect on the returned distances. Unlike the teacher, which
// always prints to os.Stdout, this writes to a configurable writer
// (WithLogWriter) so a caller whose stdout is a machine-readable result
// stream, such as cmd/dssp, can route diagnostics elsewhere.
func (s *state) logf(format string, args ...interface{}) {
	fmt.Fprintf(s.logWriter, format+"\n", args...)
}
