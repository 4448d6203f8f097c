package report

import "sync"

// Enumeration of the different possible log levels.
//
// Grounded on bootstrap/report/reporter.go.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages (default).
)

// Reporter accumulates diagnostics produced while resolving calls. It is
// safe to call from multiple goroutines simultaneously, though the
// semantic core itself runs single-threaded per spec.md §5.
type Reporter struct {
	m        sync.Mutex
	logLevel int
	messages []*Diagnostic
	isErr    bool
}

// NewReporter creates a Reporter at the given log level.
func NewReporter(logLevel int) *Reporter {
	return &Reporter{logLevel: logLevel}
}

// Report records a diagnostic. Errors are always recorded regardless of log
// level so that AnyErrors is accurate even when output is suppressed;
// display filtering happens in Flush.
func (r *Reporter) Report(d *Diagnostic) {
	r.m.Lock()
	defer r.m.Unlock()

	if d.Severity == SeverityError {
		r.isErr = true
	}

	r.messages = append(r.messages, d)
}

// AnyErrors reports whether any error-severity diagnostic has been recorded.
func (r *Reporter) AnyErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()

	return r.isErr
}

// Messages returns the diagnostics recorded so far, in report order.
func (r *Reporter) Messages() []*Diagnostic {
	r.m.Lock()
	defer r.m.Unlock()

	out := make([]*Diagnostic, len(r.messages))
	copy(out, r.messages)
	return out
}

// Flush renders every recorded diagnostic honoring the reporter's log
// level, the same warn/error gating as bootstrap/report/api.go's
// ReportCompileWarning/ReportCompileError pair.
func (r *Reporter) Flush(w Writer) {
	r.m.Lock()
	defer r.m.Unlock()

	for _, d := range r.messages {
		switch d.Severity {
		case SeverityError:
			if r.logLevel > LogLevelSilent {
				w.WriteDiagnostic(d)
			}
		case SeverityWarning:
			if r.logLevel >= LogLevelWarn {
				w.WriteDiagnostic(d)
			}
		}
	}
}

// Writer renders a diagnostic to some sink -- a terminal, a buffer, an LSP
// client. See pterm.go for the colorized terminal implementation.
type Writer interface {
	WriteDiagnostic(d *Diagnostic)
}
