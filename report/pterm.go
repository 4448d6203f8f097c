package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Color styles for terminal diagnostic output.
//
// Grounded on src/logging/display.go's ErrorStyleBG/WarnStyleBG/
// SuccessStyleBG convention: a colored background tag followed by
// colored-foreground message text.
var (
	errorTagStyle   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorTextStyle  = pterm.NewStyle(pterm.FgRed)
	warnTagStyle    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnTextStyle   = pterm.NewStyle(pterm.FgYellow)
	successTagStyle = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	successText     = pterm.NewStyle(pterm.FgLightGreen)
)

// TerminalWriter renders diagnostics to the terminal with pterm styling.
type TerminalWriter struct{}

// WriteDiagnostic implements Writer.
func (TerminalWriter) WriteDiagnostic(d *Diagnostic) {
	loc := ""
	if d.Path != "" {
		loc = fmt.Sprintf("%s:%d:%d: ", d.Path, d.Pos.StartLn+1, d.Pos.StartCol+1)
	}

	switch d.Severity {
	case SeverityError:
		errorTagStyle.Print(" error ")
		errorTextStyle.Println(" " + loc + d.Message)
	case SeverityWarning:
		warnTagStyle.Print(" warn ")
		warnTextStyle.Println(" " + loc + d.Message)
	}
}

// PrintPhaseSuccess prints a success line for a completed compilation
// phase, mirroring src/logging/display.go's phaseSpinner success printer.
func PrintPhaseSuccess(phase string) {
	successTagStyle.Print(" ok ")
	successText.Println(" " + phase)
}

// NewPhaseSpinner starts a pterm spinner labeled with the given phase name,
// used by cmd's `check` subcommand while resolution runs, the same way
// src/logging/display.go drives phaseSpinner through the compiler's stages.
func NewPhaseSpinner(phase string) *pterm.SpinnerPrinter {
	sp, _ := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		Start(phase)
	return sp
}
