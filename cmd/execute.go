// Package cmd wires the semantic core into a small command-line front
// end: a `check` subcommand that loads a project manifest into a module
// and reports resolution diagnostics for the module's declared packages
// (depm.Load itself declares none); and a `version` command.
package cmd

import (
	"fmt"
	"os"

	"onyx/config"
	"onyx/depm"
	"onyx/report"

	"github.com/ComedicChimera/olive"
)

// Version is the current toolchain version, reported by the `version`
// subcommand.
const Version = config.ToolchainVersion

// Execute is the main entry point for the `onyx` command-line utility.
//
// Grounded on src/cmd/execute.go's Execute: an olive.CLI with a build
// subcommand carrying a log-level selector arg and a primary path arg,
// plus a bare version subcommand.
func Execute() {
	cli := olive.NewCLI("onyx", "onyx checks Onyx projects for overload-resolution and dispatch errors", true)

	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the reporter log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "resolve every call in a project and report errors", true)
	checkCmd.AddPrimaryArg("project-path", "the path to the project directory", true)

	cli.AddSubcommand("version", "print the onyx version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		fmt.Println("onyx", Version)
	}
}

func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	logLevel := report.LogLevelVerbose
	switch loglevel {
	case "silent":
		logLevel = report.LogLevelSilent
	case "error":
		logLevel = report.LogLevelError
	case "warn":
		logLevel = report.LogLevelWarn
	}

	reporter := report.NewReporter(logLevel)

	projectPath, _ := result.PrimaryArg()

	sp := report.NewPhaseSpinner("loading project manifest")
	mod, err := depm.Load(projectPath)
	if err != nil {
		sp.Fail(err.Error())
		os.Exit(1)
	}
	sp.Success()

	sp = report.NewPhaseSpinner("resolving calls")
	CheckModule(mod, reporter)
	sp.Success()

	reporter.Flush(report.TerminalWriter{})

	if reporter.AnyErrors() {
		os.Exit(1)
	}

	report.PrintPhaseSuccess("no resolution errors")
}
