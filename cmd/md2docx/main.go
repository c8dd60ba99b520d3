package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommand names, matched case-sensitively.
var commands = []string{"convert", "email", "preview", "config", "version", "help"}

func main() {
	verbose := slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose")

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// args[0] is the program name.
func runMain(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	name, rest := args[1], args[2:]
	var err error

	switch {
	case name == "convert":
		err = runConvertCmd(ctx, rest, env)
	case name == "email":
		err = runEmailCmd(rest, env)
	case name == "preview":
		err = runPreviewCmd(ctx, rest, env)
	case name == "config":
		err = runConfigCmd(rest, env)
	case name == "version":
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return ExitSuccess
	case name == "help" || name == "-h" || name == "--help":
		return runHelp(rest, env)
	case looksLikeMarkdown(name):
		// Shorthand: "md2docx notes.md" converts like "md2docx convert notes.md".
		err = runConvertCmd(ctx, args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether name is a subcommand.
func isCommand(name string) bool {
	return slices.Contains(commands, name)
}

// looksLikeMarkdown reports whether arg names a convertible source file
// rather than a subcommand.
func looksLikeMarkdown(arg string) bool {
	if isCommand(arg) || strings.HasPrefix(arg, "-") {
		return false
	}
	return fileutil.HasSourceSuffix(arg)
}
