package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to DOCX")
	fmt.Fprintln(w, "  email      Format markdown as email-safe plain text")
	fmt.Fprintln(w, "  preview    Render markdown as an HTML preview")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2docx help <command>' for details on a specific command.")
}

// printFormatFlags prints the strip and table flags shared by convert and email.
func printFormatFlags(w io.Writer) {
	fmt.Fprintln(w, "Formatting:")
	fmt.Fprintln(w, "      --strip-bold          Render bold spans as plain text")
	fmt.Fprintln(w, "      --strip-italic        Render italic spans as plain text")
	fmt.Fprintln(w, "      --strip-code          Render inline code as plain text")
	fmt.Fprintln(w, "      --strip-all           All three of the above")
	fmt.Fprintln(w, "      --tables-as-text      Capture pipe lines as tables")
}

// printOutputControl prints the common quiet/verbose flags.
func printOutputControl(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to DOCX.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File (.md, .markdown, .txt) or directory; \"-\" or none reads stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .docx file or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --html                Also write the HTML preview")
	fmt.Fprintln(w)
	printFormatFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --font <name>         Body font (default: Calibri)")
	fmt.Fprintln(w, "      --code-font <name>    Code font (default: Courier New)")
	fmt.Fprintln(w, "      --font-size <n>       Body size in points, 6-72 (default: 11)")
	fmt.Fprintln(w)
	printOutputControl(w)
}

// printEmailUsage prints usage for the email command.
func printEmailUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx email [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format markdown as plain text for an email body.")
	fmt.Fprintln(w, "Links and strikethrough are kept as written.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --copy                Copy to the clipboard instead of stdout")
	fmt.Fprintln(w)
	printFormatFlags(w)
	fmt.Fprintln(w)
	printOutputControl(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx preview [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown as a standalone HTML page with highlighted code.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: stdout)")
	fmt.Fprintln(w, "      --style <name>        Highlighting style (default: github)")
	fmt.Fprintln(w)
	printOutputControl(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2DOCX_CONFIG, MD2DOCX_INPUT_DIR, MD2DOCX_OUTPUT_DIR, MD2DOCX_FONT,")
	fmt.Fprintln(w, "  MD2DOCX_WORKERS, MD2DOCX_STRIP (bold,italic,code|all), MD2DOCX_TABLES_AS_TEXT")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "email":
		printEmailUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2docx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
