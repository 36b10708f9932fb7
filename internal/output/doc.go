// Package output provides terminal and JSON output handling for the texgen CLI.
//
// Every command talks to the terminal through a Printer, which switches
// between human-readable output (lipgloss-styled when writing to a TTY)
// and structured JSON when the --json flag is set:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "project created", "dir": dir})
//	printer.Error(err)
//
// # Exit codes
//
// The package also defines the exit-code contract for the CLI:
//
//	output.ExitSuccess     // 0: project created / listing printed
//	output.ExitUserError   // 1: bad type code, invalid title, missing template
//	output.ExitSystemError // 2: I/O failure while reading or writing
//	output.ExitConflict    // 3: destination directory already exists
//
// Errors created with NewUserError, NewSystemError and NewConflictError
// carry their code through cobra back to main, where GetExitCode turns
// them into the process exit status.
package output
