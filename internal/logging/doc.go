// Package logger provides structured logging for timelock CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors from the
// ui package.
//
// # Verbosity Levels
//
// Logging behavior is controlled by three flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//   - --quiet: Suppresses everything except fatal errors
//
// Without flags, only warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()     // Shown with --verbose or --debug
//	Logger.Debugf()    // Shown only with --debug
//	Logger.Warnf()     // Shown unless --quiet
//	Logger.WarnfUser() // User-facing warnings, shown unless --quiet
//	Logger.Errorf()    // Always shown, even with --quiet
//
// # Output Routing
//
// Info and debug messages go to Out (default stdout); warnings and errors go
// to Err (default stderr). When the encrypted artifact is streamed to stdout
// the cmd layer points Out at stderr too, so stdout carries exactly the
// artifact bytes and nothing else. Fatal error text never goes to Out.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Quiet: quiet}
//	log.Infof("fetched chain info for %s", network)
//
// Commands create a logger in their PersistentPreRun and pass it through the
// workflow options.
package logger
