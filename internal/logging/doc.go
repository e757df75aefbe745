// Package logging builds the process logger: a log/slog Logger whose
// handler is charmbracelet/log, so every package can depend on the
// standard slog API while the terminal output stays styled.
package logging
