// Package logging assembles the structured slog loggers used across belabot.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and standardizes the attribute keys that correlate log lines with
// components and setup sessions. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
