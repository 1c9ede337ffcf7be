// Package main hosts the belabot CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the settings lifecycle: the
// interactive setup wizard, inspection and validation of the persisted
// document, and the chat command catalogue. It centralizes settings
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
