// Package config owns the belabot settings lifecycle.
//
// It loads the persisted JSON document, lowercases the Twitch identity fields
// that must compare case-insensitively, inserts the chat command bindings the
// bot cannot run without, and writes the canonical form back atomically so
// the file on disk always matches the record handed to the rest of the bot.
// The interactive first-run wizard lives here too and feeds the same
// normalize, default, and persist pipeline.
//
// Always obtain settings through Load or a Wizard. Records built by hand skip
// normalization and may disagree with what later loads observe.
package config
