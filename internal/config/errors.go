package config

import "errors"

var (
	// ErrMalformedSettings marks a persisted settings document that could not
	// be decoded. The underlying decode error stays on the chain. Load never
	// rewrites a document it failed to decode.
	ErrMalformedSettings = errors.New("malformed settings document")

	// ErrMalformedRemoteURL marks a BELABOX Cloud remote URL that carries no
	// ?key= parameter to extract the remote key from.
	ErrMalformedRemoteURL = errors.New("remote url missing ?key= parameter")
)
