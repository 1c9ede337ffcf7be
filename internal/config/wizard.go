package config

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const (
	remoteKeyMarker = "?key="
	clearDisplay    = "\x1b[2J"
)

// Wizard collects a fresh settings record through a fixed sequence of
// line-oriented prompts: the BELABOX Cloud remote URL first, then the Twitch
// identity. It is strictly sequential and single-use; run it once, on one
// goroutine, against one input stream.
type Wizard struct {
	in          *bufio.Scanner
	out         io.Writer
	path        string
	clearScreen bool
}

// WizardOption adjusts wizard construction.
type WizardOption func(*Wizard)

// WithTargetPath overrides where the bootstrapped document is persisted.
func WithTargetPath(path string) WizardOption {
	return func(w *Wizard) { w.path = ResolvePath(path) }
}

// WithClearScreen controls whether the display is cleared once the document
// is saved. The CLI enables it only when stdout is a terminal, so transcripts
// stay intact under pipes and tests.
func WithClearScreen(enabled bool) WizardOption {
	return func(w *Wizard) { w.clearScreen = enabled }
}

// NewWizard builds a wizard that reads answers from in and writes prompts to
// out.
func NewWizard(in io.Reader, out io.Writer, opts ...WizardOption) *Wizard {
	w := &Wizard{
		in:   bufio.NewScanner(in),
		out:  out,
		path: SettingsFileName,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run walks the bootstrap sequence and persists the resulting record. The
// record is normalized before it is written, so the file on disk always
// equals the returned value. Monitoring starts enabled and the command
// catalogue is seeded with its default bindings.
func (w *Wizard) Run() (*Settings, error) {
	fmt.Fprintln(w.out, "Please paste your BELABOX Cloud remote URL below")
	remoteKey, err := w.promptRemoteKey()
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(w.out, "\nPlease enter your Twitch details below")
	botUsername, err := w.prompt("Bot username: ")
	if err != nil {
		return nil, err
	}
	botOauth, err := w.prompt("(You can generate an Oauth here: https://twitchapps.com/tmi/)\nBot oauth: ")
	if err != nil {
		return nil, err
	}
	channel, err := w.prompt("Channel name: ")
	if err != nil {
		return nil, err
	}

	settings := Settings{
		Belabox: Belabox{
			RemoteKey:           remoteKey,
			CustomInterfaceName: defaultInterfaceNames(),
			Monitor:             DefaultMonitor(),
		},
		Twitch: Twitch{
			BotUsername: botUsername,
			BotOauth:    botOauth,
			Channel:     channel,
			Admins:      []string{},
		},
	}
	settings.Normalize()
	settings.EnsureCommandDefaults()

	if err := settings.Save(w.path); err != nil {
		return nil, err
	}

	if w.clearScreen {
		fmt.Fprint(w.out, clearDisplay)
	}
	location, err := AbsolutePath(w.path)
	if err != nil {
		location = w.path
	}
	fmt.Fprintf(w.out, "Saved settings to %s in %s\n", filepath.Base(w.path), location)

	return &settings, nil
}

// promptRemoteKey keeps asking for the cloud URL until one carries the ?key=
// marker. Exhausted input after a malformed answer surfaces
// ErrMalformedRemoteURL so callers can tell a bad URL from an interrupted
// session.
func (w *Wizard) promptRemoteKey() (string, error) {
	var lastErr error
	for {
		answer, err := w.prompt("URL: ")
		if err != nil {
			if lastErr != nil {
				return "", lastErr
			}
			return "", err
		}
		key, extractErr := ExtractRemoteKey(answer)
		if extractErr == nil {
			return key, nil
		}
		lastErr = extractErr
		fmt.Fprintln(w.out, "No key found in that URL, please paste the full remote URL (it contains ?key=)")
	}
}

func (w *Wizard) prompt(message string) (string, error) {
	fmt.Fprint(w.out, message)
	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(w.in.Text()), nil
}

// ExtractRemoteKey pulls the remote key out of a pasted BELABOX Cloud URL:
// everything after the first ?key= marker, case preserved. URLs without the
// marker yield ErrMalformedRemoteURL.
func ExtractRemoteKey(rawURL string) (string, error) {
	_, key, found := strings.Cut(rawURL, remoteKeyMarker)
	if !found {
		return "", fmt.Errorf("%w: %q", ErrMalformedRemoteURL, rawURL)
	}
	return key, nil
}
