package daysince

import (
	"fmt"

	"github.com/0xRadioAc7iv/daysince/core"
	"github.com/0xRadioAc7iv/daysince/internal"
	"github.com/0xRadioAc7iv/daysince/internal/protocol"
)

type Tracker struct {
	store *core.Store
}

func Open(opts ...Option) (*Tracker, error) {
	cfg := internal.DefaultConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.ResolveFilePath(); err != nil {
		return nil, err
	}

	store, err := core.Open(*cfg)
	if err != nil {
		return nil, err
	}

	return &Tracker{store: store}, nil
}

// Did records that label was done now.
func (t *Tracker) Did(label string) error {
	_, err := t.store.Did(label)
	return err
}

// Since returns the milliseconds since label was last recorded. found is
// false if it never was.
func (t *Tracker) Since(label string) (elapsed uint64, found bool, err error) {
	return t.store.Since(label)
}

func (t *Tracker) Path() string {
	return t.store.Path()
}

// Execute runs cmd ("did" or "since") against label and returns the text
// shown to the user.
func (t *Tracker) Execute(cmd, label string) (string, error) {
	switch cmd {
	case protocol.CmdDid:
		return t.handleCommandDid(label)
	case protocol.CmdSince:
		return t.handleCommandSince(label)
	default:
		return "", fmt.Errorf("unknown command %q", cmd)
	}
}

func (t *Tracker) handleCommandDid(label string) (string, error) {
	if err := t.Did(label); err != nil {
		return "", err
	}
	return protocol.ResponseOK, nil
}

func (t *Tracker) handleCommandSince(label string) (string, error) {
	elapsed, found, err := t.Since(label)
	if err != nil {
		return "", err
	}

	if !found {
		return protocol.EncodeNeverDid(label), nil
	}

	return protocol.EncodeElapsed(label, core.FormatElapsed(elapsed)), nil
}
