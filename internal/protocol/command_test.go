package protocol_test

import (
	"errors"
	"testing"

	"github.com/0xRadioAc7iv/daysince/internal/protocol"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		cmd  string
		key  string
	}{
		{"record action", []string{"did", "gym"}, protocol.CmdDid, "gym"},
		{"record with spaces", []string{"did", "walked the dog"}, protocol.CmdDid, "walked the dog"},
		{"extra arguments ignored", []string{"did", "gym", "again"}, protocol.CmdDid, "gym"},
		{"query", []string{"gym"}, protocol.CmdSince, "gym"},
		{"query ignores extra arguments", []string{"gym", "did"}, protocol.CmdSince, "gym"},
		{"flag-like label", []string{"--help"}, protocol.CmdSince, "--help"},
		{"case sensitive did", []string{"DID", "gym"}, protocol.CmdSince, "DID"},
		{"did as a label to record", []string{"did", "did"}, protocol.CmdDid, "did"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := protocol.ParseCommand(tt.args)
			if err != nil {
				t.Fatalf("ParseCommand failed: %v", err)
			}

			if cmd.Cmd != tt.cmd {
				t.Errorf("Cmd mismatch: got %q, want %q", cmd.Cmd, tt.cmd)
			}
			if cmd.Key != tt.key {
				t.Errorf("Key mismatch: got %q, want %q", cmd.Key, tt.key)
			}
		})
	}
}

func TestParseCommand_NoArguments(t *testing.T) {
	_, err := protocol.ParseCommand([]string{})

	var usageErr *protocol.UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if !usageErr.NoArgs {
		t.Fatal("expected NoArgs to be set")
	}
}

func TestParseCommand_DidWithoutLabel(t *testing.T) {
	_, err := protocol.ParseCommand([]string{"did"})

	var usageErr *protocol.UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if usageErr.NoArgs {
		t.Fatal("NoArgs must only be set when there are no arguments")
	}
}
