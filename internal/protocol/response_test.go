package protocol_test

import (
	"testing"

	"github.com/0xRadioAc7iv/daysince/internal/protocol"
)

func TestEncodeElapsed(t *testing.T) {
	got := protocol.EncodeElapsed("gym", "1 days 01 hours 01 minutes 01 seconds")
	want := "[You havent done gym for]\n 1 days 01 hours 01 minutes 01 seconds"

	if got != want {
		t.Errorf("Response mismatch: got %q, want %q", got, want)
	}
}

func TestEncodeNeverDid(t *testing.T) {
	if got := protocol.EncodeNeverDid("gym"); got != "You never did gym" {
		t.Errorf("Response mismatch: got %q", got)
	}
}
