package utils

import (
	shellquote "github.com/kballard/go-shellquote"
)

// QuoteArgs renders args the way a shell would need them typed, so labels
// containing spaces or quotes stay readable in diagnostics.
func QuoteArgs(args ...string) string {
	return shellquote.Join(args...)
}
