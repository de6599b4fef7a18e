package protocol

import "fmt"

const ResponseOK = "Ok"

// EncodeElapsed is the reply to a query for a recorded label. The duration
// goes on its own line.
func EncodeElapsed(label, duration string) string {
	return fmt.Sprintf("[You havent done %s for]\n %s", label, duration)
}

// EncodeNeverDid is the reply to a query for a label with no entry.
func EncodeNeverDid(label string) string {
	return fmt.Sprintf("You never did %s", label)
}
