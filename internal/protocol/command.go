package protocol

const (
	CmdDid   = "did"
	CmdSince = "since"
)

// Command is a parsed invocation.
//
// "did <label>" becomes {Cmd: "did", Key: label}. Any other first argument
// is taken as the label to query and becomes {Cmd: "since", Key: arg}.
type Command struct {
	Cmd string // CmdDid or CmdSince
	Key string // Label being recorded or queried
}

// UsageError reports an invocation with missing arguments. NoArgs is set
// when nothing at all was passed.
type UsageError struct {
	Msg    string
	NoArgs bool
}

func (e *UsageError) Error() string {
	return e.Msg
}

// ParseCommand turns the program arguments (without the program name) into
// a Command. Arguments after the label are ignored.
func ParseCommand(args []string) (*Command, error) {
	if len(args) == 0 {
		return nil, &UsageError{Msg: "Provide an argument with the program", NoArgs: true}
	}

	if args[0] != CmdDid {
		return &Command{Cmd: CmdSince, Key: args[0]}, nil
	}

	if len(args) < 2 {
		return nil, &UsageError{Msg: "missing label: usage is 'did <label>'"}
	}

	return &Command{Cmd: CmdDid, Key: args[1]}, nil
}
