package probe

// Command is a user action routed to the session
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdRowGroupUp
	CmdRowGroupDown
	CmdColumnLeft
	CmdColumnRight
	CmdNextDocument
	CmdCopy
)

var commandNames = map[Command]string{
	CmdNone:         "none",
	CmdQuit:         "quit",
	CmdRowGroupUp:   "row-group-up",
	CmdRowGroupDown: "row-group-down",
	CmdColumnLeft:   "column-left",
	CmdColumnRight:  "column-right",
	CmdNextDocument: "next-document",
	CmdCopy:         "copy",
}

// String implements fmt.Stringer
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsNavigation reports whether the command changes a document selection
func (c Command) IsNavigation() bool {
	switch c {
	case CmdRowGroupUp, CmdRowGroupDown, CmdColumnLeft, CmdColumnRight:
		return true
	}
	return false
}
