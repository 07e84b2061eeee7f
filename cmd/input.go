package cmd

import (
	"github.com/gdamore/tcell/v2"

	"github.com/hangxie/parquet-probe/probe"
)

// commandForKey maps a key press to a session command. tcell only delivers
// presses, so repeats and releases never get here.
func commandForKey(event *tcell.EventKey) probe.Command {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return probe.CmdQuit
	case tcell.KeyUp:
		return probe.CmdRowGroupUp
	case tcell.KeyDown:
		return probe.CmdRowGroupDown
	case tcell.KeyLeft:
		return probe.CmdColumnLeft
	case tcell.KeyRight:
		return probe.CmdColumnRight
	case tcell.KeyTab:
		return probe.CmdNextDocument
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			return probe.CmdQuit
		case 'y':
			return probe.CmdCopy
		}
	}
	return probe.CmdNone
}
