package cmd

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/hangxie/parquet-probe/probe"
)

func Test_commandForKey(t *testing.T) {
	tests := []struct {
		name     string
		event    *tcell.EventKey
		expected probe.Command
	}{
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), probe.CmdQuit},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), probe.CmdQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), probe.CmdQuit},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), probe.CmdRowGroupUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), probe.CmdRowGroupDown},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), probe.CmdColumnLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), probe.CmdColumnRight},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), probe.CmdNextDocument},
		{"y copies", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), probe.CmdCopy},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), probe.CmdNone},
		{"other key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), probe.CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, commandForKey(tt.event))
		})
	}
}
