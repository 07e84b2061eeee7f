package probe

import "github.com/gdamore/tcell/v2"

// Palette is a display theme with shades from light (C100) to dark (C950)
type Palette struct {
	Name string
	C100 tcell.Color
	C800 tcell.Color
	C900 tcell.Color
	C950 tcell.Color
}

// MaxDocuments is the number of files a session can show, one per palette
const MaxDocuments = 5

// palettes is assigned to documents by slot index
var palettes = [MaxDocuments]Palette{
	{Name: "orange", C100: tcell.NewHexColor(0xffedd5), C800: tcell.NewHexColor(0x9a3412), C900: tcell.NewHexColor(0x7c2d12), C950: tcell.NewHexColor(0x431407)},
	{Name: "pink", C100: tcell.NewHexColor(0xfce7f3), C800: tcell.NewHexColor(0x9d174d), C900: tcell.NewHexColor(0x831843), C950: tcell.NewHexColor(0x500724)},
	{Name: "purple", C100: tcell.NewHexColor(0xf3e8ff), C800: tcell.NewHexColor(0x6b21a8), C900: tcell.NewHexColor(0x581c87), C950: tcell.NewHexColor(0x3b0764)},
	{Name: "violet", C100: tcell.NewHexColor(0xede9fe), C800: tcell.NewHexColor(0x5b21b6), C900: tcell.NewHexColor(0x4c1d95), C950: tcell.NewHexColor(0x2e1065)},
	{Name: "sky", C100: tcell.NewHexColor(0xe0f2fe), C800: tcell.NewHexColor(0x075985), C900: tcell.NewHexColor(0x0c4a6e), C950: tcell.NewHexColor(0x082f49)},
}

// Label returns the letter shown for the document in slot i
func Label(i int) string {
	return string(rune('A' + i))
}
