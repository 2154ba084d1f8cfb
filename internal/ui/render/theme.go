package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	HiddenFg    tcell.Color
	CursorBg    tcell.Color
	CursorFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	InactiveFg  tcell.Color
	StatusBg    tcell.Color
	StatusFg    tcell.Color
	VCSFg       tcell.Color
}

// Theme returns the color scheme for the given name. Unknown names fall back
// to the dark scheme.
func Theme(name string) ColorTheme {
	if name == "light" {
		return ColorTheme{
			Background:  tcell.ColorWhite,
			Foreground:  tcell.ColorBlack,
			HeaderBg:    tcell.Color252,
			HeaderFg:    tcell.ColorBlack,
			DirectoryFg: tcell.Color25,
			FileFg:      tcell.ColorBlack,
			HiddenFg:    tcell.Color245,
			CursorBg:    tcell.Color33,
			CursorFg:    tcell.ColorWhite,
			SelectionBg: tcell.Color153,
			SelectionFg: tcell.ColorBlack,
			InactiveFg:  tcell.Color245,
			StatusBg:    tcell.Color252,
			StatusFg:    tcell.ColorBlack,
			VCSFg:       tcell.Color130,
		}
	}
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.Color236,
		HeaderFg:    tcell.Color252,
		DirectoryFg: tcell.Color33,
		FileFg:      tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		CursorBg:    tcell.Color33,
		CursorFg:    tcell.ColorWhite,
		SelectionBg: tcell.Color24,
		SelectionFg: tcell.ColorWhite,
		InactiveFg:  tcell.Color245,
		StatusBg:    tcell.Color236,
		StatusFg:    tcell.Color252,
		VCSFg:       tcell.Color178,
	}
}
