package editor

import "time"

// DefaultTabWidth is the number of spaces inserted by CmdTab.
const DefaultTabWidth = 4

// LineSaver persists the document lines.
type LineSaver interface {
	SaveLines(lines []string) error
}

// Options configures an Editor.
type Options struct {
	// ShowLineNumbers draws a line-number gutter left of the text.
	ShowLineNumbers bool

	// DynamicTypes colors identifiers declared with "class Name" anywhere in
	// the document. It runs a background scanner over the document.
	DynamicTypes bool

	// ScanInterval is the user-type scan period. Zero uses the default.
	ScanInterval time.Duration

	// TabWidth is the number of spaces inserted by CmdTab. Zero uses
	// DefaultTabWidth.
	TabWidth int

	// Saver handles CmdSave. Nil makes saving fail with ErrNoSaver.
	Saver LineSaver

	// OnChange is called after a command changes the text or the cursor.
	OnChange func(ChangeEvent)
}

func (o Options) tabWidth() int {
	if o.TabWidth <= 0 {
		return DefaultTabWidth
	}
	return o.TabWidth
}
