package editor

import (
	"fmt"

	"github.com/iw2rmb/quill/buffer"
)

// CommandKind identifies an editor command.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdInsertChar
	CmdBackspace
	CmdNewLine
	CmdTab
	CmdSave
	CmdQuit
	CmdResize
)

var commandNames = [...]string{
	CmdNone:       "none",
	CmdUp:         "up",
	CmdDown:       "down",
	CmdLeft:       "left",
	CmdRight:      "right",
	CmdInsertChar: "insert",
	CmdBackspace:  "backspace",
	CmdNewLine:    "newline",
	CmdTab:        "tab",
	CmdSave:       "save",
	CmdQuit:       "quit",
	CmdResize:     "resize",
}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", k)
}

// Command is a decoded user action. Char is used by CmdInsertChar and Size
// by CmdResize.
type Command struct {
	Kind CommandKind
	Char byte
	Size buffer.Size
}

func Up() Command                { return Command{Kind: CmdUp} }
func Down() Command              { return Command{Kind: CmdDown} }
func Left() Command              { return Command{Kind: CmdLeft} }
func Right() Command             { return Command{Kind: CmdRight} }
func InsertChar(ch byte) Command { return Command{Kind: CmdInsertChar, Char: ch} }
func Backspace() Command         { return Command{Kind: CmdBackspace} }
func NewLine() Command           { return Command{Kind: CmdNewLine} }
func Tab() Command               { return Command{Kind: CmdTab} }
func Save() Command              { return Command{Kind: CmdSave} }
func Quit() Command              { return Command{Kind: CmdQuit} }
func Resize(width, height int) Command {
	return Command{Kind: CmdResize, Size: buffer.Size{Width: width, Height: height}}
}

// Result tells the host loop whether to keep running.
type Result uint8

const (
	Continue Result = iota
	Exit
)

func (r Result) String() string {
	if r == Exit {
		return "exit"
	}
	return "continue"
}
