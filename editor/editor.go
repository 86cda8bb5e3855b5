package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/log"
	"github.com/iw2rmb/quill/syntax"
)

// ErrNoSaver is reported by CmdSave when no LineSaver is configured.
var ErrNoSaver = errors.New("editor: no saver configured")

// DefaultSize is the text window size used until the first CmdResize.
var DefaultSize = buffer.Size{Width: 80, Height: 24}

// Editor applies commands to a document through a ViewportCursor and
// renders the visible window with syntax colors.
type Editor struct {
	opts Options

	doc        *buffer.Document
	vc         *ViewportCursor
	classifier *syntax.Classifier
	scanner    *syntax.Scanner

	savedVersion uint64
	lastErr      error
}

// New returns an editor over doc colored by table. A nil doc starts empty.
func New(doc *buffer.Document, table *syntax.ColorTable, opts Options) *Editor {
	if doc == nil {
		doc = buffer.New()
	}
	var copts []syntax.ClassifierOption
	if opts.DynamicTypes {
		copts = append(copts, syntax.WithUserTypes(syntax.NewUserTypes()))
	}
	e := &Editor{
		opts:         opts,
		doc:          doc,
		vc:           NewViewportCursor(doc, DefaultSize),
		classifier:   syntax.NewClassifier(table, copts...),
		savedVersion: doc.Version(),
	}
	if opts.DynamicTypes {
		e.scanner = syntax.NewScanner(doc, e.classifier, syntax.WithInterval(opts.ScanInterval))
	}
	return e
}

func (e *Editor) Document() *buffer.Document     { return e.doc }
func (e *Editor) Classifier() *syntax.Classifier { return e.classifier }
func (e *Editor) Options() Options               { return e.opts }

// Scanner returns the user-type scanner, or nil when DynamicTypes is off.
func (e *Editor) Scanner() *syntax.Scanner { return e.scanner }

// Cursor returns the window-local cursor.
func (e *Editor) Cursor() buffer.Pos { return e.vc.Cursor() }

// Abs returns the cursor in document coordinates.
func (e *Editor) Abs() buffer.Pos { return e.vc.Abs() }

func (e *Editor) Viewport() Viewport { return e.vc.Viewport() }

// LastError returns the error of the most recent save, or nil.
func (e *Editor) LastError() error { return e.lastErr }

// Modified reports whether the document changed since it was loaded or
// last saved.
func (e *Editor) Modified() bool { return e.doc.Version() != e.savedVersion }

// SetColorTable swaps the static color table.
func (e *Editor) SetColorTable(t *syntax.ColorTable) {
	e.classifier.SetColorTable(t)
	log.Info(log.CatSyntax, "color table replaced", "keys", t.Len())
}

// SetLines replaces the document. The cursor keeps its document position,
// clamped into the new text.
func (e *Editor) SetLines(lines []string) {
	e.doc.SetLines(lines)
	e.vc.Sync()
	e.savedVersion = e.doc.Version()
	log.Info(log.CatIO, "document loaded", "lines", e.doc.LineCount())
}

// Start runs the user-type scanner. It is a no-op when DynamicTypes is off.
func (e *Editor) Start(ctx context.Context) {
	if e.scanner != nil {
		e.scanner.Start(ctx)
	}
}

// Stop stops the user-type scanner and waits for it to exit.
func (e *Editor) Stop() {
	if e.scanner != nil {
		e.scanner.Stop()
	}
}

// Handle applies cmd and reports whether the host should keep running.
func (e *Editor) Handle(cmd Command) Result {
	before := e.captureState()

	ok := true
	switch cmd.Kind {
	case CmdUp:
		ok = e.vc.Up()
	case CmdDown:
		ok = e.vc.Down()
	case CmdLeft:
		ok = e.vc.Left()
	case CmdRight:
		ok = e.vc.Right()
	case CmdInsertChar:
		ok = e.vc.InsertCharCurPos(cmd.Char)
	case CmdBackspace:
		ok = e.vc.DeleteCharCurPos()
	case CmdNewLine:
		ok = e.vc.BreakLine()
	case CmdTab:
		ok = e.vc.Tab(e.opts.tabWidth())
	case CmdSave:
		ok = e.save()
	case CmdResize:
		e.vc.Resize(cmd.Size)
	case CmdQuit:
		log.Info(log.CatUI, "quit requested", "modified", e.Modified())
		return Exit
	default:
		return Continue
	}

	if !ok {
		log.Debug(log.CatView, "command had no effect", "cmd", cmd.Kind, "row", e.vc.Abs().Row, "col", e.vc.Abs().Col)
	}
	e.emitChange(cmd.Kind, before)
	return Continue
}

func (e *Editor) save() bool {
	if e.opts.Saver == nil {
		e.lastErr = ErrNoSaver
		log.Warn(log.CatIO, "save requested without a saver")
		return false
	}
	lines := e.doc.Lines()
	if err := e.opts.Saver.SaveLines(lines); err != nil {
		e.lastErr = fmt.Errorf("saving document: %w", err)
		log.ErrorErr(log.CatIO, "save failed", err, "lines", len(lines))
		return false
	}
	e.lastErr = nil
	e.savedVersion = e.doc.Version()
	log.Info(log.CatIO, "document saved", "lines", len(lines))
	return true
}
