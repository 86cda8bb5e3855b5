package editor

import "github.com/iw2rmb/quill/buffer"

// ChangeEvent describes the editor state after a command that moved the
// cursor or edited the document.
type ChangeEvent struct {
	Command  CommandKind
	Version  uint64
	Cursor   buffer.Pos
	Viewport Viewport

	// Edit is the last document change; HasEdit is false for pure movement.
	Edit    buffer.Change
	HasEdit bool
}

type changeState struct {
	version uint64
	abs     buffer.Pos
	view    Viewport
}

func (e *Editor) captureState() changeState {
	return changeState{
		version: e.doc.Version(),
		abs:     e.vc.Abs(),
		view:    e.vc.Viewport(),
	}
}

func (e *Editor) emitChange(kind CommandKind, before changeState) {
	if e.opts.OnChange == nil {
		return
	}
	after := e.captureState()
	if after == before {
		return
	}
	ev := ChangeEvent{
		Command:  kind,
		Version:  after.version,
		Cursor:   after.abs,
		Viewport: after.view,
	}
	if after.version != before.version {
		ev.Edit, ev.HasEdit = e.doc.LastChange()
	}
	e.opts.OnChange(ev)
}
