package calculator

import (
	"pocketcalc/hal"
	"pocketcalc/sparkos/calc"
	logclient "pocketcalc/sparkos/client/logger"
	"pocketcalc/sparkos/kernel"
	"pocketcalc/sparkos/proto"
)

// Task owns the calculator display buffer and draws the calculator face.
type Task struct {
	disp   hal.Display
	ep     kernel.Capability
	logCap kernel.Capability

	buf calc.Buffer

	fb     hal.Framebuffer
	face   *face
	active bool

	inbuf []byte
}

func New(disp hal.Display, ep kernel.Capability, logCap kernel.Capability) *Task {
	return &Task{disp: disp, ep: ep, logCap: logCap, active: true}
}

// Display returns the current display buffer.
func (t *Task) Display() string { return t.buf.String() }

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}

	if t.disp != nil {
		t.fb = t.disp.Framebuffer()
	}
	if t.fb != nil {
		t.face = newFace(t.fb)
	}

	if err := logclient.LogRetry(ctx, t.logCap, "calculator: ready, display: "+t.buf.String()); err != nil {
		// Logger not reachable; keep running without it.
		t.logCap = kernel.Capability{}
	}
	t.render()

	for msg := range ch {
		switch proto.Kind(msg.Kind) {
		case proto.MsgAppShutdown:
			t.inbuf = nil
			return

		case proto.MsgAppControl:
			active, ok := proto.DecodeAppControlPayload(msg.Payload())
			if !ok {
				continue
			}
			t.setActive(active)

		case proto.MsgKeyInput:
			if t.handleInput(ctx, msg.Payload()) {
				t.render()
			}
		}
	}
}

func (t *Task) setActive(active bool) {
	if active == t.active {
		return
	}
	t.active = active
	t.render()
}

// handleInput applies every complete symbol in b, in order, and reports whether the
// display buffer changed.
func (t *Task) handleInput(ctx *kernel.Context, b []byte) bool {
	t.inbuf = append(t.inbuf, b...)
	buf := t.inbuf
	changed := false
	for len(buf) > 0 {
		n, sym, ok := nextSymbol(buf)
		if !ok {
			break
		}
		buf = buf[n:]
		if !t.buf.Apply(sym) {
			continue
		}
		changed = true
		if t.logCap.Valid() {
			_ = logclient.Logf(ctx, t.logCap, "display: %s", t.buf.String())
		}
	}
	t.inbuf = append(t.inbuf[:0], buf...)
	return changed
}

func (t *Task) render() {
	if !t.active || t.face == nil {
		return
	}
	t.face.draw(t.buf.String())
}
