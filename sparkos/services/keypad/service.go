package keypad

import (
	"pocketcalc/hal"
	"pocketcalc/sparkos/calc"
	"pocketcalc/sparkos/kernel"
	"pocketcalc/sparkos/proto"
)

// Service turns keyboard events into calculator symbols for one consumer.
type Service struct {
	in     hal.Input
	outCap kernel.Capability

	events  <-chan hal.KeyEvent
	pending []byte

	heldCode hal.KeyCode
	heldData []byte

	nextRepeatTick uint64
}

// New forwards symbols as MsgKeyInput messages to outCap.
func New(in hal.Input, outCap kernel.Capability) *Service {
	return &Service{in: in, outCap: outCap}
}

func (s *Service) Run(ctx *kernel.Context) {
	if ctx == nil || s.in == nil {
		return
	}
	kbd := s.in.Keyboard()
	if kbd == nil {
		return
	}
	s.events = kbd.Events()
	if s.events == nil {
		return
	}

	done := make(chan struct{})
	defer close(done)

	tickCh := make(chan uint64, 16)
	go func() {
		last := ctx.NowTick()
		for {
			select {
			case <-done:
				return
			default:
			}
			last = ctx.WaitTick(last)
			select {
			case tickCh <- last:
			default:
			}
		}
	}()

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			s.handleKeyEvent(ctx, ev)
		case tick := <-tickCh:
			s.handleRepeat(tick)
			s.flush(ctx)
		}
	}
}

func (s *Service) handleKeyEvent(ctx *kernel.Context, ev hal.KeyEvent) {
	if !ev.Press {
		if s.heldData != nil && ev.Code == s.heldCode {
			s.heldData = nil
			s.nextRepeatTick = 0
		}
		return
	}

	sym := symbolFromKey(ev)
	if sym == "" {
		return
	}
	s.pending = append(s.pending, proto.KeyInputPayload(sym)...)
	s.flush(ctx)

	if !repeatableKey(ev) {
		return
	}
	s.heldCode = ev.Code
	s.heldData = append(s.heldData[:0], sym...)
	s.nextRepeatTick = ctx.NowTick() + repeatDelayTicks
}

func (s *Service) handleRepeat(tick uint64) {
	if s.heldData == nil || tick < s.nextRepeatTick {
		return
	}
	s.pending = append(s.pending, s.heldData...)
	s.nextRepeatTick = tick + repeatRateTicks
}

func (s *Service) flush(ctx *kernel.Context) {
	if len(s.pending) == 0 {
		return
	}
	if !s.outCap.Valid() {
		s.pending = nil
		return
	}

	chunk, _ := proto.SplitKeyInput(s.pending, kernel.MaxMessageBytes)
	res := ctx.SendToCapResult(s.outCap, uint16(proto.MsgKeyInput), chunk, kernel.Capability{})
	switch res {
	case kernel.SendOK:
		s.pending = s.pending[len(chunk):]
	case kernel.SendErrQueueFull:
		// Retried on the next tick.
	default:
		s.pending = nil
	}
}

const (
	// Ticks are 1ms on host.
	repeatDelayTicks = 400
	repeatRateTicks  = 80
)

func repeatableKey(ev hal.KeyEvent) bool {
	switch ev.Code {
	case hal.KeyBackspace, hal.KeyDelete:
		return true
	default:
		return false
	}
}

func symbolFromKey(ev hal.KeyEvent) string {
	if ev.Rune != 0 {
		return string(ev.Rune)
	}

	switch ev.Code {
	case hal.KeyEnter:
		return calc.SymNewline
	case hal.KeyEscape:
		return calc.SymCancel
	case hal.KeyBackspace, hal.KeyDelete:
		return calc.SymDelete
	default:
		return ""
	}
}
