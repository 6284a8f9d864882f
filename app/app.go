package app

import (
	"pocketcalc/hal"
	"pocketcalc/internal/buildinfo"
	"pocketcalc/sparkos/kernel"
	"pocketcalc/sparkos/services/keypad"
	"pocketcalc/sparkos/services/logger"
	"pocketcalc/sparkos/tasks/calculator"
)

type system struct {
	k    *kernel.Kernel
	calc *calculator.Task
}

// New boots the calculator OS on h and returns the per-frame step hook.
func New(h hal.HAL) func() error {
	_ = newSystem(h)
	return func() error { return nil }
}

func newSystem(h hal.HAL) *system {
	installPanicHandler(h)
	if l := h.Logger(); l != nil {
		l.WriteLineString("pocketcalc: boot " + buildinfo.String())
	}

	k := kernel.New()

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))

	calc := calculator.New(h.Display(), calcEP.Restrict(kernel.RightRecv), logEP.Restrict(kernel.RightSend))
	k.AddTask(calc)
	k.AddTask(keypad.New(h.Input(), calcEP.Restrict(kernel.RightSend)))

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k, calc: calc}
}
