package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// inject queues ev; it reports false when the queue is full.
func (k *hostKeyboard) inject(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}

// typeRune queues a press/release pair. Control characters map to key codes.
func (k *hostKeyboard) typeRune(r rune) bool {
	ev := KeyEvent{Press: true, Rune: r}
	switch r {
	case '\r', '\n':
		ev = KeyEvent{Press: true, Code: KeyEnter}
	case 0x1b:
		ev = KeyEvent{Press: true, Code: KeyEscape}
	case '\b':
		ev = KeyEvent{Press: true, Code: KeyBackspace}
	case 0x7f:
		ev = KeyEvent{Press: true, Code: KeyDelete}
	}
	if !k.inject(ev) {
		return false
	}
	if ev.Code != KeyUnknown {
		ev.Press = false
		k.inject(ev)
	}
	return true
}
