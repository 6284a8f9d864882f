package app

import (
	"strings"
	"sync"
	"testing"
	"time"

	"pocketcalc/hal"
	"pocketcalc/sparkos/kernel"
)

type testLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *testLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *testLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *testLogger) has(line string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if s == line {
			return true
		}
	}
	return false
}

type testHAL struct {
	log   *testLogger
	keys  chan hal.KeyEvent
	ticks chan uint64
}

func newTestHAL() *testHAL {
	return &testHAL{
		log:   &testLogger{},
		keys:  make(chan hal.KeyEvent, 32),
		ticks: make(chan uint64, 32),
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return nil }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Time() hal.Time       { return h }

func (h *testHAL) Keyboard() hal.Keyboard      { return h }
func (h *testHAL) Events() <-chan hal.KeyEvent { return h.keys }
func (h *testHAL) Ticks() <-chan uint64        { return h.ticks }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timed out")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSystem_KeyboardToDisplay(t *testing.T) {
	h := newTestHAL()
	sys := newSystem(h)

	for _, r := range "12×3" {
		h.keys <- hal.KeyEvent{Press: true, Rune: r}
	}
	h.keys <- hal.KeyEvent{Press: true, Code: hal.KeyEnter}
	h.keys <- hal.KeyEvent{Press: false, Code: hal.KeyEnter}

	waitFor(t, func() bool { return h.log.has("display: 36") })
	if got := sys.calc.Display(); got != "36" {
		t.Fatalf("display=%q, want 36", got)
	}
	if !h.log.has("calculator: ready, display: 0") {
		t.Fatal("missing ready line")
	}

	h.keys <- hal.KeyEvent{Press: true, Code: hal.KeyBackspace}
	h.keys <- hal.KeyEvent{Press: false, Code: hal.KeyBackspace}
	waitFor(t, func() bool { return h.log.has("display: 3") })

	h.keys <- hal.KeyEvent{Press: true, Code: hal.KeyEscape}
	waitFor(t, func() bool { return h.log.has("display: 0") })
}

func TestSystem_TicksReachKernel(t *testing.T) {
	h := newTestHAL()
	sys := newSystem(h)

	seen := make(chan uint64, 1)
	sys.k.AddTask(tickProbe(seen))
	h.ticks <- 5

	select {
	case got := <-seen:
		if got < 5 {
			t.Fatalf("tick=%d, want >= 5", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tick never reached the kernel")
	}
}

type tickProbe chan uint64

func (p tickProbe) Run(ctx *kernel.Context) { p <- ctx.WaitTick(0) }

func TestPanicLines(t *testing.T) {
	lines := panicLines(kernel.PanicInfo{TaskID: 3, Value: "boom", Stack: []byte("a\n\nb\n")})
	want := []string{"pocketcalc panic: task=3 panic=boom", "a", "b"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("lines=%q, want %q", lines, want)
	}

	lines = panicLines(kernel.PanicInfo{TaskID: 1, Value: 7})
	if lines[len(lines)-1] != "stack: unavailable" {
		t.Fatalf("lines=%q", lines)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int16
		head, tail string
	}{
		{s: "abcdef", n: 4, head: "abcd", tail: "ef"},
		{s: "ab", n: 4, head: "ab", tail: ""},
		{s: "×÷–←", n: 2, head: "×÷", tail: "–←"},
		{s: "abc", n: 0, head: "abc", tail: ""},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q,%d)=(%q,%q), want (%q,%q)", tt.s, tt.n, head, tail, tt.head, tt.tail)
		}
	}
}
