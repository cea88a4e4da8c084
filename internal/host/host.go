// Package host runs a machine in a terminal user interface.
package host

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

const (
	screenView    = "screen"
	registersView = "registers"
	statusView    = "status"

	screenWidth  = display.Width + 2
	screenHeight = display.Height/2 + 2
)

// Config defines the options the host runs a machine with.
type Config struct {
	Title              string
	InstructionsPerSec int
}

// updater schedules a function on the user interface main loop.
type updater interface {
	Update(f func(*gocui.Gui) error)
}

// Host drives a machine from a ticker and renders it using gocui.
// Key bindings run on the gocui main loop, stepping runs in its own
// goroutine, the mutex serializes their access to the machine.
type Host struct {
	mu      sync.Mutex
	machine *machine.Machine
	program []byte
	logger  *log.Logger
	cfg     Config

	fault error
}

// New returns a host for the machine. The program is used to reset the machine.
func New(logger *log.Logger, m *machine.Machine, program []byte, cfg Config) *Host {
	return &Host{
		machine: m,
		program: program,
		logger:  logger,
		cfg:     cfg,
	}
}

// Run shows the user interface and executes the machine until the user
// quits or the context is canceled.
func (h *Host) Run(ctx context.Context) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("creating terminal user interface: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(h.layout)
	if err := h.bindKeys(g); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		h.execute(ctx)
	}()
	go func() {
		defer wg.Done()
		h.refresh(ctx, done, g)
	}()

	err = g.MainLoop()
	close(done)
	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return fmt.Errorf("running terminal user interface: %w", err)
	}
	return nil
}

// Step executes a single instruction unless execution was halted by a fault.
func (h *Host) Step() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fault != nil {
		return
	}
	if err := h.machine.Step(); err != nil {
		h.fault = err
		h.logger.Error("Execution halted", log.Err(err))
	}
}

// Reset reloads the program and resumes execution after a fault.
func (h *Host) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.machine.Reset(h.program); err != nil {
		h.fault = err
		h.logger.Error("Resetting machine failed", log.Err(err))
		return
	}
	h.fault = nil
}

// PressKey latches a keypad key for the next step.
func (h *Host) PressKey(key byte) {
	h.mu.Lock()
	h.machine.SetKey(key)
	h.mu.Unlock()
}

// TogglePause pauses or resumes execution.
func (h *Host) TogglePause() {
	h.mu.Lock()
	h.machine.TogglePause()
	h.mu.Unlock()
}

// Status returns the single line status text.
func (h *Host) Status() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	state := "Running"
	switch {
	case h.fault != nil:
		state = "Halted: " + h.fault.Error()
	case h.machine.Paused():
		state = "Paused"
	}
	if h.machine.SoundTimer() > 0 {
		state += "  BEEP"
	}
	return fmt.Sprintf("%s | %s | %d ips | %s",
		h.cfg.Title, h.machine.Dialect(), h.cfg.InstructionsPerSec, state)
}

func (h *Host) execute(ctx context.Context) {
	ips := h.cfg.InstructionsPerSec
	if ips <= 0 {
		ips = 1
	}
	ticker := time.NewTicker(time.Second / time.Duration(ips))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Step()
		}
	}
}

// refresh redraws the views at the timer rate. The main loop is told to quit
// when the context is canceled while it is still running, done is closed
// once it returned.
func (h *Host) refresh(ctx context.Context, done <-chan struct{}, u updater) {
	ticker := time.NewTicker(timer.Period)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			select {
			case <-done:
			default:
				u.Update(quitLoop)
			}
			return
		case <-ticker.C:
			u.Update(h.draw)
		}
	}
}

func quitLoop(*gocui.Gui) error {
	return gocui.ErrQuit
}

func (h *Host) draw(g *gocui.Gui) error {
	h.mu.Lock()
	pixels := h.machine.FrameBuffer()
	snapshot := h.machine.Snapshot()
	h.mu.Unlock()

	v, err := g.View(screenView)
	if err != nil {
		return fmt.Errorf("getting screen view: %w", err)
	}
	v.Clear()
	fmt.Fprint(v, Render(pixels))

	v, err = g.View(registersView)
	if err != nil {
		return fmt.Errorf("getting registers view: %w", err)
	}
	v.Clear()
	if err := snapshot.Dump(v); err != nil {
		return fmt.Errorf("writing registers: %w", err)
	}

	v, err = g.View(statusView)
	if err != nil {
		return fmt.Errorf("getting status view: %w", err)
	}
	v.Clear()
	fmt.Fprint(v, h.Status())
	return nil
}

func (h *Host) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	width := max(maxX-1, screenWidth)

	if v, err := g.SetView(screenView, 0, 0, screenWidth-1, screenHeight-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return fmt.Errorf("creating screen view: %w", err)
		}
		v.Title = h.cfg.Title
	}

	if v, err := g.SetView(registersView, 0, screenHeight, width, screenHeight+3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return fmt.Errorf("creating registers view: %w", err)
		}
		v.Title = "Registers"
	}

	if v, err := g.SetView(statusView, 0, screenHeight+4, width, max(maxY-1, screenHeight+6)); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return fmt.Errorf("creating status view: %w", err)
		}
		v.Title = "Status"
		v.Wrap = true
	}
	return nil
}

func (h *Host) bindKeys(g *gocui.Gui) error {
	for _, ch := range keyboardRunes() {
		key, _ := KeyFor(ch)
		if err := g.SetKeybinding("", ch, gocui.ModNone, h.keyHandler(key)); err != nil {
			return fmt.Errorf("binding key '%c': %w", ch, err)
		}
	}

	bindings := []struct {
		key     gocui.Key
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, quit},
		{gocui.KeyEsc, quit},
		{gocui.KeySpace, h.pauseHandler},
		{gocui.KeyF5, h.resetHandler},
		{gocui.KeyBackspace, h.resetHandler},
		{gocui.KeyBackspace2, h.resetHandler},
	}
	for _, binding := range bindings {
		if err := g.SetKeybinding("", binding.key, gocui.ModNone, binding.handler); err != nil {
			return fmt.Errorf("binding key %d: %w", binding.key, err)
		}
	}
	return nil
}

func (h *Host) keyHandler(key byte) func(*gocui.Gui, *gocui.View) error {
	return func(*gocui.Gui, *gocui.View) error {
		h.PressKey(key)
		return nil
	}
}

func (h *Host) pauseHandler(*gocui.Gui, *gocui.View) error {
	h.TogglePause()
	return nil
}

func (h *Host) resetHandler(*gocui.Gui, *gocui.View) error {
	h.Reset()
	return nil
}

func quit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}
