// Package terminal hosts a simulation session in a character terminal.
// Each tile is drawn as a block of characters, and key presses are turned
// into held keys with a release window since terminals report no key-up.
package terminal

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/dungeon/internal/entity/tick"
	"chosenoffset.com/dungeon/internal/game"
	"chosenoffset.com/dungeon/internal/input"
	"chosenoffset.com/dungeon/internal/logger"
	"chosenoffset.com/dungeon/internal/ui/hud"
)

// CharsPerTile is the width and height of one tile in characters
const CharsPerTile = 2

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	pillarStyle = tcell.StyleDefault.Foreground(tcell.Color(240))
	torchStyle  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	doorStyle   = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	swordStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	spikeStyle  = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	guardStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	fallenStyle = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Host drives a session from a tcell screen
type Host struct {
	screen   tcell.Screen
	session  *tick.Manager
	hud      *hud.HUD
	latch    *input.Latch
	bindings input.Bindings
	camera   game.Camera
	frame    int

	log *logrus.Entry
}

// NewHost creates a host for session on screen. Keys stay held for
// latchTicks ticks after their last press.
func NewHost(screen tcell.Screen, session *tick.Manager, latchTicks int) *Host {
	cfg := hud.DefaultConfig()
	cfg.ShowTick = true

	h := &Host{
		screen:   screen,
		session:  session,
		hud:      hud.New(cfg, session.Player().MaxHealth(), 0, 0),
		latch:    input.NewLatch(latchTicks),
		bindings: input.DefaultBindings(),
		log:      logger.Component("terminal"),
	}
	session.OnHealthChange = h.hud.SetHealth
	return h
}

// HUD returns the status line model
func (h *Host) HUD() *hud.HUD {
	return h.hud
}

// HandleEvent applies one terminal event. It returns true when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && !h.session.Player().Alive() {
			h.session.Restart()
			return false
		}
		for _, name := range translateKey(ev) {
			h.latch.Press(name, h.frame)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

// translateKey maps a terminal key to the key names used by the bindings.
// Terminals cannot report a bare Shift, so uppercase letters and x stand
// in for it.
func translateKey(ev *tcell.EventKey) []string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return []string{"ArrowLeft"}
	case tcell.KeyRight:
		return []string{"ArrowRight"}
	case tcell.KeyUp:
		return []string{"ArrowUp"}
	case tcell.KeyDown:
		return []string{"ArrowDown"}
	case tcell.KeyRune:
	default:
		return nil
	}

	r := ev.Rune()
	switch {
	case r == 'x' || r == 'X':
		return []string{"Shift"}
	case r == ' ':
		return []string{" "}
	case r >= 'A' && r <= 'Z':
		return []string{strings.ToLower(string(r)), "Shift"}
	case r >= 'a' && r <= 'z':
		return []string{string(r)}
	default:
		return nil
	}
}

// Intent returns the input snapshot for the current frame
func (h *Host) Intent() input.Intent {
	return h.latch.Keys(h.frame).Intent(h.bindings)
}

// Step advances the session by one tick with the latched keys
func (h *Host) Step() {
	h.session.Step(h.Intent())
	h.frame++

	p := h.session.Player()
	h.hud.SetSword(p.HasSword)
	h.hud.SetTick(h.session.Tick())
	h.hud.SetRestartIn(h.session.RestartIn())
}

// Run steps and draws at the session's tick rate until the user quits, the
// screen closes or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tps := h.session.Config().Timing.TicksPerSecond
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	h.log.WithField("tps", tps).Info("terminal host started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || h.HandleEvent(ev) {
				h.log.WithField("tick", h.session.Tick()).Info("terminal host stopped")
				return nil
			}
		case <-ticker.C:
			h.Step()
			h.Draw()
		}
	}
}
