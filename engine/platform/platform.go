package platform

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/renderer"
)

// Driver is the frame loop the window calls into: Tick once per update,
// Draw once per displayed frame.
type Driver interface {
	Tick() error
	Draw(canvas renderer.Canvas) error
	IsRunning() bool
}

// Platform is the desktop window. It owns nothing of the scene; it turns
// keyboard and window state into core events and hands the screen to the
// driver as a Canvas.
type Platform struct {
	events *core.EventSystem
	input  *core.InputState
	driver Driver

	width  int
	height int
	keys   []ebiten.Key
	err    error
}

func New(events *core.EventSystem, input *core.InputState) *Platform {
	return &Platform{
		events: events,
		input:  input,
	}
}

func (p *Platform) Startup(applicationName string, x, y, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("window size must be positive")
	}
	p.width = width
	p.height = height

	ebiten.SetWindowTitle(applicationName)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowPosition(x, y)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	return nil
}

// SetTargetFPS sets the number of updates per second; 0 keeps the ebiten default of 60.
func (p *Platform) SetTargetFPS(fps int) {
	if fps > 0 {
		ebiten.SetTPS(fps)
	}
}

// Run blocks until the driver stops running or the window fails.
func (p *Platform) Run(driver Driver) error {
	p.driver = driver
	return ebiten.RunGame(p)
}

func (p *Platform) Shutdown() error {
	p.driver = nil
	return nil
}

/**
 * @brief Translates this tick's keyboard and window state into events.
 *
 * @return false once the window has been asked to close.
 */
func (p *Platform) PumpMessages() bool {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if code, ok := TranslateKey(k); ok {
			p.input.ProcessKey(code, true)
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if code, ok := TranslateKey(k); ok {
			p.input.ProcessKey(code, false)
		}
	}
	return !ebiten.IsWindowBeingClosed()
}

func (p *Platform) Update() error {
	if p.err != nil {
		return p.err
	}
	if !p.PumpMessages() {
		p.events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	}
	if err := p.driver.Tick(); err != nil {
		return err
	}
	if !p.driver.IsRunning() {
		return ebiten.Termination
	}
	return nil
}

func (p *Platform) Draw(screen *ebiten.Image) {
	if p.err != nil {
		return
	}
	if err := p.driver.Draw(NewScreenCanvas(screen)); err != nil {
		core.LogError("draw failed: %s", err)
		p.err = err
	}
}

// Layout keeps the screen at the window size and reports changes as RESIZED.
func (p *Platform) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != p.width || outsideHeight != p.height {
		p.width = outsideWidth
		p.height = outsideHeight
		if err := p.events.Post(core.EventContext{
			Type: core.EVENT_CODE_RESIZED,
			Data: &core.SystemEvent{WindowWidth: uint32(outsideWidth), WindowHeight: uint32(outsideHeight)},
		}); err != nil {
			core.LogWarn("resize event dropped: %s", err)
		}
	}
	if p.width <= 0 || p.height <= 0 {
		return 1, 1
	}
	return p.width, p.height
}

var _ ebiten.Game = (*Platform)(nil)
