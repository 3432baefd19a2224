package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spaghettifunk/wireframe/engine/assets"
	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/platform"
	"github.com/spaghettifunk/wireframe/engine/renderer"
	"github.com/spaghettifunk/wireframe/engine/renderer/software"
	"github.com/spaghettifunk/wireframe/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// Fired when the watched configuration file changed on disk.
/* Context usage:
 * path := context.Data.(string)
 */
const EVENT_CODE_CONFIG_CHANGED core.EventCode = 0x100

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	platform      *platform.Platform
	assetManager  *assets.AssetManager
	systemManager *systems.SystemManager
	events        *core.EventSystem
	input         *core.InputState
	renderer      *renderer.Renderer
	// Off-screen target when running headless.
	canvas     *software.Canvas
	frameSink  *jobFrameSink
	width      uint32
	height     uint32
	clock      *core.Clock
	metrics    *core.Metrics
	lastTime   float64
	deltaTime  float64
	frameCount int
}

func New(g *Game) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	config := g.ApplicationConfig
	if err := config.Validate(); err != nil {
		return nil, err
	}
	core.SetLogLevel(config.Level())

	events := core.NewEventSystem()
	input := core.NewInputState(events)

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	cameraConfig, err := config.CameraConfig()
	if err != nil {
		return nil, err
	}
	sm, err := systems.NewSystemManager(cameraConfig)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	g.SystemManager = sm
	g.Events = events
	g.Input = input

	e := &Engine{
		currentStage:  EngineStageBooting,
		gameInstance:  g,
		platform:      platform.New(events, input),
		assetManager:  am,
		systemManager: sm,
		events:        events,
		input:         input,
		renderer:      renderer.New(nil, sm.CameraSystem.GetDefault()),
		clock:         core.NewClock(),
		metrics:       core.NewMetrics(),
		isRunning:     true,
		width:         config.Width,
		height:        config.Height,
	}

	if g.FnBoot != nil {
		if err := g.FnBoot(); err != nil {
			core.LogError("game boot failed: %s", err)
			return nil, err
		}
	}
	e.currentStage = EngineStageBootComplete
	return e, nil
}

func (e *Engine) headless() bool {
	return e.gameInstance.ApplicationConfig.HeadlessFrames > 0
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageBootComplete {
		return fmt.Errorf("engine cannot initialize from stage %d", e.currentStage)
	}
	e.currentStage = EngineStageInitializing
	config := e.gameInstance.ApplicationConfig

	// register some events
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	e.events.Register(core.EVENT_CODE_KEY_RELEASED, e.onKey)
	e.events.Register(core.EVENT_CODE_RESIZED, e.onResized)
	e.events.Register(EVENT_CODE_CONFIG_CHANGED, e.onConfigChanged)

	camera := e.systemManager.CameraSystem.GetDefault()
	position, rotation := config.CameraPose()
	camera.SetPosition(position)
	camera.SetEulerRotation(rotation)

	if len(config.Objects) > 0 {
		if err := e.systemManager.LoadScene(config.Objects); err != nil {
			return err
		}
	}

	e.assetManager.RegisterLoader(assets.AssetTypeConfig, assets.LoaderFunc(func(path string) (interface{}, error) {
		return LoadApplicationConfig(path)
	}))
	if config.Path != "" {
		if err := e.watchConfig(config.Path); err != nil {
			return err
		}
	}

	if e.headless() {
		var sink software.FrameSink
		if config.FrameDir != "" {
			s, err := software.NewBMPDirSink(config.FrameDir, "frame_")
			if err != nil {
				return err
			}
			e.frameSink = newJobFrameSink(s, e.systemManager.JobSystem)
			sink = e.frameSink
		}
		e.canvas = software.NewCanvas(int(e.width), int(e.height), sink)
		e.renderer.SetBackend(e.canvas)
	} else {
		if err := e.platform.Startup(config.Name, config.StartPosX, config.StartPosY, int(e.width), int(e.height)); err != nil {
			return err
		}
		e.platform.SetTargetFPS(config.TargetFPS)
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) watchConfig(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	e.assetManager.OnChange(func(info assets.AssetInfo) {
		if info.Path != abs {
			return
		}
		// Delivered on the next frame, on the loop goroutine.
		if err := e.events.Post(core.EventContext{Type: EVENT_CODE_CONFIG_CHANGED, Data: info.Path}); err != nil {
			core.LogWarn("config change dropped: %s", err)
		}
	})
	return e.assetManager.Watch(abs)
}

/**
 * @brief Runs the frame loop until the application quits. A windowed engine
 * blocks inside the window event loop; a headless one renders exactly
 * HeadlessFrames frames off-screen, paced by TargetFPS when it is set.
 */
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine cannot run from stage %d", e.currentStage)
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	if !e.headless() {
		return e.platform.Run(e)
	}

	config := e.gameInstance.ApplicationConfig
	var targetFrameSeconds float64
	if config.TargetFPS > 0 {
		targetFrameSeconds = 1.0 / float64(config.TargetFPS)
	}
	for i := 0; i < config.HeadlessFrames && e.isRunning; i++ {
		frameStart := time.Now()
		if err := e.Tick(); err != nil {
			return err
		}
		if !e.isRunning {
			break
		}
		if err := e.Draw(e.canvas); err != nil {
			return err
		}
		remaining := targetFrameSeconds - time.Since(frameStart).Seconds()
		if remaining > 0 {
			time.Sleep(time.Duration(remaining * float64(time.Second)))
		}
	}
	if e.frameSink != nil {
		if err := e.frameSink.Flush(); err != nil {
			return err
		}
	}
	pos := e.systemManager.CameraSystem.GetDefault().GetPosition()
	stats := e.renderer.TotalStats()
	core.LogInfo("headless run done: %d frames, %d lines, %d culled, camera at [%.3f, %.3f, %.3f]",
		e.frameCount, stats.Lines, stats.Culled, pos.X, pos.Y, pos.Z)
	return nil
}

/**
 * @brief Advances the simulation by one frame: delivers queued events,
 * updates the game and the systems, then rolls the input state over.
 */
func (e *Engine) Tick() error {
	e.events.Dispatch()
	if !e.isRunning || e.isSuspended {
		return nil
	}

	// Update clock and get delta time.
	e.clock.Update()
	currentTime := e.clock.Elapsed()
	e.deltaTime = currentTime - e.lastTime
	e.lastTime = currentTime

	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(e.deltaTime); err != nil {
			core.LogError("Game update failed, shutting down: %s", err)
			e.isRunning = false
			return err
		}
	}
	e.systemManager.Update(e.deltaTime)

	// NOTE: Input update/state copying should always be handled
	// after any input should be recorded; I.E. before this line.
	e.input.Update(e.deltaTime)
	return nil
}

// Draw renders the scene through the default camera onto canvas.
func (e *Engine) Draw(canvas renderer.Canvas) error {
	if !e.isRunning || e.isSuspended {
		return nil
	}
	frameStart := time.Now()

	packet := &renderer.RenderPacket{
		DeltaTime:  e.deltaTime,
		Geometries: e.systemManager.SceneSystem.Geometries(),
	}
	if e.gameInstance.FnRender != nil {
		if err := e.gameInstance.FnRender(packet, e.deltaTime); err != nil {
			core.LogError("Game render failed, shutting down: %s", err)
			e.isRunning = false
			return err
		}
	}

	e.renderer.SetBackend(canvas)
	if _, err := e.renderer.DrawFrame(packet); err != nil {
		e.isRunning = false
		return err
	}

	e.metrics.Update(time.Since(frameStart).Seconds())
	e.frameCount++
	if e.frameCount%int(core.AVG_COUNT) == 0 {
		fps, frameTime := e.metrics.Frame()
		core.LogDebug("fps: %.1f frame time: %.3fms", fps, frameTime)
	}
	return nil
}

func (e *Engine) IsRunning() bool {
	return e.isRunning
}

// Frames is the number of frames drawn so far.
func (e *Engine) Frames() int {
	return e.frameCount
}

// Stats returns the render counters summed over every frame drawn.
func (e *Engine) Stats() renderer.RenderStats {
	return e.renderer.TotalStats()
}

// Canvas is the off-screen canvas of a headless engine, nil otherwise.
func (e *Engine) Canvas() *software.Canvas {
	return e.canvas
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	var errs []error
	if e.gameInstance.FnShutdown != nil {
		errs = append(errs, e.gameInstance.FnShutdown())
	}
	errs = append(errs,
		e.assetManager.Shutdown(),
		e.systemManager.Shutdown(),
		e.events.Shutdown(),
		e.platform.Shutdown(),
	)
	return errors.Join(errs...)
}

// ApplicationGetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		{
			core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
			e.isRunning = false
		}
	}
}

func (e *Engine) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	keyCode := ke.KeyCode

	if context.Type == core.EVENT_CODE_KEY_PRESSED {
		if keyCode == core.KEY_ESCAPE {
			// NOTE: Technically firing an event to itself, but there may be other listeners.
			e.events.Fire(core.EventContext{
				Type: core.EVENT_CODE_APPLICATION_QUIT,
			})
			return
		}
		core.LogDebug("key 0x%02x pressed in window.", keyCode)
	} else if context.Type == core.EVENT_CODE_KEY_RELEASED {
		core.LogDebug("key 0x%02x released in window.", keyCode)
	}
}

func (e *Engine) onResized(context core.EventContext) {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	width := se.WindowWidth
	height := se.WindowHeight
	if width == e.width && height == e.height {
		return
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.systemManager.OnResize(int(width), int(height)); err != nil {
		core.LogError(err.Error())
		return
	}
	if e.canvas != nil {
		e.canvas.Resize(int(width), int(height))
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError(err.Error())
		}
	}
}

func (e *Engine) onConfigChanged(context core.EventContext) {
	path, ok := context.Data.(string)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}
	asset, err := e.assetManager.LoadAsset(path)
	if err != nil {
		core.LogError("config reload failed, keeping the current one: %s", err)
		return
	}
	config, ok := asset.(*ApplicationConfig)
	if !ok {
		core.LogError("config reload of %s returned %T", path, asset)
		return
	}
	if err := e.applyConfig(config); err != nil {
		core.LogError("config reload failed, keeping the current one: %s", err)
		return
	}
	core.LogInfo("configuration reloaded from %s", path)
}

/**
 * @brief Applies a reloaded configuration: log level, projection, camera
 * pose and, when objects are listed, the scene. The window keeps its
 * current size and position.
 */
func (e *Engine) applyConfig(config *ApplicationConfig) error {
	cameraConfig, err := config.CameraConfig()
	if err != nil {
		return err
	}
	cameraConfig.Width = int(e.width)
	cameraConfig.Height = int(e.height)
	if err := cameraConfig.Validate(); err != nil {
		return err
	}
	if len(config.Objects) > 0 {
		if err := e.systemManager.LoadScene(config.Objects); err != nil {
			return err
		}
	}
	if err := e.systemManager.CameraSystem.Reconfigure(cameraConfig); err != nil {
		return err
	}

	core.SetLogLevel(config.Level())
	camera := e.systemManager.CameraSystem.GetDefault()
	position, rotation := config.CameraPose()
	camera.SetPosition(position)
	camera.SetEulerRotation(rotation)
	if !e.headless() {
		e.platform.SetTargetFPS(config.TargetFPS)
	}

	current := e.gameInstance.ApplicationConfig
	config.Width, config.Height = current.Width, current.Height
	config.HeadlessFrames, config.FrameDir = current.HeadlessFrames, current.FrameDir
	e.gameInstance.ApplicationConfig = config
	return nil
}

var _ platform.Driver = (*Engine)(nil)
