package testbed

import (
	"github.com/spaghettifunk/wireframe/engine"
	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/renderer"
	"github.com/spaghettifunk/wireframe/engine/renderer/components"
)

const (
	demoName = "demo_triangles"
	cubeName = "demo_cube"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	DeltaTime   float64
	WorldCamera *components.Camera

	width  uint32
	height uint32

	cubeSpin     math.Vec3
	spinPaused   bool
	lastCamera   math.Vec3
	lastRotation math.Vec3
}

// NewTestGame wraps config, or the default configuration when nil, into a
// playable scene: two large triangles in front of the camera and a
// spinning cube further away when the configuration lists no objects.
func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	if config == nil {
		config = engine.DefaultApplicationConfig()
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State: &gameState{
				cubeSpin: math.NewVec3(math.DegToRad(20), math.DegToRad(35), 0),
			},
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Boot() error {
	core.LogInfo("booting testbed...")
	state := g.State.(*gameState)
	state.width = g.ApplicationConfig.Width
	state.height = g.ApplicationConfig.Height
	return nil
}

func demoTriangles() *math.Geometry {
	geometry := math.NewGeometry(demoName)
	geometry.AddTriangles([]math.Triangle{
		math.NewTriangle(math.NewVec3(-100, 100, 2), math.NewVec3(-100, -100, 1), math.NewVec3(100, -100, 1)),
		math.NewTriangle(math.NewVec3(-100, 100, 2), math.NewVec3(100, 100, 1), math.NewVec3(100, -100, 1)),
	})
	return geometry
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn called!")
	state := g.State.(*gameState)
	state.WorldCamera = g.SystemManager.CameraSystem.GetDefault()

	scene := g.SystemManager.SceneSystem
	if scene.Count() == 0 {
		if err := scene.Add(demoTriangles(), math.NewVec3Zero()); err != nil {
			return err
		}
		cube := math.NewGeometry(cubeName)
		cube.AddTriangles(math.CubeTriangles(2))
		cube.Transform.SetPosition(math.NewVec3(0, 0, 8))
		if err := scene.Add(cube, state.cubeSpin); err != nil {
			return err
		}
	}

	g.Events.Register(core.EVENT_CODE_KEY_PRESSED, g.gameOnKey)
	return nil
}

var tempMoveSpeed float32 = 5.0

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	state.DeltaTime = deltaTime
	camera := state.WorldCamera
	input := g.Input
	dt := float32(deltaTime)

	if input.IsKeyDown(core.KEY_A) || input.IsKeyDown(core.KEY_LEFT) {
		camera.Yaw(-1.0 * dt)
	}
	if input.IsKeyDown(core.KEY_D) || input.IsKeyDown(core.KEY_RIGHT) {
		camera.Yaw(1.0 * dt)
	}
	if input.IsKeyDown(core.KEY_UP) {
		camera.Pitch(-1.0 * dt)
	}
	if input.IsKeyDown(core.KEY_DOWN) {
		camera.Pitch(1.0 * dt)
	}

	if input.IsKeyDown(core.KEY_W) {
		camera.MoveForward(tempMoveSpeed * dt)
	}
	if input.IsKeyDown(core.KEY_S) {
		camera.MoveBackward(tempMoveSpeed * dt)
	}
	if input.IsKeyDown(core.KEY_Q) {
		camera.MoveLeft(tempMoveSpeed * dt)
	}
	if input.IsKeyDown(core.KEY_E) {
		camera.MoveRight(tempMoveSpeed * dt)
	}
	if input.IsKeyDown(core.KEY_SPACE) {
		camera.MoveUp(tempMoveSpeed * dt)
	}
	if input.IsKeyDown(core.KEY_X) {
		camera.MoveDown(tempMoveSpeed * dt)
	}
	return nil
}

func (g *TestGame) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	state := g.State.(*gameState)
	pos := state.WorldCamera.GetPosition()
	rot := state.WorldCamera.GetEulerRotation()
	if pos != state.lastCamera || rot != state.lastRotation {
		state.lastCamera = pos
		state.lastRotation = rot
		core.LogDebug("Camera Pos: [%.3f, %.3f, %.3f] Camera Rot: [%.3f, %.3f, %.3f]",
			pos.X, pos.Y, pos.Z, math.RadToDeg(rot.X), math.RadToDeg(rot.Y), math.RadToDeg(rot.Z))
	}
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("testbed shut down")
	return nil
}

func (g *TestGame) gameOnKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return
	}
	state := g.State.(*gameState)

	switch ke.KeyCode {
	case core.KEY_R:
		state.WorldCamera.Reset()
		core.LogInfo("camera reset")
	case core.KEY_P:
		state.spinPaused = !state.spinPaused
		spin := state.cubeSpin
		if state.spinPaused {
			spin = math.NewVec3Zero()
		}
		g.SystemManager.SceneSystem.SetSpin(cubeName, spin)
	}
}
