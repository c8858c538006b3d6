package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/obj"
	"github.com/milk9111/parallax/prefabs"
	"github.com/milk9111/parallax/render"
	"golang.org/x/image/colornames"
)

type imageLoader func(path string) (*ebiten.Image, error)

// Game drives one scene: a background stack, the player's ship and a
// foreground stack drawn over it.
type Game struct {
	scene     prefabs.SceneSpec
	scenePath string

	frame      *render.Frame
	background *obj.LayerStack
	foreground *obj.LayerStack
	ship       *obj.MotionBody
	collider   obj.EdgeCollider
	policy     obj.EdgePolicy
	heading    float64

	clear   color.Color
	debug   bool
	paused  bool
	quit    bool
	ticks   int
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
	poll    func() obj.Input
}

// NewGame builds the scene from spec. scenePath is only used for hot reload
// and may be empty for the default scene.
func NewGame(spec prefabs.SceneSpec, scenePath string, debug bool) (*Game, error) {
	return newGame(spec, scenePath, debug, render.LoadImage)
}

func newGame(spec prefabs.SceneSpec, scenePath string, debug bool, load imageLoader) (*Game, error) {
	policy, err := obj.ParseEdgePolicy(spec.Collision.Policy)
	if err != nil {
		return nil, fmt.Errorf("game: scene %q: %w", spec.Name, err)
	}

	w, h := spec.Screen.Width, spec.Screen.Height
	frame := render.NewFrame()

	background, err := buildStack(frame, w, h, spec.Background, load)
	if err != nil {
		return nil, err
	}
	foreground, err := buildStack(frame, w, h, spec.Foreground, load)
	if err != nil {
		return nil, err
	}

	shipImg, err := load(spec.Ship.Image)
	if err != nil {
		return nil, err
	}
	heading := common.DegToRad(spec.Ship.HeadingDeg)
	tex := render.NewTexture(frame, shipImg, common.Rect{Width: spec.Ship.Width, Height: spec.Ship.Height})
	tex.SetAngleRadians(heading)

	x, y := spec.Ship.X, spec.Ship.Y
	if x == 0 && y == 0 {
		x, y = w/2, h/2
	}
	ship := obj.NewMotionBody(obj.BodyOptions{
		X:        x,
		Y:        y,
		Speed:    spec.Ship.Speed,
		Heading:  heading,
		Friction: spec.Ship.Friction,
		Gravity:  spec.Ship.Gravity,
		Sprite:   tex,
	})
	ship.SetThrust(spec.Ship.ThrustX, spec.Ship.ThrustY)

	g := &Game{
		scene:      spec,
		scenePath:  scenePath,
		frame:      frame,
		background: background,
		foreground: foreground,
		ship:       ship,
		collider:   obj.NewEdgeCollider(w, h),
		policy:     policy,
		heading:    heading,
		clear:      colornames.Black,
		debug:      debug,
		poll:       obj.PollInput,
	}
	if spec.ClearColor.Color != nil {
		g.clear = spec.ClearColor.Color
	}
	return g, nil
}

func buildStack(canvas render.Canvas, w, h float64, layers []prefabs.LayerSpec, load imageLoader) (*obj.LayerStack, error) {
	s := obj.NewLayerStack(canvas, w, h)
	for _, l := range layers {
		img, err := load(l.Image)
		if err != nil {
			return nil, err
		}
		s.Append(img)
	}
	return s, nil
}

// Watch starts reloading the scene tuning when its file changes on disk.
func (g *Game) Watch() error {
	dir := filepath.Dir(prefabs.DiskPath(prefabs.SceneFile))
	if g.scenePath != "" {
		dir = filepath.Dir(g.scenePath)
	}
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("game: watch %s: %w", dir, err)
	}
	g.watcher = w
	return nil
}

// Close stops the scene watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.reloadIfChanged()

	in := g.poll()
	if g.paused {
		if g.pauseUI == nil {
			g.pauseUI = NewPauseUI(g)
		}
		g.pauseUI.Update()
	}
	return g.Tick(in)
}

// Tick runs one step: scroll and draw the background, resolve the ship
// against the screen edge, steer and move the ship, then scroll and draw the
// foreground. Draw calls are recorded into the frame and shown by Draw.
func (g *Game) Tick(in obj.Input) error {
	if in.Quit || g.quit {
		return ebiten.Termination
	}
	if in.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}
	g.ticks++
	g.frame.Reset()

	scroll(g.background, g.scene.Background)
	g.background.Render()

	c := g.scene.Collision
	vx, vy := g.ship.Velocity()
	g.collider.Apply(g.policy, g.ship, c.HalfExtent, c.OriginX, c.OriginY)
	if nvx, nvy := g.ship.Velocity(); nvx != vx || nvy != vy {
		// a bounce turned the ship; steer from the reflected heading
		g.heading = g.ship.Heading()
	}

	s := g.scene.Ship
	if in.Left || in.Right {
		if in.Right {
			g.heading += s.TurnRate
		}
		if in.Left {
			g.heading -= s.TurnRate
		}
		// steer only on a turn so gravity can bend the path
		g.ship.SetHeading(g.heading)
	}

	if in.Up {
		g.ship.Accelerate(s.Accel)
	}
	if in.Down {
		g.ship.Decelerate(s.Brake)
	}
	g.ship.AccelerateByThrust()
	g.ship.Update()

	scroll(g.foreground, g.scene.Foreground)
	g.foreground.Render()
	return nil
}

func scroll(stack *obj.LayerStack, layers []prefabs.LayerSpec) {
	for i, l := range layers {
		stack.Offset(i, l.ScrollX, l.ScrollY)
	}
}

func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefabs: watch: %v", err)
	default:
	}
	name, ok := g.watcher.Poll()
	if !ok {
		return
	}
	if g.scenePath != "" && filepath.Clean(name) != filepath.Clean(g.scenePath) {
		return
	}
	spec, err := prefabs.LoadScene(g.scenePath)
	if err != nil {
		log.Printf("prefabs: reload %s: %v", name, err)
		return
	}
	if err := g.applyTuning(spec); err != nil {
		log.Printf("prefabs: reload %s: %v", name, err)
		return
	}
	ebiten.SetTPS(spec.TPS())
	log.Printf("prefabs: reloaded %s", name)
}

// applyTuning swaps in the tunable parts of spec: scroll rates, ship physics
// and collision. Layers, screen size and positions stay as they are.
func (g *Game) applyTuning(spec prefabs.SceneSpec) error {
	if len(spec.Background) != g.background.Len() || len(spec.Foreground) != g.foreground.Len() {
		return fmt.Errorf("layer count changed (%d/%d -> %d/%d), restart to apply",
			g.background.Len(), g.foreground.Len(), len(spec.Background), len(spec.Foreground))
	}
	if spec.Screen != g.scene.Screen {
		return fmt.Errorf("screen size changed, restart to apply")
	}
	policy, err := obj.ParseEdgePolicy(spec.Collision.Policy)
	if err != nil {
		return err
	}

	g.policy = policy
	g.ship.SetTuning(spec.Ship.Friction, spec.Ship.Gravity)
	g.ship.SetThrust(spec.Ship.ThrustX, spec.Ship.ThrustY)
	if spec.ClearColor.Color != nil {
		g.clear = spec.ClearColor.Color
	}
	g.scene = spec
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	g.frame.Flush(screen)

	if g.debug {
		x, y := g.ship.Position()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f  ticks: %d\npos: (%.1f, %.1f)  speed: %.2f  heading: %.1f",
			ebiten.ActualTPS(), g.ticks, x, y, g.ship.Speed(), common.RadToDeg(g.heading)))
	}

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.scene.Screen.Width), int(g.scene.Screen.Height)
}
