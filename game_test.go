package main

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/obj"
	"github.com/milk9111/parallax/prefabs"
	"github.com/milk9111/parallax/render"
)

func nilLoader(string) (*ebiten.Image, error) { return nil, nil }

func testScene() prefabs.SceneSpec {
	return prefabs.SceneSpec{
		Name:   "test",
		Screen: prefabs.ScreenSpec{Width: 200, Height: 100},
		Background: []prefabs.LayerSpec{
			{Image: "bg1.png"},
			{Image: "bg2.png", ScrollY: 1},
		},
		Foreground: []prefabs.LayerSpec{{Image: "fg1.png", ScrollX: 1}},
		Ship: prefabs.ShipSpec{
			Image: "ship.png", Width: 20, Height: 20,
			HeadingDeg: 270, Friction: 1, TurnRate: 0.05, Accel: 0.5, Brake: 0.5,
		},
		Collision: prefabs.CollisionSpec{Policy: "bounce", HalfExtent: 10, OriginX: 100, OriginY: 50},
	}
}

func newTestGame(t *testing.T, spec prefabs.SceneSpec) *Game {
	t.Helper()
	g, err := newGame(spec, "", false, nilLoader)
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	return g
}

func TestGameTickDrawOrder(t *testing.T) {
	g := newTestGame(t, testScene())

	if err := g.Tick(obj.Input{}); err != nil {
		t.Fatalf("tick: %v", err)
	}

	// 2 background layers, the ship, then 1 foreground layer
	cmds := g.frame.Commands()
	if len(cmds) != 7 {
		t.Fatalf("expected 7 draw calls, got %d", len(cmds))
	}
	ship := cmds[4]
	if ship.Dst.Width != 20 || ship.Dst.X != 90 || ship.Dst.Y != 40 {
		t.Fatalf("expected ship drawn centered at (100, 50), got %+v", ship.Dst)
	}
	if !common.NearlyEqual(ship.AngleDeg, 270, 1e-9) {
		t.Fatalf("expected ship at 270 degrees, got %v", ship.AngleDeg)
	}
	if fg := cmds[5]; fg.Dst.X != 1 {
		t.Fatalf("expected foreground scrolled by 1, got %v", fg.Dst.X)
	}
	if bg := cmds[2]; bg.Dst.Y != 1 {
		t.Fatalf("expected second background layer scrolled down by 1, got %v", bg.Dst.Y)
	}

	g.Tick(obj.Input{})
	if len(g.frame.Commands()) != 7 {
		t.Fatalf("expected frame reset between ticks, got %d commands", len(g.frame.Commands()))
	}
}

func TestGameSteering(t *testing.T) {
	g := newTestGame(t, testScene())

	g.Tick(obj.Input{Up: true})
	vx, vy := g.ship.Velocity()
	if !common.NearlyEqual(vx, 0.5, 1e-9) || !common.NearlyEqual(vy, 0, 1e-9) {
		t.Fatalf("first thrust from rest goes along +x, got (%v, %v)", vx, vy)
	}

	g.Tick(obj.Input{Up: true})
	vx, vy = g.ship.Velocity()
	if !common.NearlyEqual(vx, 1, 1e-9) || !common.NearlyEqual(vy, 0, 1e-9) {
		t.Fatalf("without a turn thrust keeps the current direction, got (%v, %v)", vx, vy)
	}

	g.Tick(obj.Input{Right: true})
	want := 1.5*math.Pi + 0.05
	if !common.NearlyEqual(g.heading, want, 1e-9) {
		t.Fatalf("expected heading %v, got %v", want, g.heading)
	}
	if !common.NearlyEqual(g.ship.Heading(), want-2*math.Pi, 1e-9) || !common.NearlyEqual(g.ship.Speed(), 1, 1e-9) {
		t.Fatalf("expected turn to point velocity at %v keeping speed 1, got heading %v speed %v",
			want-2*math.Pi, g.ship.Heading(), g.ship.Speed())
	}

	g.Tick(obj.Input{Down: true})
	if !common.NearlyEqual(g.ship.Speed(), 0.5, 1e-9) {
		t.Fatalf("expected brake to halve speed, got %v", g.ship.Speed())
	}
}

func TestGameBouncesShipOffEdge(t *testing.T) {
	g := newTestGame(t, testScene())
	g.ship.SetPosition(195, 50)
	g.ship.SetVelocity(5, 0)
	g.heading = 0

	g.Tick(obj.Input{})

	vx, _ := g.ship.Velocity()
	if vx != -5 {
		t.Fatalf("expected reflected velocity -5, got %v", vx)
	}
	if x, _ := g.ship.Position(); x != 185 {
		t.Fatalf("expected clamped to 190 then moved to 185, got %v", x)
	}
}

func TestGamePauseAndQuit(t *testing.T) {
	g := newTestGame(t, testScene())
	g.Tick(obj.Input{})

	g.Tick(obj.Input{PausePressed: true})
	if !g.paused {
		t.Fatalf("expected paused")
	}
	ticks := g.ticks
	bg := g.background.Layer(1).RectA()
	g.Tick(obj.Input{Up: true})
	if g.ticks != ticks || g.background.Layer(1).RectA() != bg {
		t.Fatalf("paused game should not advance")
	}
	if len(g.frame.Commands()) == 0 {
		t.Fatalf("paused game should keep the last frame")
	}

	g.Tick(obj.Input{PausePressed: true})
	if g.paused {
		t.Fatalf("expected resumed")
	}

	if err := g.Tick(obj.Input{Quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
	g.quit = true
	if err := g.Tick(obj.Input{}); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination from quit flag, got %v", err)
	}
}

func TestGameApplyTuning(t *testing.T) {
	g := newTestGame(t, testScene())
	g.ship.SetPosition(10, 20)

	next := testScene()
	next.Foreground[0].ScrollX = -4
	next.Ship.Friction = 0.5
	next.Collision.Policy = "wrap"
	if err := g.applyTuning(next); err != nil {
		t.Fatalf("applyTuning: %v", err)
	}
	if g.policy != obj.EdgeWrap || g.ship.Friction() != 0.5 {
		t.Fatalf("expected tuning applied, got policy %v friction %v", g.policy, g.ship.Friction())
	}
	if x, y := g.ship.Position(); x != 10 || y != 20 {
		t.Fatalf("reload should keep position, got (%v, %v)", x, y)
	}
	g.Tick(obj.Input{})
	if got := g.foreground.Layer(0).RectA().X; got != -4 {
		t.Fatalf("expected new scroll rate, got %v", got)
	}

	fewer := testScene()
	fewer.Background = fewer.Background[:1]
	if err := g.applyTuning(fewer); err == nil {
		t.Fatalf("expected error when layer count changes")
	}
	bad := testScene()
	bad.Collision.Policy = "explode"
	if err := g.applyTuning(bad); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestNewGameErrors(t *testing.T) {
	spec := testScene()
	spec.Collision.Policy = "explode"
	if _, err := newGame(spec, "", false, nilLoader); err == nil {
		t.Fatalf("expected error for unknown policy")
	}

	failing := func(p string) (*ebiten.Image, error) {
		return nil, &render.LoadError{Path: p, Err: errors.New("boom")}
	}
	_, err := newGame(testScene(), "", false, failing)
	var le *render.LoadError
	if !errors.As(err, &le) || le.Path != "bg1.png" {
		t.Fatalf("expected LoadError for first layer, got %v", err)
	}
}

func TestGameGravityBendsPath(t *testing.T) {
	scene := testScene()
	scene.Ship.HeadingDeg = 0
	scene.Ship.Speed = 2
	scene.Ship.Gravity = 0.5
	scene.Collision.Policy = "none"
	g := newTestGame(t, scene)

	for i := 0; i < 10; i++ {
		if err := g.Tick(obj.Input{}); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	vx, vy := g.ship.Velocity()
	if !common.NearlyEqual(vy, 5, 1e-9) {
		t.Fatalf("expected gravity to build vy to 5, got %v", vy)
	}
	if !common.NearlyEqual(vx, 2, 1e-9) {
		t.Fatalf("expected vx to stay 2, got %v", vx)
	}

	g.Tick(obj.Input{Left: true})
	if g.ship.Speed() <= 5 {
		t.Fatalf("turning should keep the gravity-built speed, got %v", g.ship.Speed())
	}
}
