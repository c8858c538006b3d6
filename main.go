package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/prefabs"
)

func main() {
	scenePath := flag.String("scene", "", "scene YAML file (defaults to prefabs/scene.yaml, then the embedded scene)")
	debug := flag.Bool("debug", false, "show the debug overlay")
	watch := flag.Bool("watch", false, "reload scene tuning when the scene file changes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	spec, err := prefabs.LoadScene(*scenePath)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(int(spec.Screen.Width), int(spec.Screen.Height))
	ebiten.SetWindowTitle(spec.Name)
	ebiten.SetTPS(spec.TPS())

	game, err := NewGame(spec, *scenePath, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
