// Command layerview previews a set of parallax layers scrolling at fixed
// rates, without the ship or collision.
//
//	layerview -size 640x360 -rates=-1,-2,-4 bg1.png bg2.png fg1.png
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/parallax/obj"
	"github.com/milk9111/parallax/render"
	"golang.org/x/image/colornames"
)

type previewGame struct {
	frame    *render.Frame
	stack    *obj.LayerStack
	rates    []float64
	vertical bool
	w, h     int
	paused   bool
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		for i := range g.rates {
			g.rates[i] = -g.rates[i]
		}
	}
	if g.paused {
		return nil
	}

	g.frame.Reset()
	for i, r := range g.rates {
		if g.vertical {
			g.stack.Offset(i, 0, r)
		} else {
			g.stack.Offset(i, r, 0)
		}
	}
	g.stack.Render()
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.frame.Flush(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("layers: %d  rates: %v\nspace pause, r reverse, esc quit", g.stack.Len(), g.rates))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: must be positive", s)
	}
	return w, h, nil
}

// parseRates returns one rate per layer. Missing rates repeat the last one
// given; an empty list means -1 for every layer.
func parseRates(s string, layers int) ([]float64, error) {
	rates := make([]float64, 0, layers)
	if strings.TrimSpace(s) != "" {
		for _, part := range strings.Split(s, ",") {
			r, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("rate %q: %w", part, err)
			}
			rates = append(rates, r)
		}
	}
	if len(rates) > layers {
		return nil, fmt.Errorf("%d rates for %d layers", len(rates), layers)
	}
	last := -1.0
	if len(rates) > 0 {
		last = rates[len(rates)-1]
	}
	for len(rates) < layers {
		rates = append(rates, last)
	}
	return rates, nil
}

func main() {
	size := flag.String("size", "1280x720", "screen size WxH")
	rateList := flag.String("rates", "", "comma separated pixels per tick, one per layer (back first)")
	vertical := flag.Bool("vertical", false, "scroll along y instead of x")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"bg1.png", "bg2.png", "fg1.png"}
	}

	w, h, err := parseSize(*size)
	if err != nil {
		log.Fatal(err)
	}
	rates, err := parseRates(*rateList, len(paths))
	if err != nil {
		log.Fatal(err)
	}

	frame := render.NewFrame()
	stack, err := obj.NewLayerStackFromFiles(frame, float64(w), float64(h), paths...)
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{frame: frame, stack: stack, rates: rates, vertical: *vertical, w: w, h: h}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("layerview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
