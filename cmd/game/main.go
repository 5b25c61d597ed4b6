package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Path-Sense/internal/view"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var seed int64
	flag.Int64Var(&seed, "seed", 42, "seed for the random minefield preset")
	flag.Parse()

	ebiten.SetWindowTitle("Path Sense")
	ebiten.SetWindowSize(1280, 800)
	if err := ebiten.RunGame(view.New(seed)); err != nil {
		log.Fatal(err)
	}
}
