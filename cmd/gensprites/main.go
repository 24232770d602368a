package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/embervale/internal/sprites"
)

func main() {
	dir := flag.String("dir", "data/sprites", "directory to write the sheet and its config into")
	flag.Parse()

	fmt.Println("Embervale Sprite Sheet Generator")
	fmt.Println("================================")
	fmt.Println()

	if err := sprites.WritePlayerSheet(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote player_sheet.png and player_sheet.json to %s\n", *dir)
	fmt.Println("Point EMBERVALE_SPRITE_SHEET at the config to use the sheet in game.")
}
