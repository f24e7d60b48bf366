package main

import (
	"log"

	"github.com/andesvia/boleteria/internal/config"
	"github.com/andesvia/boleteria/internal/ui"
)

func main() {
	cfg := config.LoadPOS()
	if err := ui.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
