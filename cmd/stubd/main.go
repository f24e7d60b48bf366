package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/andesvia/boleteria/internal/config"
	"github.com/andesvia/boleteria/internal/stub"
)

func main() {
	cfg := config.LoadStub()

	store := stub.NewStore()
	if err := stub.Seed(store, cfg.BcryptCost); err != nil {
		log.Fatalf("seed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	stub.RegisterRoutes(e, stub.NewHandler(cfg, store))

	addr := ":" + cfg.Port
	log.Printf("stub backend listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
