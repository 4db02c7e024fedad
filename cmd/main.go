package main

import (
	"log"

	_ "time/tzdata"

	"github.com/ironclub/gym-server/cmd/app"
	"github.com/ironclub/gym-server/internal/adapters/config"
)

func main() {
	cfg := config.Get()
	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	a.Start()
}
