package main

import (
	"log"
	"os"

	"http_peek/internal/bootstrap"
	"http_peek/internal/config"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	conf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	app := bootstrap.New(conf)
	if err := app.Run(); err != nil {
		log.Fatalf("http_peek exited: %s", err)
	}
}
