package main

import (
	"log"

	"github.com/avc-dev/link-shortener/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
