package main

import (
	"fmt"
	goos "os"
)

func main() {
	defer fmt.Println("never printed")

	if len(goos.Args) > 3 {
		goos.Exit(2) // want "direct call to os.Exit in main function of main package"
	}

	func() {
		goos.Exit(1) // want "direct call to os.Exit in main function of main package"
	}()
}

func fail() {
	goos.Exit(1)
}

type runner struct{}

func (runner) main() {
	goos.Exit(1)
}
