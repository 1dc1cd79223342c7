package main

import (
	"fmt"
	"os"

	"github.com/lukaszgryglicki/stokes3d/internal/stokes3d"
)

func main() {
	stokes3d.Debug = os.Getenv("DEBUG") != ""

	cfg := "benches/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := stokes3d.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
