package main

import (
	"fmt"
	"os"

	"github.com/parlife/go-life/sim"
)

func main() {
	cfg := loadRunConfig(os.Args[1:])

	result, err := sim.Run(cfg)
	if err != nil {
		fatal(err)
	}

	fmt.Println(result.Stats.Summary())

	if cfg.Snapshots && cfg.AssembleCmd != "" {
		if err := sim.AssembleAnimation(cfg); err != nil {
			fatal(err)
		}
	}
}
