// Package main is the entry point for the pokedex application.
package main

import (
	"github.com/pokedex-cli/pokedex/cmd"
	"github.com/pokedex-cli/pokedex/config"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/network"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Configure()

	cmd.Execute()
}
