// Package main is the entry point for the cdarip application.
package main

import (
	"github.com/cdarip/cdarip/cmd"
	"github.com/cdarip/cdarip/config"
	"github.com/cdarip/cdarip/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
