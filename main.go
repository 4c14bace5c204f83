// Package main is the entry point for the ytthumbs application.
package main

import (
	"github.com/samber/lo"
	"github.com/ytthumbs/ytthumbs/cmd"
	"github.com/ytthumbs/ytthumbs/config"
	"github.com/ytthumbs/ytthumbs/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
