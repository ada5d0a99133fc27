// SPDX-License-Identifier: MIT

// Command qmdemo is a small CLI that exercises the boolmin library against
// a handful of built-in predicate scenarios.
package main

import (
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := hclog.New(&hclog.LoggerOptions{
		Name:  "qmdemo",
		Level: hclog.Info,
	})

	c := cli.NewCLI("qmdemo", "0.1.0")
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"explore": func() (cli.Command, error) {
			return &ExploreCommand{Log: log}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		log.Error("qmdemo failed", "error", err)
		return 1
	}
	return exitCode
}
