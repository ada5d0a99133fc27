// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/qm-lab/boolmin"
	"github.com/qm-lab/boolmin/enumerate"
)

// ExploreCommand runs one of the built-in scenarios through boolmin.Explore
// and prints its minimal form, DNF, and CNF. It is the demo's only
// command, matching the project's own examples/ role of exercising the
// library end-to-end rather than demonstrating production usage.
type ExploreCommand struct {
	Log hclog.Logger
}

func (c *ExploreCommand) Help() string {
	var b strings.Builder
	b.WriteString("Usage: qmdemo explore [options] <scenario>\n\n")
	b.WriteString("  Explores a built-in predicate scenario and prints its minimal\n")
	b.WriteString("  formula, DNF, and CNF.\n\n")
	b.WriteString("Scenarios:\n")
	for _, s := range scenarios {
		b.WriteString("  " + s.name + "\n")
	}
	b.WriteString("\nOptions:\n")
	b.WriteString("  -max-invocations  cap on predicate calls before aborting\n")
	return b.String()
}

func (c *ExploreCommand) Synopsis() string {
	return "Explore a built-in predicate scenario and print its formulas"
}

func (c *ExploreCommand) Run(args []string) int {
	flags := flag.NewFlagSet("explore", flag.ContinueOnError)
	maxInvocations := flags.Int("max-invocations", 0, "cap on predicate calls before aborting (0 = unbounded)")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	rest := flags.Args()
	if len(rest) != 1 {
		fmt.Println(c.Help())
		return 1
	}

	s, ok := findScenario(rest[0])
	if !ok {
		color.Red("unknown scenario %q", rest[0])
		return 1
	}

	var opts []enumerate.Option
	calls := 0
	opts = append(opts, enumerate.WithOnInvocation(func(count int, row enumerate.Row) {
		calls = count
		c.Log.Debug("predicate invoked", "count", count, "observed", row.Observed, "output", row.Output)
	}))
	if *maxInvocations > 0 {
		opts = append(opts, enumerate.WithMaxInvocations(*maxInvocations))
	}

	result, err := boolmin.Explore(s.predict, opts...)
	if err != nil {
		color.Red("explore failed: %v", err)
		return 1
	}
	c.Log.Info("exploration complete", "scenario", s.name, "invocations", calls, "variables", len(result.Names))

	bold := color.New(color.Bold)
	bold.Println("scenario:  " + s.name)
	fmt.Println("variables: " + strings.Join(result.Names, ", "))
	color.Green("minimal:   %s", result.MinimalString())
	fmt.Println("dnf:       " + result.DNF())
	fmt.Println("cnf:       " + result.CNF())
	return 0
}
