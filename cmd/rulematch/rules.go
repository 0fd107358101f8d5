package main

import (
	"fmt"

	"github.com/alecthomas/repr"

	"github.com/alecthomas/rulematch"
)

type rulesCmd struct {
	Input     string `arg:"" type:"existingfile" help:"File containing rules, a blank line, then messages."`
	Reachable bool   `help:"Only print rules reachable from the root rule."`
	Dump      bool   `help:"Dump rules as Go values."`
}

func (c *rulesCmd) Run(ctx *runContext) error {
	in, err := ctx.readInput(c.Input)
	if err != nil {
		return err
	}
	table := in.Table
	if c.Dump {
		rules := make([]*rulematch.Rule, 0, table.Len())
		for _, id := range table.IDs() {
			rule, err := table.Get(id)
			if err != nil {
				return err
			}
			rules = append(rules, rule)
		}
		fmt.Fprintln(ctx.Stdout, repr.String(rules, repr.Indent("  ")))
		return nil
	}
	if c.Reachable {
		out, err := table.Reachable(rulematch.RuleID(ctx.Globals.Root))
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Stdout, out)
		return nil
	}
	fmt.Fprintln(ctx.Stdout, table)
	return nil
}
