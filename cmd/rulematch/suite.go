package main

import (
	"fmt"

	"github.com/alecthomas/rulematch/suite"
)

type suiteCmd struct {
	Files []string `arg:"" help:"YAML suite files."`
}

func (c *suiteCmd) Run(ctx *runContext) error {
	failed := 0
	for _, path := range c.Files {
		s, err := suite.LoadFile(path)
		if err != nil {
			return err
		}
		report, err := s.Run(ctx.options()...)
		if err != nil {
			return err
		}
		if report.OK() {
			fmt.Fprintf(ctx.Stdout, "PASS\t%s\t%d cases\n", report.Name, report.Passed)
			continue
		}
		failed++
		fmt.Fprintf(ctx.Stdout, "FAIL\t%s\t%d of %d cases failed\n", report.Name, len(report.Failures), len(report.Failures)+report.Passed)
		for _, failure := range report.Failures {
			fmt.Fprintf(ctx.Stdout, "\t%s\n", failure)
		}
		ctx.Logger.Warn("suite failed", "suite", report.Name, "failures", len(report.Failures))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d suites failed", failed, len(c.Files))
	}
	return nil
}
