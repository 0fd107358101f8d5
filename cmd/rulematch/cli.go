package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/text/unicode/norm"

	"github.com/alecthomas/rulematch"
)

// CLI is the command-line grammar.
type CLI struct {
	Globals `embed:""`

	Count countCmd `cmd:"" help:"Count messages matching the root rule."`
	Match matchCmd `cmd:"" help:"Print the verdict for each message."`
	Rules rulesCmd `cmd:"" help:"Print the rule table."`
	Suite suiteCmd `cmd:"" help:"Run YAML test suites."`
}

// Globals are flags shared by every command.
type Globals struct {
	Version    kong.VersionFlag `help:"Show version."`
	Root       int              `short:"r" default:"0" help:"ID of the rule messages must match."`
	Exhaustive bool             `short:"x" help:"Consider every way each rule can match instead of the first."`
	Normalize  bool             `help:"Normalize messages to NFC before matching."`
	Trace      bool             `help:"Trace rule evaluation to stderr."`
	LogLevel   string           `default:"warn" enum:"debug,info,warn,error" env:"RULEMATCH_LOG_LEVEL" help:"Log level (${enum})."`
}

type runContext struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Globals *Globals
}

func newRunContext(stdout, stderr io.Writer, globals *Globals) *runContext {
	var level slog.Level
	if err := level.UnmarshalText([]byte(globals.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	return &runContext{
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		Globals: globals,
	}
}

func (r *runContext) options() []rulematch.Option {
	options := []rulematch.Option{}
	if r.Globals.Exhaustive {
		options = append(options, rulematch.Exhaustive())
	}
	if r.Globals.Normalize {
		options = append(options, rulematch.Normalize(norm.NFC))
	}
	if r.Globals.Trace {
		options = append(options, rulematch.Trace(r.Stderr))
	}
	return options
}

func (r *runContext) readInput(path string) (*rulematch.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	in, err := rulematch.ReadInput(path, f)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("input loaded", "file", path, "rules", in.Table.Len(), "messages", len(in.Messages))
	return in, nil
}

func (r *runContext) validator(path string) (*rulematch.Validator, []string, error) {
	in, err := r.readInput(path)
	if err != nil {
		return nil, nil, err
	}
	v, err := rulematch.New(in.Table, rulematch.RuleID(r.Globals.Root), r.options()...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, in.Messages, nil
}

type countCmd struct {
	Input string `arg:"" type:"existingfile" help:"File containing rules, a blank line, then messages."`
}

func (c *countCmd) Run(ctx *runContext) error {
	v, messages, err := ctx.validator(c.Input)
	if err != nil {
		return err
	}
	count, err := v.Count(messages)
	if err != nil {
		return err
	}
	ctx.Logger.Info("messages validated", "file", c.Input, "messages", len(messages), "matched", count)
	fmt.Fprintln(ctx.Stdout, count)
	return nil
}

type matchCmd struct {
	Input string `arg:"" type:"existingfile" help:"File containing rules, a blank line, then messages."`
}

func (c *matchCmd) Run(ctx *runContext) error {
	v, messages, err := ctx.validator(c.Input)
	if err != nil {
		return err
	}
	for _, message := range messages {
		ok, err := v.MatchesFully(message)
		if err != nil {
			return fmt.Errorf("%q: %w", message, err)
		}
		verdict := "no match"
		if ok {
			verdict = "match"
		}
		fmt.Fprintf(ctx.Stdout, "%s\t%s\n", verdict, message)
	}
	return nil
}
