package cli

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

// Context is handed to every command's Run method.
type Context struct {
	out    io.Writer
	log    zerolog.Logger
	config *Config
}

// CLI is the kong grammar of the bstree command.
type CLI struct {
	Config   string `help:"Path to a TOML configuration file" type:"path"`
	LogLevel string `help:"Log level (trace, debug, info, warn, error)"`

	Demo DemoCmd `cmd:"" help:"Run the classic example: insert a fixed sequence and walk the tree"`
	Load LoadCmd `cmd:"" help:"Load values from CSV, TSV or JSON files and report the traversals"`
	Show ShowCmd `cmd:"" help:"Insert values and print the structure of the tree"`
}

// Execute parses args and runs the selected command. Command output goes to
// stdout, logs and usage go to stderr.
func Execute(args []string, stdout io.Writer, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("bstree"),
		kong.Description("Build unbalanced binary search trees and walk them."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	config, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		config.LogLevel = cli.LogLevel
		if err := config.Validate(); err != nil {
			return err
		}
	}

	logger, err := newLogger(stderr, config.LogLevel)
	if err != nil {
		return err
	}

	return ctx.Run(&Context{out: stdout, log: logger, config: config})
}
