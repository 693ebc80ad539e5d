package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ostnam/glox/pkg/config"
	"github.com/ostnam/glox/pkg/driver"
	"github.com/ostnam/glox/pkg/logging"
)

// gloxFlags holds the command line flags. Only the flags given explicitly
// override the configuration file.
type gloxFlags struct {
	ConfigFile string
	Tokens     bool
	AST        bool
	Debug      bool
	NoEval     bool
	Division   string
	Color      bool
	Verbose    bool
}

func (flags *gloxFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "YAML or TOML file with the driver settings.",
			Destination: &flags.ConfigFile,
		},
		&cli.BoolFlag{
			Name:        "tokens",
			Usage:       "List the scanned tokens.",
			Destination: &flags.Tokens,
		},
		&cli.BoolFlag{
			Name:        "ast",
			Usage:       "Print the parsed expression in parenthesized form.",
			Destination: &flags.AST,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "Dump the tokens and the tree of each run.",
			Destination: &flags.Debug,
		},
		&cli.BoolFlag{
			Name:        "no-eval",
			Usage:       "Stop after parsing.",
			Destination: &flags.NoEval,
		},
		&cli.StringFlag{
			Name:        "division",
			Value:       "nil",
			Usage:       "Result of dividing by zero: nil, error or ieee.",
			Destination: &flags.Division,
		},
		&cli.BoolFlag{
			Name:        "color",
			Usage:       "Color values and errors.",
			Destination: &flags.Color,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Log debug information to stderr.",
			Destination: &flags.Verbose,
		},
	}
}

// loadConfig builds the configuration from the file named by --config, if
// any, then from the flags set on the command line.
func (flags *gloxFlags) loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if flags.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(flags.ConfigFile); err != nil {
			return cfg, err
		}
		logging.Infof("loaded configuration from %s", flags.ConfigFile)
	}
	if c.IsSet("tokens") {
		cfg.ShowTokens = flags.Tokens
	}
	if c.IsSet("ast") {
		cfg.PrintAST = flags.AST
	}
	if c.IsSet("debug") {
		cfg.Debug = flags.Debug
	}
	if c.IsSet("no-eval") {
		cfg.Evaluate = !flags.NoEval
	}
	if c.IsSet("division") {
		cfg.Division = flags.Division
	}
	if c.IsSet("color") {
		cfg.Color = flags.Color
	}
	return cfg, cfg.Validate()
}

func newApp() *cli.App {
	var flags gloxFlags
	return &cli.App{
		Name:      "glox",
		Usage:     "Scan, parse and evaluate lox expressions.",
		ArgsUsage: "[script]",
		Flags:     flags.AsCliFlags(),
		Before: func(c *cli.Context) error {
			logging.SetLogger(logging.NewStdErrLogger(os.Stderr, flags.Verbose))
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				fmt.Fprintln(c.App.Writer, "Usage: glox [script]")
				return cli.Exit("", driver.ExitUsage)
			}
			cfg, err := flags.loadConfig(c)
			if err != nil {
				logging.Errorf("loading configuration: %s", err)
				return cli.Exit("", driver.ExitConfig)
			}
			runner := driver.New(cfg, c.App.Writer, c.App.ErrWriter)

			if c.NArg() == 0 {
				return runner.RunPrompt(os.Stdin)
			}
			status, err := runner.RunFile(c.Args().First())
			if err != nil {
				return cli.Exit(err.Error(), status)
			}
			if status != driver.ExitOK {
				return cli.Exit("", status)
			}
			return nil
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logging.Error(err)
		os.Exit(1)
	}
}
