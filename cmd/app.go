// Package cmd implements the CLI application to compute and accumulate inverse percentages.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands are the pcalc subcommands, in help order.
var Commands = []subcommands.Command{
	&calcCmd{},
	&sessionCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// Known reports whether name is a builtin subcommand.
func Known(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmd := range Commands {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	currency = flag.String("currency", "", "Currency code used to format values (e.g. EUR). Plain decimals if empty.")
	Verbose  = flag.Bool("v", false, "Print diagnostics on stderr.")
	plain    = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal.")
)

// LoadEnv sets global flags defaults from the environment.
//
// Variables are read from the process environment, and from the given .env
// files ("./.env" by default) when they exist. It must be called before
// flag.Parse so that explicit flags still win.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading environment file: %w", err)
	}
	defaults := []struct {
		env  string
		flag string
	}{
		{EnvCurrency, "currency"},
		{EnvVerbose, "v"},
		{EnvPlain, "plain"},
	}
	for _, d := range defaults {
		v, ok := os.LookupEnv(d.env)
		if !ok || v == "" {
			continue
		}
		if err := flag.Set(d.flag, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", d.env, v, err)
		}
	}
	return nil
}

// envValues returns the global flags as environment variables.
func envValues() []string {
	return []string{
		EnvCurrency + "=" + *currency,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
		EnvPlain + "=" + strconv.FormatBool(*plain),
	}
}
