// Command starpaper scrapes the Alchemy Stars wiki and renders character wallpapers.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/dixieflatline76/Starpaper/util/log"
	"github.com/spf13/pflag"
)

const usage = `Usage: starpaper [--config FILE] <command> [flags]

Commands:
  scrape     rebuild the character table from the wiki
  list       list characters, or the art choices of one character
  generate   render a wallpaper
  clean      delete generated wallpapers
  version    print the version, --check looks for a newer release

Run "starpaper <command> --help" for the flags of a command.
`

type command func(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error

var commands = map[string]command{
	"scrape":   runScrape,
	"list":     runList,
	"generate": runGenerate,
	"clean":    runClean,
	"version":  runVersion,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("starpaper: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("starpaper", pflag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.SetOutput(out)
	flags.Usage = func() { fmt.Fprint(out, usage) }
	configFile := flags.StringP("config", "c", config.GetFilename(), "path to the config file")
	showVersion := flags.BoolP("version", "v", false, "print the version and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(out, "%s %s\n", config.AppName, versionString())
		return nil
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errors.New("no command given")
	}

	cmd, ok := commands[flags.Arg(0)]
	if !ok {
		flags.Usage()
		return fmt.Errorf("unknown command %q", flags.Arg(0))
	}

	cfg, err := loadConfig(*configFile, flags.Changed("config"))
	if err != nil {
		return err
	}
	if _, err := log.UseFile(config.AppName + " " + flags.Arg(0)); err != nil {
		log.Printf("Logging to stderr: %v", err)
	}
	return cmd(ctx, cfg, flags.Args()[1:], out)
}

// loadConfig reads the config file. The default location may be absent, a
// file named on the command line may not.
func loadConfig(filename string, explicit bool) (*config.Config, error) {
	if !explicit && filename == config.GetFilename() {
		return config.GetConfig(), nil
	}
	cfg, err := config.LoadFrom(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func versionString() string {
	if config.AppVersion == "" {
		return "dev"
	}
	return config.AppVersion
}
