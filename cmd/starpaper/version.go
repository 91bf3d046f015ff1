package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dixieflatline76/Starpaper/config"
	"github.com/dixieflatline76/Starpaper/util"
	"github.com/spf13/pflag"
)

func runVersion(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("version", pflag.ContinueOnError)
	flags.SetOutput(out)
	check := flags.Bool("check", false, "ask GitHub whether a newer release exists")
	if err := flags.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", config.AppName, versionString())
	if !*check {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	result, err := util.CheckForUpdates(ctx, nil)
	if err != nil {
		return err
	}
	if result.UpdateAvailable {
		fmt.Fprintf(out, "Version %s is available: %s\n", result.LatestVersion, result.ReleaseURL)
	} else {
		fmt.Fprintf(out, "Latest release is %s\n", result.LatestVersion)
	}
	return nil
}
