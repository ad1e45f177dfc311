package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vitalvas/sharerecover/recovery"
	"github.com/vitalvas/sharerecover/shareset"
	"github.com/vitalvas/sharerecover/xcmd"
	"github.com/vitalvas/sharerecover/xconfig"
	"github.com/vitalvas/sharerecover/xlogger"
)

const envPrefix = "SHARERECOVER"

var errUsage = errors.New("usage: sharerecover [-config file] [-log-level level] [-log-format format] <recover|deal> [args]")

type Config struct {
	Logger   xlogger.Config  `yaml:"logger" json:"logger"`
	Recovery recovery.Config `yaml:"recovery" json:"recovery"`
}

func main() {
	ctx, cancel := xcmd.SignalContext(context.Background())
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sharerecover", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "configuration file (yaml or json)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "log format: text, json, auto")

	if err := fs.Parse(args); err != nil {
		return err
	}

	conf, err := loadConfig(*configFile)
	if err != nil {
		return err
	}

	if *logLevel != "" {
		conf.Logger.Level = *logLevel
	}
	if *logFormat != "" {
		conf.Logger.LogType = *logFormat
	}
	conf.Logger.Output = stderr

	logger := xlogger.New(conf.Logger)

	if fs.NArg() == 0 {
		return errUsage
	}

	switch fs.Arg(0) {
	case "recover":
		return runRecover(ctx, conf.Recovery, logger, fs.Args()[1:], stdout, stderr)
	case "deal":
		return runDeal(fs.Args()[1:], stdout, stderr)
	default:
		return fmt.Errorf("unknown command %q\n%w", fs.Arg(0), errUsage)
	}
}

func loadConfig(path string) (Config, error) {
	var conf Config

	opts := []xconfig.Option{xconfig.WithEnv(envPrefix)}
	if path != "" {
		opts = append(opts, xconfig.WithFiles(path), xconfig.WithStrict())
	}

	if err := xconfig.Load(&conf, opts...); err != nil {
		return Config{}, err
	}

	return conf, nil
}

func runRecover(ctx context.Context, conf recovery.Config, logger *slog.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("recover", flag.ContinueOnError)
	fs.SetOutput(stderr)

	mode := fs.String("mode", string(conf.Mode), "reconstruction mode: exact or field")
	modulus := fs.String("modulus", conf.Modulus, "decimal field prime for field mode")
	order := fs.String("order", string(conf.Order), "share order: document or x")
	verify := fs.Bool("verify", conf.Verify, "check surplus shares against the polynomial")
	strict := fs.Bool("strict", conf.StrictExact, "fail when the secret is not an exact integer")
	workers := fs.Int("workers", conf.Workers, "documents processed concurrently")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return errors.New("recover: at least one share document is required")
	}

	conf.Mode = recovery.Mode(*mode)
	conf.Modulus = *modulus
	conf.Order = shareset.Order(*order)
	conf.Verify = *verify
	conf.StrictExact = *strict
	conf.Workers = *workers

	svc, err := recovery.New(conf, logger)
	if err != nil {
		return err
	}

	reports, err := svc.RecoverAll(ctx, fs.Args())
	if err != nil {
		return err
	}

	for _, report := range reports {
		suffix := ""
		if !report.Exact {
			suffix = " (inexact " + report.Fraction + ")"
		}
		fmt.Fprintf(stdout, "Secret for %s: %s%s\n", report.Path, report.Secret, suffix)
	}

	return nil
}
