package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"contact-manager/app"
	"contact-manager/appinterface"
	"contact-manager/console"
	"contact-manager/logger"

	"github.com/jessevdk/go-flags"
	hd "github.com/mitchellh/go-homedir"
)

type Args struct {
	ConfigFile string `short:"c" long:"config-file" description:"Contact manager config file" default:"~/.contact-manager.toml"`
	Strategy   string `short:"s" long:"strategy" description:"Name search strategy: exact or contains"`
	LogLevel   string `long:"log-level" description:"Log from debug, info, warn or error"`
	LogFormat  string `long:"log-format" description:"Format logs as text or json"`
	LogFile    string `long:"log-file" description:"Append logs to file instead of stderr"`

	config   *Config
	strategy appinterface.SearchStrategy
}

func (a *Args) validate() (err error) {
	if a.ConfigFile == "" {
		return errors.New("error: config-file is required")
	}
	cf, err := hd.Expand(a.ConfigFile)
	if err != nil {
		return fmt.Errorf("error: could not expand config-file path[%s]: %v", a.ConfigFile, err)
	}
	a.ConfigFile = cf
	a.config, err = loadConfig(a.ConfigFile)
	if err != nil {
		return fmt.Errorf("error: error occurred loading the config file[%s]: %v", a.ConfigFile, err)
	}

	if a.Strategy == "" {
		a.Strategy = a.config.Strategy
	}
	a.strategy, err = app.StrategyByName(a.Strategy)
	if err != nil {
		return fmt.Errorf("error: invalid strategy: %v", err)
	}

	if a.LogLevel != "" {
		a.config.Log.Level = a.LogLevel
	}
	if a.LogFormat != "" {
		a.config.Log.Format = a.LogFormat
	}
	if a.LogFile != "" {
		a.config.Log.File = a.LogFile
	}
	return nil
}

// parseExitCode maps a flag parsing error to the process exit status.
// Asking for help is not a failure.
func parseExitCode(err error) int {
	var flagsErr *flags.Error
	if err == nil || (errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp) {
		return 0
	}
	return 1
}

func main() {
	var args Args
	parser := flags.NewParser(&args, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		// flags.Default has already printed the message
		os.Exit(parseExitCode(err))
	}
	err = args.validate()
	if err != nil {
		log.Fatalf("%v\n", err)
		return
	}

	lg := logger.New(&args.config.Log)
	mgr := app.NewLoggedManager(app.NewApp(nil), lg)
	mgr.SetSearchStrategy(args.strategy)
	for _, c := range args.config.Contacts {
		mgr.AddContact(c)
	}
	lg.Info("contact manager started", "config", args.ConfigFile, "strategy", args.Strategy, "preloaded", len(args.config.Contacts))

	err = console.New(os.Stdin, os.Stdout, mgr, lg).Run()
	if err != nil {
		log.Fatalf("error: reading input: %v\n", err)
	}
}
