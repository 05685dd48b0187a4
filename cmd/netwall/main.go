package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/matheus3301/netwall/internal/app"
	"github.com/matheus3301/netwall/internal/config"
	"github.com/matheus3301/netwall/internal/profile"
	"go.uber.org/fx"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "print results as JSON lines")
	scriptFlag := flag.String("script", "", "read commands from file instead of stdin")
	flag.Parse()

	cfg, err := config.LoadOrDefault(profile.ConfigPath())
	if err != nil {
		fatal(err)
	}
	if *jsonFlag {
		cfg.Console.JSON = true
	}

	name := profile.Resolve(*profileFlag, cfg)
	if err := profile.ValidateName(name); err != nil {
		fatal(err)
	}
	if err := profile.EnsureDir(name); err != nil {
		fatal(err)
	}

	var in io.Reader = os.Stdin
	if *scriptFlag != "" {
		f, err := os.Open(*scriptFlag)
		if err != nil {
			fatal(err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	a := fx.New(
		app.Module(app.Params{
			Profile: name,
			Config:  cfg,
			In:      in,
			Out:     os.Stdout,
		}),
		app.WithZapLogger(),
	)
	if err := a.Err(); err != nil {
		fatal(err)
	}

	a.Run()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
