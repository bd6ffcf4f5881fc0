// simbar is a minimal wlroots compositor that draws a rounded status
// bar on every output.
package main

import (
	"flag"
	"fmt"
	"os"

	"deedles.dev/wlr"
)

func run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	bar, err := cfg.Bar()
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	debug := flag.Bool("debug", cfg.Debug, "enable debug logging")
	apply := bar.Flags()
	flag.Parse()
	apply()

	level := wlr.Info
	if *debug {
		level = wlr.Debug
	}
	wlr.LogInit(level, nil)

	server := NewServer(bar)
	err = server.Start()
	if err != nil {
		return err
	}
	server.Run()

	return nil
}

func main() {
	err := run()
	if err != nil {
		wlr.Log(wlr.Error, "%v", err)
		fmt.Fprintf(os.Stderr, "simbar: %v\n", err)
		os.Exit(1)
	}
}
