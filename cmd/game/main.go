package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/hanzik/asterfield/internal/audio"
	"github.com/hanzik/asterfield/internal/config"
	"github.com/hanzik/asterfield/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	player := audio.NewPlayer(cfg.Audio.Enabled, cfg.Audio.Volume)
	defer player.Close()

	reader := bufio.NewReader(os.Stdin)
	opts := game.Options{
		Config:   cfg,
		Listener: player,
	}
	if err := game.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
