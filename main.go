package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/sos-backend/internal"
	"github.com/rocketscienceinc/sos-backend/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the configuration, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cmd := &cli.Command{
		Name:  "sos",
		Usage: "play SOS in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yml", Usage: "path to the yaml config file"},
			&cli.IntFlag{Name: "size", Usage: "board size, overrides the config"},
			&cli.StringFlag{Name: "mode", Usage: "simple or general, overrides the config"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error, overrides the config"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	conf := initConfig(cmd)
	logger := initLogger(conf)

	if err := app.RunApp(ctx, logger, conf, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize config.
func initConfig(cmd *cli.Command) *config.Config {
	conf := config.MustLoad(cmd.String("config"))

	if cmd.IsSet("size") {
		conf.Game.BoardSize = cmd.Int("size")
	}

	if cmd.IsSet("mode") {
		conf.Game.Mode = cmd.String("mode")
	}

	if cmd.IsSet("log-level") {
		conf.LogLevel = cmd.String("log-level")
	}

	if err := conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid flags: %w", err))
	}

	return conf
}

// initialize logger. Logs go to stderr so they do not mix with the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(conf.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
