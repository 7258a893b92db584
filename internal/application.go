package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/sos-backend/internal/config"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
	"github.com/rocketscienceinc/sos-backend/internal/usecase"
	"github.com/rocketscienceinc/sos-backend/transport/console"
)

// RunApp - runs the application.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game, err := sos.New(conf.Game.BoardSize, conf.Game.GetMode())
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, game)
	consoleServer := console.New(logger, gameManager)

	log.Info("Starting console", "size", game.Size(), "mode", game.Mode().String())

	if err = consoleServer.Start(ctx, in, out); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}
