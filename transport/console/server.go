package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

var errQuit = errors.New("quit")

type uGame interface {
	StartNewGame(size int, mode string) (entity.GameState, error)
	Reset() entity.GameState
	MakeTurn(row, col int, symbol string) (entity.Move, error)
	State() entity.GameState
}

type handler func(args []string, out io.Writer) error

// Server - a line based text front end for one game.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		handlers: make(map[string]handler),
	}

	server.handlers["move"] = server.handleMove
	server.handlers["new"] = server.handleNewGame
	server.handlers["reset"] = server.handleReset
	server.handlers["board"] = server.handleBoard
	server.handlers["score"] = server.handleScore
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Start - reads commands from in until it is exhausted, "quit" is entered or ctx is canceled.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	that.write(out, renderState(that.uGame.State()))
	that.write(out, helpText)

	for {
		that.write(out, "> ")

		select {
		case <-ctx.Done():
			that.logger.Info("Console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				return nil
			}

			if err := that.dispatch(line, out); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}

				return err
			}
		}
	}
}

// dispatch - runs one command. Only write failures are returned, game errors are reported to the player.
func (that *Server) dispatch(line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command := strings.ToLower(fields[0])

	handle, ok := that.handlers[command]
	if !ok {
		that.logger.Debug("Unknown command", "command", command)
		_, err := fmt.Fprintf(out, "Error: %v: %s (type \"help\")\n", apperror.ErrUnknownCommand, command)
		return err
	}

	return handle(fields[1:], out)
}

func (that *Server) write(out io.Writer, text string) {
	if _, err := io.WriteString(out, text); err != nil {
		that.logger.Error("could not write to console", "error", err)
	}
}
