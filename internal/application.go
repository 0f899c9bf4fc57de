package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"golang.org/x/term"
)

// RunApp - runs a single command named by args[0] and writes its result to out.
func RunApp(logger *slog.Logger, conf *config.Config, args []string, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var solutions repository.SolutionRepository

	if conf.Cache.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		solutions = repository.NewSolutionRepository(redisStorage.Connection, conf.Cache.TTL)
		log.Debug("solution cache enabled", "addr", conf.Redis.GetRedisAddr(), "ttl", conf.Cache.TTL)
	}

	engine := usecase.NewEngine(logger, solutions)
	dispatcher := NewDispatcher(engine, out, !conf.NoColor && isTerminal(out))

	if err := dispatcher.Run(ctx, args); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
