package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrSolutionNotFound = errors.New("solution not found")

const solutionKeyPrefix = "solution:"

type SolutionRepository interface {
	Save(ctx context.Context, board entity.Board, decision tictactoe.Decision) error
	GetByBoard(ctx context.Context, board entity.Board) (tictactoe.Decision, error)
	DeleteByBoard(ctx context.Context, board entity.Board) error
}

type dbSolution struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSolutionRepository stores decisions keyed by board. A zero ttl keeps them forever.
func NewSolutionRepository(client *redis.Client, ttl time.Duration) SolutionRepository {
	return &dbSolution{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSolution) Save(ctx context.Context, board entity.Board, decision tictactoe.Decision) error {
	decisionJSON, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("could not marshal decision: %w", err)
	}

	err = that.client.Set(ctx, solutionKey(board), decisionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}

func (that *dbSolution) GetByBoard(ctx context.Context, board entity.Board) (tictactoe.Decision, error) {
	response, err := that.client.Get(ctx, solutionKey(board)).Result()

	if errors.Is(err, redis.Nil) {
		return tictactoe.Decision{}, ErrSolutionNotFound
	}

	if err != nil {
		return tictactoe.Decision{}, fmt.Errorf("failed to get solution: %w", err)
	}

	var decision tictactoe.Decision
	if err = json.Unmarshal([]byte(response), &decision); err != nil {
		return tictactoe.Decision{}, fmt.Errorf("failed to unmarshal solution: %w", err)
	}

	return decision, nil
}

func (that *dbSolution) DeleteByBoard(ctx context.Context, board entity.Board) error {
	deleted, err := that.client.Del(ctx, solutionKey(board)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}

	if deleted == 0 {
		return ErrSolutionNotFound
	}

	return nil
}

func solutionKey(board entity.Board) string {
	return solutionKeyPrefix + board.String()
}
