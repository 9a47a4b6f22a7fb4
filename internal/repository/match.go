package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/battleship-board/internal/entity"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, summary *entity.MatchSummary) error
	GetByID(ctx context.Context, id string) (*entity.MatchSummary, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &dbMatch{
		client: client,
	}
}

func matchKey(id string) string {
	return "match:" + id
}

func (that *dbMatch) CreateOrUpdate(ctx context.Context, summary *entity.MatchSummary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	if err = that.client.Set(ctx, matchKey(summary.ID), summaryJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.MatchSummary, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by ID: %w", err)
	}

	var summary entity.MatchSummary
	if err = json.Unmarshal([]byte(response), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &summary, nil
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, matchKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match by ID: %w", err)
	}

	if deleted == 0 {
		return ErrMatchNotFound
	}

	return nil
}
