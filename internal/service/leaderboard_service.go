package service

import (
	"context"
	"encoding/json"

	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey  = "leaderboard:consistency"
	leaderboardSize = 100
)

type LeaderboardService interface {
	// Top serves the consistency ranking from the redis snapshot when
	// available, falling back to the store. The snapshot is eventually
	// consistent with writes.
	Top(ctx context.Context, limit int) ([]repository.LeaderboardEntry, error)
	// Refresh rebuilds the snapshot from the store. It is a full,
	// idempotent recomputation, never an incremental delta.
	Refresh(ctx context.Context) error
}

type leaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	redisClient     *redis.Client
}

func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepository, redisClient *redis.Client) LeaderboardService {
	return &leaderboardService{
		leaderboardRepo: leaderboardRepo,
		redisClient:     redisClient,
	}
}

func (s *leaderboardService) Top(ctx context.Context, limit int) ([]repository.LeaderboardEntry, error) {
	if limit <= 0 || limit > leaderboardSize {
		limit = leaderboardSize
	}

	if s.redisClient != nil {
		raw, err := s.redisClient.LRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
		if err == nil && len(raw) > 0 {
			entries := make([]repository.LeaderboardEntry, 0, len(raw))
			ok := true
			for _, item := range raw {
				var entry repository.LeaderboardEntry
				if err := json.Unmarshal([]byte(item), &entry); err != nil {
					ok = false
					break
				}
				entries = append(entries, entry)
			}
			if ok {
				return entries, nil
			}
		}
	}

	return s.leaderboardRepo.TopStudents(ctx, limit)
}

func (s *leaderboardService) Refresh(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}

	entries, err := s.leaderboardRepo.TopStudents(ctx, leaderboardSize)
	if err != nil {
		return err
	}

	items := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		payload, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		items = append(items, payload)
	}

	// Replace the snapshot atomically so readers never see a partial list.
	pipe := s.redisClient.TxPipeline()
	pipe.Del(ctx, leaderboardKey)
	if len(items) > 0 {
		pipe.RPush(ctx, leaderboardKey, items...)
	}
	_, err = pipe.Exec(ctx)
	return err
}
