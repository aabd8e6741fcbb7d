package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"github.com/redis/go-redis/v9"
)

type DoubtService interface {
	// Record stores a doubt or answer inside a relation. The sender must
	// be the relation's student (DOUBT) or trainer (ANSWER); the receiver
	// is always the other side. The insert and the relation counter
	// increment are atomic.
	Record(ctx context.Context, fromUserID, relationID uuid.UUID, text string, doubtType model.DoubtType) (*model.Doubt, error)
	ListByRelation(ctx context.Context, relationID uuid.UUID) ([]*model.Doubt, error)
}

type doubtService struct {
	doubtRepo    repository.DoubtRepository
	relationRepo repository.RelationRepository
	redisClient  *redis.Client
}

func NewDoubtService(doubtRepo repository.DoubtRepository, relationRepo repository.RelationRepository, redisClient *redis.Client) DoubtService {
	return &doubtService{
		doubtRepo:    doubtRepo,
		relationRepo: relationRepo,
		redisClient:  redisClient,
	}
}

// DoubtChannel is the redis pub/sub channel for a relation's live feed.
func DoubtChannel(relationID uuid.UUID) string {
	return fmt.Sprintf("relation_doubts:%s", relationID.String())
}

func (s *doubtService) Record(ctx context.Context, fromUserID, relationID uuid.UUID, text string, doubtType model.DoubtType) (*model.Doubt, error) {
	if text == "" {
		return nil, apperror.ErrValidation
	}
	if doubtType != model.DoubtTypeDoubt && doubtType != model.DoubtTypeAnswer {
		return nil, apperror.ErrValidation
	}

	relation, err := s.relationRepo.FindByID(ctx, relationID)
	if err != nil {
		return nil, err
	}
	if relation.Trainer == nil || relation.Student == nil {
		return nil, apperror.ErrNotFound
	}

	studentUserID := relation.Student.UserID
	trainerUserID := relation.Trainer.UserID

	var toUserID uuid.UUID
	switch doubtType {
	case model.DoubtTypeDoubt:
		if fromUserID != studentUserID {
			return nil, apperror.ErrValidation
		}
		toUserID = trainerUserID
	case model.DoubtTypeAnswer:
		if fromUserID != trainerUserID {
			return nil, apperror.ErrValidation
		}
		toUserID = studentUserID
	}

	doubt := &model.Doubt{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		RelationID: relationID,
		Text:       text,
		Type:       doubtType,
	}

	if err := s.doubtRepo.CreateWithCounter(ctx, doubt); err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if payload, err := json.Marshal(doubt); err == nil {
			s.redisClient.Publish(ctx, DoubtChannel(relationID), payload)
		}
	}

	return doubt, nil
}

func (s *doubtService) ListByRelation(ctx context.Context, relationID uuid.UUID) ([]*model.Doubt, error) {
	if _, err := s.relationRepo.FindByID(ctx, relationID); err != nil {
		return nil, err
	}
	return s.doubtRepo.ListByRelation(ctx, relationID)
}
