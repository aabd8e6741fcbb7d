package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeUnlockIsIdempotent(t *testing.T) {
	badges := newFakeBadgeRepo()
	svc := NewBadgeService(badges)
	ctx := context.Background()
	studentID := uuid.New()

	first, err := svc.Unlock(ctx, studentID, "leet_1", "First Problem", "Solved your first LeetCode problem")
	require.NoError(t, err)

	second, err := svc.Unlock(ctx, studentID, "leet_1", "First Problem", "Solved your first LeetCode problem")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.UnlockedAt, second.UnlockedAt)

	listed, err := svc.ListByStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestBadgeEvaluateThresholds(t *testing.T) {
	badges := newFakeBadgeRepo()
	svc := NewBadgeService(badges)
	ctx := context.Background()

	student := &model.Student{
		ID:                     uuid.New(),
		LeetcodeProblemsSolved: 100,
		LeetcodeDailyStreak:    7,
		TotalCodeHours:         100,
	}

	require.NoError(t, svc.Evaluate(ctx, student))

	listed, err := svc.ListByStudent(ctx, student.ID)
	require.NoError(t, err)

	keys := make([]string, 0, len(listed))
	for _, badge := range listed {
		keys = append(keys, badge.BadgeKey)
	}
	assert.ElementsMatch(t, []string{"leet_1", "leet_50", "leet_100", "streak_3", "streak_7", "hours_100"}, keys)
}

func TestBadgeEvaluateBelowThresholds(t *testing.T) {
	badges := newFakeBadgeRepo()
	svc := NewBadgeService(badges)
	ctx := context.Background()

	student := &model.Student{ID: uuid.New(), LeetcodeDailyStreak: 2}
	require.NoError(t, svc.Evaluate(ctx, student))

	listed, err := svc.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
