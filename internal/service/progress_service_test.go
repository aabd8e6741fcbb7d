package service

import (
	"context"
	"testing"

	"github.com/placementhub/placement-mentor-hub/internal/dto"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type progressEnv struct {
	students *fakeStudentRepo
	progress *fakeProgressRepo
	badges   *fakeBadgeRepo
	svc      ProgressService

	studentUser *model.User
	student     *model.Student
}

func newProgressEnv(t *testing.T) *progressEnv {
	t.Helper()

	users := newFakeUserRepo()
	students := newFakeStudentRepo()
	progress := newFakeProgressRepo()
	badges := newFakeBadgeRepo()

	studentUser := &model.User{Name: "Asha", Email: "asha@example.com", Role: model.RoleStudent}
	require.NoError(t, users.Create(context.Background(), studentUser, nil, nil))
	student := &model.Student{UserID: studentUser.ID}
	require.NoError(t, students.Create(context.Background(), student))

	return &progressEnv{
		students:    students,
		progress:    progress,
		badges:      badges,
		svc:         NewProgressService(progress, students, NewBadgeService(badges), nil),
		studentUser: studentUser,
		student:     student,
	}
}

func intPtr(v int) *int { return &v }

func TestProgressRecordUpsertsSingleRow(t *testing.T) {
	env := newProgressEnv(t)
	ctx := context.Background()

	first, err := env.svc.Record(ctx, env.studentUser.ID, dto.RecordProgressInput{
		SkillName: "DSA", TopicName: "Arrays", DoneProblemCount: 3, ProblemCount: 10,
	})
	require.NoError(t, err)

	second, err := env.svc.Record(ctx, env.studentUser.ID, dto.RecordProgressInput{
		SkillName: "DSA", TopicName: "Arrays", DoneProblemCount: 7, ProblemCount: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, env.progress.rows, 1)
	assert.Equal(t, 7, second.DoneProblemCount)
}

func TestProgressRecordRejectsInvalidCounts(t *testing.T) {
	env := newProgressEnv(t)
	ctx := context.Background()

	cases := []dto.RecordProgressInput{
		{SkillName: "DSA", TopicName: "Trees", DoneProblemCount: 11, ProblemCount: 10},
		{SkillName: "DSA", TopicName: "Trees", DoneProblemCount: -1, ProblemCount: 10},
		{SkillName: "DSA", TopicName: "Trees", DoneProblemCount: 0, ProblemCount: -5},
	}
	for _, input := range cases {
		_, err := env.svc.Record(ctx, env.studentUser.ID, input)
		assert.ErrorIs(t, err, apperror.ErrInvalidProgress)
	}

	// Rejected writes leave no row behind.
	assert.Empty(t, env.progress.rows)
}

func TestProgressInvalidUpdateLeavesRowUntouched(t *testing.T) {
	env := newProgressEnv(t)
	ctx := context.Background()

	_, err := env.svc.Record(ctx, env.studentUser.ID, dto.RecordProgressInput{
		SkillName: "DBMS", TopicName: "Joins", DoneProblemCount: 4, ProblemCount: 8,
	})
	require.NoError(t, err)

	_, err = env.svc.Record(ctx, env.studentUser.ID, dto.RecordProgressInput{
		SkillName: "DBMS", TopicName: "Joins", DoneProblemCount: 9, ProblemCount: 8,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidProgress)

	row, err := env.progress.Find(ctx, env.student.ID, "DBMS", "Joins")
	require.NoError(t, err)
	assert.Equal(t, 4, row.DoneProblemCount)
	assert.Equal(t, 8, row.ProblemCount)
}

func TestUpdateStatsCountersOnlyMoveForward(t *testing.T) {
	env := newProgressEnv(t)
	ctx := context.Background()

	_, err := env.svc.UpdateStats(ctx, env.studentUser.ID, dto.UpdateStudentStatsInput{
		LeetcodeProblemsSolved: intPtr(20),
		LeetcodeDailyStreak:    intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 20, env.student.LeetcodeProblemsSolved)

	_, err = env.svc.UpdateStats(ctx, env.studentUser.ID, dto.UpdateStudentStatsInput{
		LeetcodeProblemsSolved: intPtr(10),
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, 20, env.student.LeetcodeProblemsSolved)

	// An explicit reset is the one way a counter may drop, e.g. a broken
	// streak going back to zero.
	_, err = env.svc.UpdateStats(ctx, env.studentUser.ID, dto.UpdateStudentStatsInput{
		LeetcodeDailyStreak: intPtr(0),
		Reset:               true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, env.student.LeetcodeDailyStreak)
}

func TestUpdateStatsRatingMayDrop(t *testing.T) {
	env := newProgressEnv(t)
	ctx := context.Background()

	_, err := env.svc.UpdateStats(ctx, env.studentUser.ID, dto.UpdateStudentStatsInput{
		LeetcodeRating: intPtr(1600),
	})
	require.NoError(t, err)

	_, err = env.svc.UpdateStats(ctx, env.studentUser.ID, dto.UpdateStudentStatsInput{
		LeetcodeRating: intPtr(1500),
	})
	require.NoError(t, err)
	assert.Equal(t, 1500, env.student.LeetcodeRating)
}

func TestUpdateStatsUnlocksBadges(t *testing.T) {
	env := newProgressEnv(t)
	ctx := context.Background()

	_, err := env.svc.UpdateStats(ctx, env.studentUser.ID, dto.UpdateStudentStatsInput{
		LeetcodeProblemsSolved: intPtr(55),
		LeetcodeDailyStreak:    intPtr(3),
	})
	require.NoError(t, err)

	badges, err := env.badges.ListByStudent(ctx, env.student.ID)
	require.NoError(t, err)

	keys := make([]string, 0, len(badges))
	for _, badge := range badges {
		keys = append(keys, badge.BadgeKey)
	}
	assert.ElementsMatch(t, []string{"leet_1", "leet_50", "streak_3"}, keys)

	// A second pass over the same stats must not mint duplicates.
	_, err = env.svc.UpdateStats(ctx, env.studentUser.ID, dto.UpdateStudentStatsInput{
		LeetcodeProblemsSolved: intPtr(60),
	})
	require.NoError(t, err)

	badges, err = env.badges.ListByStudent(ctx, env.student.ID)
	require.NoError(t, err)
	assert.Len(t, badges, 3)
}
