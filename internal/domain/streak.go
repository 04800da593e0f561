package domain

import (
	"context"

	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/errorx"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"github.com/pkg/math"
)

type StreakDomain interface {
	GetMyStreaks(ctx context.Context, req *model.GetMyStreaksRequest) (*model.GetMyStreaksResponse, error)
	GetSummary(ctx context.Context, req *model.GetStreakSummaryRequest) (*model.GetStreakSummaryResponse, error)
}

type streakDomain struct {
	streakRepo repository.StreakRepository
	questRepo  repository.QuestRepository
}

func NewStreakDomain(
	streakRepo repository.StreakRepository,
	questRepo repository.QuestRepository,
) *streakDomain {
	return &streakDomain{streakRepo: streakRepo, questRepo: questRepo}
}

func (d *streakDomain) GetMyStreaks(
	ctx context.Context, req *model.GetMyStreaksRequest,
) (*model.GetMyStreaksResponse, error) {
	streaks, err := d.streakRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get streaks: %v", err)
		return nil, errorx.Unknown
	}

	questIDs := []string{}
	for _, s := range streaks {
		questIDs = append(questIDs, s.QuestID)
	}

	quests, err := d.questRepo.GetByIDs(ctx, questIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
		return nil, errorx.Unknown
	}

	titles := map[string]string{}
	for _, q := range quests {
		titles[q.ID] = q.Title
	}

	modelStreaks := []model.Streak{}
	for _, s := range streaks {
		streak := s
		modelStreaks = append(modelStreaks, model.ConvertStreak(&streak, titles[s.QuestID]))
	}

	return &model.GetMyStreaksResponse{Streaks: modelStreaks}, nil
}

func (d *streakDomain) GetSummary(
	ctx context.Context, req *model.GetStreakSummaryRequest,
) (*model.GetStreakSummaryResponse, error) {
	streaks, err := d.streakRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get streaks: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetStreakSummaryResponse{}
	for _, s := range streaks {
		resp.BestCurrentStreak = math.MaxInt(resp.BestCurrentStreak, s.CurrentStreak)
		resp.BestLongestStreak = math.MaxInt(resp.BestLongestStreak, s.LongestStreak)
		if s.CurrentStreak > 0 {
			resp.ActiveStreaks++
		}
	}

	return resp, nil
}
