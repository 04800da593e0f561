package domain

import (
	"context"

	"github.com/kunal12203/LifeGoal-Game/internal/domain/gamelogic"
	"github.com/kunal12203/LifeGoal-Game/internal/domain/statistic"
	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/errorx"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type UserDomain interface {
	GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error)
	UpdateGoalCategories(ctx context.Context, req *model.UpdateGoalCategoriesRequest) (*model.UpdateGoalCategoriesResponse, error)
	GetLeaderboard(ctx context.Context, req *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
}

type userDomain struct {
	userRepo    repository.UserRepository
	leaderboard statistic.Leaderboard
}

func NewUserDomain(userRepo repository.UserRepository, leaderboard statistic.Leaderboard) *userDomain {
	return &userDomain{userRepo: userRepo, leaderboard: leaderboard}
}

func (d *userDomain) GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	curve := gamelogic.NewLevelCurve(xcontext.Configs(ctx).Game)
	return &model.GetMeResponse{
		User:      model.ConvertUser(user),
		LevelInfo: levelInfo(curve, user.TotalXP),
	}, nil
}

func (d *userDomain) UpdateGoalCategories(
	ctx context.Context, req *model.UpdateGoalCategoriesRequest,
) (*model.UpdateGoalCategoriesResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	categories := []string{}
	for _, c := range req.GoalCategories {
		if c == "" {
			return nil, errorx.New(errorx.BadRequest, "Not allow an empty category")
		}

		if !slices.Contains(categories, c) {
			categories = append(categories, c)
		}
	}

	if err := d.userRepo.UpdateGoalCategories(ctx, userID, categories); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update goal categories: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateGoalCategoriesResponse{User: model.ConvertUser(user)}, nil
}

func (d *userDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	if req.Limit == 0 {
		req.Limit = 10
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > 50 {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (50)")
	}

	entries, err := d.leaderboard.GetLeaderboard(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	for i, entry := range entries {
		user, err := d.userRepo.GetByID(ctx, entry.UserID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		entries[i].Username = user.Username
		entries[i].CurrentLevel = user.CurrentLevel
	}

	return &model.GetLeaderboardResponse{Entries: entries}, nil
}
