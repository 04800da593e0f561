package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/kunal12203/LifeGoal-Game/internal/domain/gamelogic"
	"github.com/kunal12203/LifeGoal-Game/internal/domain/statistic"
	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
	"github.com/kunal12203/LifeGoal-Game/pkg/errorx"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"gorm.io/gorm"
)

type GoalDomain interface {
	Create(ctx context.Context, req *model.CreateGoalRequest) (*model.CreateGoalResponse, error)
	Get(ctx context.Context, req *model.GetGoalRequest) (*model.GetGoalResponse, error)
	GetList(ctx context.Context, req *model.GetListGoalRequest) (*model.GetListGoalResponse, error)
	Update(ctx context.Context, req *model.UpdateGoalRequest) (*model.UpdateGoalResponse, error)
	Delete(ctx context.Context, req *model.DeleteGoalRequest) (*model.DeleteGoalResponse, error)
	AddMilestone(ctx context.Context, req *model.AddMilestoneRequest) (*model.AddMilestoneResponse, error)
	UpdateMilestone(ctx context.Context, req *model.UpdateMilestoneRequest) (*model.UpdateMilestoneResponse, error)
	DeleteMilestone(ctx context.Context, req *model.DeleteMilestoneRequest) (*model.DeleteMilestoneResponse, error)
	ToggleMilestone(ctx context.Context, req *model.ToggleMilestoneRequest) (*model.ToggleMilestoneResponse, error)
}

type goalDomain struct {
	goalRepo    repository.GoalRepository
	userRepo    repository.UserRepository
	leaderboard statistic.Leaderboard
}

func NewGoalDomain(
	goalRepo repository.GoalRepository,
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
) *goalDomain {
	return &goalDomain{
		goalRepo:    goalRepo,
		userRepo:    userRepo,
		leaderboard: leaderboard,
	}
}

func (d *goalDomain) Create(
	ctx context.Context, req *model.CreateGoalRequest,
) (*model.CreateGoalResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	targetDate := sql.NullTime{}
	if req.TargetDate != "" {
		parsed, err := dateutil.ParseDate(req.TargetDate)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid date format, expected %s", dateutil.DateFormat)
		}

		targetDate = sql.NullTime{Time: parsed, Valid: true}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	goal := &entity.Goal{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		Title:       req.Title,
		Description: []byte(req.Description),
		Category:    req.Category,
		TargetDate:  targetDate,
		XPReward:    xcontext.Configs(ctx).Game.GoalReward,
	}

	if err := d.goalRepo.Create(ctx, goal); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create goal: %v", err)
		return nil, errorx.Unknown
	}

	milestones := []entity.Milestone{}
	for i, title := range req.Milestones {
		milestone := &entity.Milestone{
			Base:       entity.Base{ID: uuid.NewString()},
			GoalID:     goal.ID,
			Title:      title,
			OrderIndex: i,
		}

		if err := d.goalRepo.CreateMilestone(ctx, milestone); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create milestone: %v", err)
			return nil, errorx.Unknown
		}

		milestones = append(milestones, *milestone)
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.CreateGoalResponse{Goal: model.ConvertGoal(goal, milestones)}, nil
}

func (d *goalDomain) Get(
	ctx context.Context, req *model.GetGoalRequest,
) (*model.GetGoalResponse, error) {
	goal, err := d.getOwnedGoal(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	milestones, err := d.goalRepo.GetMilestonesByGoalID(ctx, goal.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get milestones: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetGoalResponse{Goal: model.ConvertGoal(goal, milestones)}, nil
}

func (d *goalDomain) GetList(
	ctx context.Context, req *model.GetListGoalRequest,
) (*model.GetListGoalResponse, error) {
	goals, err := d.goalRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get goals: %v", err)
		return nil, errorx.Unknown
	}

	modelGoals := []model.Goal{}
	for _, g := range goals {
		goal := g
		milestones, err := d.goalRepo.GetMilestonesByGoalID(ctx, goal.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get milestones: %v", err)
			return nil, errorx.Unknown
		}

		modelGoals = append(modelGoals, model.ConvertGoal(&goal, milestones))
	}

	return &model.GetListGoalResponse{Goals: modelGoals}, nil
}

func (d *goalDomain) Update(
	ctx context.Context, req *model.UpdateGoalRequest,
) (*model.UpdateGoalResponse, error) {
	goal, err := d.getOwnedGoal(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = []byte(req.Description)
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.TargetDate != "" {
		parsed, err := dateutil.ParseDate(req.TargetDate)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid date format, expected %s", dateutil.DateFormat)
		}

		updates["target_date"] = sql.NullTime{Time: parsed, Valid: true}
	}

	if len(updates) > 0 {
		if err := d.goalRepo.Update(ctx, goal.ID, updates); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update goal: %v", err)
			return nil, errorx.Unknown
		}
	}

	goal, err = d.goalRepo.GetByID(ctx, goal.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get goal: %v", err)
		return nil, errorx.Unknown
	}

	milestones, err := d.goalRepo.GetMilestonesByGoalID(ctx, goal.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get milestones: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateGoalResponse{Goal: model.ConvertGoal(goal, milestones)}, nil
}

func (d *goalDomain) Delete(
	ctx context.Context, req *model.DeleteGoalRequest,
) (*model.DeleteGoalResponse, error) {
	goal, err := d.getOwnedGoal(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.goalRepo.DeleteMilestonesByGoalID(ctx, goal.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete milestones: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.goalRepo.Delete(ctx, goal.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete goal: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.DeleteGoalResponse{}, nil
}

func (d *goalDomain) AddMilestone(
	ctx context.Context, req *model.AddMilestoneRequest,
) (*model.AddMilestoneResponse, error) {
	goal, err := d.getOwnedGoal(ctx, req.GoalID)
	if err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	existing, err := d.goalRepo.GetMilestonesByGoalID(ctx, goal.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get milestones: %v", err)
		return nil, errorx.Unknown
	}

	milestone := &entity.Milestone{
		Base:       entity.Base{ID: uuid.NewString()},
		GoalID:     goal.ID,
		Title:      req.Title,
		OrderIndex: len(existing),
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.goalRepo.CreateMilestone(ctx, milestone); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create milestone: %v", err)
		return nil, errorx.Unknown
	}

	// A completed goal reopens when an unfinished milestone is added. The
	// issued reward stays issued.
	if goal.IsCompleted {
		if err := d.goalRepo.Update(ctx, goal.ID, map[string]any{"is_completed": false}); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot reopen goal: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.AddMilestoneResponse{Milestone: model.ConvertMilestone(milestone)}, nil
}

func (d *goalDomain) UpdateMilestone(
	ctx context.Context, req *model.UpdateMilestoneRequest,
) (*model.UpdateMilestoneResponse, error) {
	milestone, _, err := d.getOwnedMilestone(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	if err := d.goalRepo.UpdateMilestone(ctx, milestone.ID, map[string]any{"title": req.Title}); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update milestone: %v", err)
		return nil, errorx.Unknown
	}

	milestone.Title = req.Title
	return &model.UpdateMilestoneResponse{Milestone: model.ConvertMilestone(milestone)}, nil
}

func (d *goalDomain) DeleteMilestone(
	ctx context.Context, req *model.DeleteMilestoneRequest,
) (*model.DeleteMilestoneResponse, error) {
	milestone, goal, err := d.getOwnedMilestone(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.goalRepo.DeleteMilestone(ctx, milestone.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete milestone: %v", err)
		return nil, errorx.Unknown
	}

	// Removing the last unfinished milestone may complete the goal.
	if _, err := d.refreshGoalCompletion(ctx, goal); err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.DeleteMilestoneResponse{}, nil
}

func (d *goalDomain) ToggleMilestone(
	ctx context.Context, req *model.ToggleMilestoneRequest,
) (*model.ToggleMilestoneResponse, error) {
	milestone, goal, err := d.getOwnedMilestone(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	milestone.IsCompleted = !milestone.IsCompleted
	err = d.goalRepo.UpdateMilestone(ctx, milestone.ID,
		map[string]any{"is_completed": milestone.IsCompleted})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update milestone: %v", err)
		return nil, errorx.Unknown
	}

	xpAwarded, err := d.refreshGoalCompletion(ctx, goal)
	if err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	if xpAwarded > 0 {
		if err := d.leaderboard.ChangeXPLeaderboard(ctx, int64(xpAwarded), goal.UserID); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot update leaderboard: %v", err)
		}
	}

	goal, err = d.goalRepo.GetByID(ctx, goal.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get goal: %v", err)
		return nil, errorx.Unknown
	}

	milestones, err := d.goalRepo.GetMilestonesByGoalID(ctx, goal.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get milestones: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ToggleMilestoneResponse{
		Milestone: model.ConvertMilestone(milestone),
		Goal:      model.ConvertGoal(goal, milestones),
		XPAwarded: xpAwarded,
	}, nil
}

// refreshGoalCompletion recomputes is_completed from the milestones and
// issues the one-shot XP reward when the goal completes for the first time.
func (d *goalDomain) refreshGoalCompletion(ctx context.Context, goal *entity.Goal) (int, error) {
	milestones, err := d.goalRepo.GetMilestonesByGoalID(ctx, goal.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get milestones: %v", err)
		return 0, errorx.Unknown
	}

	completed := len(milestones) > 0
	for _, m := range milestones {
		if !m.IsCompleted {
			completed = false
			break
		}
	}

	if completed == goal.IsCompleted {
		return 0, nil
	}

	if err := d.goalRepo.Update(ctx, goal.ID, map[string]any{"is_completed": completed}); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update goal completion: %v", err)
		return 0, errorx.Unknown
	}
	goal.IsCompleted = completed

	if !completed {
		return 0, nil
	}

	rewarded, err := d.goalRepo.MarkRewarded(ctx, goal.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark goal rewarded: %v", err)
		return 0, errorx.Unknown
	}

	if !rewarded {
		return 0, nil
	}

	user, err := d.userRepo.GetByID(ctx, goal.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return 0, errorx.Unknown
	}

	curve := gamelogic.NewLevelCurve(xcontext.Configs(ctx).Game)
	newTotal := user.TotalXP + goal.XPReward
	if err := d.userRepo.UpdateXP(ctx, goal.UserID, goal.XPReward, curve.LevelForXP(newTotal)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot award goal xp: %v", err)
		return 0, errorx.Unknown
	}

	return goal.XPReward, nil
}

func (d *goalDomain) getOwnedGoal(ctx context.Context, id string) (*entity.Goal, error) {
	goal, err := d.goalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found goal")
		}

		xcontext.Logger(ctx).Errorf("Cannot get goal: %v", err)
		return nil, errorx.Unknown
	}

	if goal.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return goal, nil
}

func (d *goalDomain) getOwnedMilestone(
	ctx context.Context, id string,
) (*entity.Milestone, *entity.Goal, error) {
	milestone, err := d.goalRepo.GetMilestoneByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errorx.New(errorx.NotFound, "Not found milestone")
		}

		xcontext.Logger(ctx).Errorf("Cannot get milestone: %v", err)
		return nil, nil, errorx.Unknown
	}

	goal, err := d.getOwnedGoal(ctx, milestone.GoalID)
	if err != nil {
		return nil, nil, err
	}

	return milestone, goal, nil
}
