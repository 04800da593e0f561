package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

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

type DailyRunDomain interface {
	Create(ctx context.Context, req *model.CreateDailyRunRequest) (*model.CreateDailyRunResponse, error)
	Get(ctx context.Context, req *model.GetDailyRunRequest) (*model.GetDailyRunResponse, error)
	ToggleCompletion(ctx context.Context, req *model.ToggleCompletionRequest) (*model.ToggleCompletionResponse, error)
	Lock(ctx context.Context, req *model.LockDailyRunRequest) (*model.LockDailyRunResponse, error)
}

type dailyRunDomain struct {
	dailyRunRepo repository.DailyRunRepository
	questRepo    repository.QuestRepository
	userRepo     repository.UserRepository
	streakRepo   repository.StreakRepository
	leaderboard  statistic.Leaderboard
	clock        dateutil.Clock
}

func NewDailyRunDomain(
	dailyRunRepo repository.DailyRunRepository,
	questRepo repository.QuestRepository,
	userRepo repository.UserRepository,
	streakRepo repository.StreakRepository,
	leaderboard statistic.Leaderboard,
	clock dateutil.Clock,
) *dailyRunDomain {
	return &dailyRunDomain{
		dailyRunRepo: dailyRunRepo,
		questRepo:    questRepo,
		userRepo:     userRepo,
		streakRepo:   streakRepo,
		leaderboard:  leaderboard,
		clock:        clock,
	}
}

func (d *dailyRunDomain) Create(
	ctx context.Context, req *model.CreateDailyRunRequest,
) (*model.CreateDailyRunResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	today := dateutil.Date(d.clock.Now())

	date := today
	if req.Date != "" {
		parsed, err := dateutil.ParseDate(req.Date)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid date format, expected %s", dateutil.DateFormat)
		}
		date = parsed
	}

	maxBackfill := xcontext.Configs(ctx).Game.MaxBackfillDays
	if ok, reason := gamelogic.ValidateBackfill(date, today, maxBackfill); !ok {
		return nil, errorx.New(errorx.PermissionDenied, reason)
	}

	if _, err := d.dailyRunRepo.GetByUserAndDate(ctx, userID, date); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "A run already exists for this date")
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	quests, err := d.selectQuestsForRun(ctx, user)
	if err != nil {
		return nil, err
	}

	if len(quests) == 0 {
		return nil, errorx.New(errorx.Unavailable, "No active quests available")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	run := &entity.DailyRun{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: userID,
		Date:   date,
	}

	if err := d.dailyRunRepo.Create(ctx, run); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create daily run: %v", err)
		return nil, errorx.Unknown
	}

	completions := []model.QuestCompletion{}
	for _, quest := range quests {
		completion := &entity.DailyQuestCompletion{
			Base:       entity.Base{ID: uuid.NewString()},
			DailyRunID: run.ID,
			QuestID:    quest.ID,
		}

		if err := d.dailyRunRepo.CreateCompletion(ctx, completion); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create quest completion: %v", err)
			return nil, errorx.Unknown
		}

		q := quest
		completions = append(completions, model.ConvertQuestCompletion(completion, &q))
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.CreateDailyRunResponse{
		DailyRun: model.ConvertDailyRun(run, completions),
	}, nil
}

// selectQuestsForRun filters active quests by the user's goal categories.
// When no category matches at all, the run falls back to all active core
// quests so the day is never empty.
func (d *dailyRunDomain) selectQuestsForRun(
	ctx context.Context, user *entity.User,
) ([]entity.Quest, error) {
	quests, err := d.questRepo.GetList(ctx, repository.QuestFilter{
		Categories: user.GoalCategories,
		ActiveOnly: true,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
		return nil, errorx.Unknown
	}

	if len(quests) == 0 {
		quests, err = d.questRepo.GetList(ctx, repository.QuestFilter{
			ActiveOnly: true,
			CoreOnly:   true,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get core quests: %v", err)
			return nil, errorx.Unknown
		}
	}

	return quests, nil
}

func (d *dailyRunDomain) Get(
	ctx context.Context, req *model.GetDailyRunRequest,
) (*model.GetDailyRunResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	date := dateutil.Date(d.clock.Now())
	if req.Date != "" {
		parsed, err := dateutil.ParseDate(req.Date)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid date format, expected %s", dateutil.DateFormat)
		}
		date = parsed
	}

	run, err := d.dailyRunRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found daily run")
		}

		xcontext.Logger(ctx).Errorf("Cannot get daily run: %v", err)
		return nil, errorx.Unknown
	}

	runModel, err := d.loadRunModel(ctx, run)
	if err != nil {
		return nil, err
	}

	return &model.GetDailyRunResponse{DailyRun: runModel}, nil
}

func (d *dailyRunDomain) ToggleCompletion(
	ctx context.Context, req *model.ToggleCompletionRequest,
) (*model.ToggleCompletionResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	now := d.clock.Now()
	today := dateutil.Date(now)

	completion, err := d.dailyRunRepo.GetCompletion(ctx, req.CompletionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest completion")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest completion: %v", err)
		return nil, errorx.Unknown
	}

	run, err := d.dailyRunRepo.GetByID(ctx, completion.DailyRunID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get daily run: %v", err)
		return nil, errorx.Unknown
	}

	if run.UserID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if ok, reason := gamelogic.CanEditRun(run.Date, run.IsLocked, today); !ok {
		return nil, errorx.New(errorx.PermissionDenied, reason)
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if completion.Completed {
		// Uncompleting takes back the XP but never rewinds a streak.
		if err := d.dailyRunRepo.SetUncompleted(ctx, completion.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot uncomplete quest: %v", err)
			return nil, errorx.Unknown
		}

		completion.Completed = false
		completion.XPEarned = 0
		completion.CompletedAt = sql.NullTime{}
	} else {
		completedAt := sql.NullTime{Time: now, Valid: true}
		err := d.dailyRunRepo.SetCompleted(ctx, completion.ID, completion.Quest.BaseXP, completedAt)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot complete quest: %v", err)
			return nil, errorx.Unknown
		}

		completion.Completed = true
		completion.XPEarned = completion.Quest.BaseXP
		completion.CompletedAt = completedAt

		if completion.Quest.IsCore {
			if err := d.updateStreak(ctx, userID, completion.QuestID, run.Date); err != nil {
				return nil, err
			}
		}

		if err := d.userRepo.UpdateLastActivityDate(ctx, userID, today); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update last activity date: %v", err)
			return nil, errorx.Unknown
		}
	}

	if err := d.recomputeRunTotals(ctx, run); err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	runModel, err := d.loadRunModel(ctx, run)
	if err != nil {
		return nil, err
	}

	curve := gamelogic.NewLevelCurve(xcontext.Configs(ctx).Game)
	return &model.ToggleCompletionResponse{
		Completion: model.ConvertQuestCompletion(completion, &completion.Quest),
		DailyRun:   runModel,
		LevelInfo:  levelInfo(curve, user.TotalXP),
	}, nil
}

func (d *dailyRunDomain) Lock(
	ctx context.Context, req *model.LockDailyRunRequest,
) (*model.LockDailyRunResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	now := d.clock.Now()
	today := dateutil.Date(now)

	run, err := d.dailyRunRepo.GetByID(ctx, req.RunID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found daily run")
		}

		xcontext.Logger(ctx).Errorf("Cannot get daily run: %v", err)
		return nil, errorx.Unknown
	}

	if run.UserID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if run.IsLocked {
		return nil, errorx.New(errorx.PermissionDenied, "Run is already locked")
	}

	if ok, reason := gamelogic.CanCompleteRun(run.Date, today); !ok {
		return nil, errorx.New(errorx.PermissionDenied, reason)
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.dailyRunRepo.Lock(ctx, run.ID, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.PermissionDenied, "Run is already locked")
		}

		xcontext.Logger(ctx).Errorf("Cannot lock daily run: %v", err)
		return nil, errorx.Unknown
	}

	// The total is refolded from all locked runs rather than incremented,
	// so locking is idempotent at the XP level even after decay rewrites.
	totalXP, err := d.dailyRunRepo.SumLockedXP(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum locked xp: %v", err)
		return nil, errorx.Unknown
	}

	curve := gamelogic.NewLevelCurve(xcontext.Configs(ctx).Game)
	level := curve.LevelForXP(totalXP)

	if err := d.userRepo.SetTotalXP(ctx, userID, totalXP, level); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user xp: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.UpdateLastActivityDate(ctx, userID, today); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update last activity date: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	if err := d.leaderboard.ChangeXPLeaderboard(ctx, int64(totalXP-user.TotalXP), userID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update leaderboard: %v", err)
	}

	run.IsLocked = true
	run.CompletedAt = sql.NullTime{Time: now, Valid: true}

	runModel, err := d.loadRunModel(ctx, run)
	if err != nil {
		return nil, err
	}

	return &model.LockDailyRunResponse{
		DailyRun:  runModel,
		LevelInfo: levelInfo(curve, totalXP),
	}, nil
}

func (d *dailyRunDomain) updateStreak(
	ctx context.Context, userID, questID string, completionDate time.Time,
) error {
	streak, err := d.streakRepo.Get(ctx, userID, questID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get streak: %v", err)
			return errorx.Unknown
		}

		streak = &entity.Streak{
			Base:    entity.Base{ID: uuid.NewString()},
			UserID:  userID,
			QuestID: questID,
		}

		if err := d.streakRepo.Create(ctx, streak); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create streak: %v", err)
			return errorx.Unknown
		}
	}

	var lastCompleted *time.Time
	if streak.LastCompletedDate.Valid {
		lastCompleted = &streak.LastCompletedDate.Time
	}

	current, longest := gamelogic.UpdateStreak(
		streak.CurrentStreak, streak.LongestStreak, lastCompleted, completionDate)

	err = d.streakRepo.Update(ctx, streak.ID, current, longest,
		sql.NullTime{Time: dateutil.Date(completionDate), Valid: true})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update streak: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *dailyRunDomain) recomputeRunTotals(ctx context.Context, run *entity.DailyRun) error {
	completions, err := d.dailyRunRepo.GetCompletionsByRunID(ctx, run.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest completions: %v", err)
		return errorx.Unknown
	}

	totalXP := 0
	isPerfect := len(completions) > 0
	for _, c := range completions {
		totalXP += c.XPEarned
		if !c.Completed {
			isPerfect = false
		}
	}

	if err := d.dailyRunRepo.UpdateTotals(ctx, run.ID, totalXP, isPerfect); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update run totals: %v", err)
		return errorx.Unknown
	}

	run.TotalXP = totalXP
	run.IsPerfect = isPerfect
	return nil
}

func (d *dailyRunDomain) loadRunModel(ctx context.Context, run *entity.DailyRun) (model.DailyRun, error) {
	completions, err := d.dailyRunRepo.GetCompletionsByRunID(ctx, run.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest completions: %v", err)
		return model.DailyRun{}, errorx.Unknown
	}

	questIDs := []string{}
	for _, c := range completions {
		questIDs = append(questIDs, c.QuestID)
	}

	quests, err := d.questRepo.GetByIDs(ctx, questIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
		return model.DailyRun{}, errorx.Unknown
	}

	questMap := map[string]entity.Quest{}
	for _, q := range quests {
		questMap[q.ID] = q
	}

	completionModels := []model.QuestCompletion{}
	for _, c := range completions {
		completion := c
		quest := questMap[c.QuestID]
		completionModels = append(completionModels, model.ConvertQuestCompletion(&completion, &quest))
	}

	return model.ConvertDailyRun(run, completionModels), nil
}
