package domain

import (
	"context"
	"errors"
	"fmt"

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

// daysRequiredForUnlock is how many qualifying weekday runs unlock the
// weekly challenge. A day qualifies when its run is locked and every core
// quest in it is completed.
const daysRequiredForUnlock = 5

type WeeklyChallengeDomain interface {
	GetStatus(ctx context.Context, req *model.GetWeeklyChallengeStatusRequest) (*model.GetWeeklyChallengeStatusResponse, error)
	Complete(ctx context.Context, req *model.CompleteWeeklyChallengeRequest) (*model.CompleteWeeklyChallengeResponse, error)
	GetHistory(ctx context.Context, req *model.GetWeeklyChallengeHistoryRequest) (*model.GetWeeklyChallengeHistoryResponse, error)
}

type weeklyChallengeDomain struct {
	challengeRepo repository.WeeklyChallengeRepository
	dailyRunRepo  repository.DailyRunRepository
	questRepo     repository.QuestRepository
	userRepo      repository.UserRepository
	leaderboard   statistic.Leaderboard
	clock         dateutil.Clock
}

func NewWeeklyChallengeDomain(
	challengeRepo repository.WeeklyChallengeRepository,
	dailyRunRepo repository.DailyRunRepository,
	questRepo repository.QuestRepository,
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
	clock dateutil.Clock,
) *weeklyChallengeDomain {
	return &weeklyChallengeDomain{
		challengeRepo: challengeRepo,
		dailyRunRepo:  dailyRunRepo,
		questRepo:     questRepo,
		userRepo:      userRepo,
		leaderboard:   leaderboard,
		clock:         clock,
	}
}

func (d *weeklyChallengeDomain) GetStatus(
	ctx context.Context, req *model.GetWeeklyChallengeStatusRequest,
) (*model.GetWeeklyChallengeStatusResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	challenge, err := d.getOrCreateChallenge(ctx)
	if err != nil {
		return nil, err
	}

	completion, err := d.getOrCreateCompletion(ctx, userID, challenge.ID)
	if err != nil {
		return nil, err
	}

	// Unlocking is one-way, so an unlocked challenge never recounts the week.
	if completion.IsUnlocked {
		return &model.GetWeeklyChallengeStatusResponse{
			Challenge:     model.ConvertWeeklyChallenge(challenge),
			DaysCompleted: daysRequiredForUnlock,
			DaysRequired:  daysRequiredForUnlock,
			IsUnlocked:    true,
			IsCompleted:   completion.IsCompleted,
		}, nil
	}

	daysCompleted, err := d.countQualifyingDays(ctx, userID)
	if err != nil {
		return nil, err
	}

	if daysCompleted >= daysRequiredForUnlock {
		if err := d.challengeRepo.Unlock(ctx, completion.ID, d.clock.Now()); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot unlock weekly challenge: %v", err)
			return nil, errorx.Unknown
		}

		completion.IsUnlocked = true
	}

	return &model.GetWeeklyChallengeStatusResponse{
		Challenge:     model.ConvertWeeklyChallenge(challenge),
		DaysCompleted: daysCompleted,
		DaysRequired:  daysRequiredForUnlock,
		IsUnlocked:    completion.IsUnlocked,
		IsCompleted:   completion.IsCompleted,
	}, nil
}

func (d *weeklyChallengeDomain) Complete(
	ctx context.Context, req *model.CompleteWeeklyChallengeRequest,
) (*model.CompleteWeeklyChallengeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	now := d.clock.Now()

	challenge, err := d.getOrCreateChallenge(ctx)
	if err != nil {
		return nil, err
	}

	completion, err := d.getOrCreateCompletion(ctx, userID, challenge.ID)
	if err != nil {
		return nil, err
	}

	if completion.IsCompleted {
		return nil, errorx.New(errorx.AlreadyExists, "Weekly challenge is already completed")
	}

	if !completion.IsUnlocked {
		daysCompleted, err := d.countQualifyingDays(ctx, userID)
		if err != nil {
			return nil, err
		}

		if daysCompleted < daysRequiredForUnlock {
			return nil, errorx.New(errorx.Unavailable,
				"Challenge is locked, complete %d days first", daysRequiredForUnlock)
		}

		if err := d.challengeRepo.Unlock(ctx, completion.ID, now); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot unlock weekly challenge: %v", err)
			return nil, errorx.Unknown
		}
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.challengeRepo.Complete(ctx, completion.ID, challenge.XPReward, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.AlreadyExists, "Weekly challenge is already completed")
		}

		xcontext.Logger(ctx).Errorf("Cannot complete weekly challenge: %v", err)
		return nil, errorx.Unknown
	}

	curve := gamelogic.NewLevelCurve(xcontext.Configs(ctx).Game)
	newTotal := user.TotalXP + challenge.XPReward
	if err := d.userRepo.UpdateXP(ctx, userID, challenge.XPReward, curve.LevelForXP(newTotal)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot award challenge xp: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	if err := d.leaderboard.ChangeXPLeaderboard(ctx, int64(challenge.XPReward), userID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update leaderboard: %v", err)
	}

	return &model.CompleteWeeklyChallengeResponse{
		Challenge: model.ConvertWeeklyChallenge(challenge),
		XPEarned:  challenge.XPReward,
		LevelInfo: levelInfo(curve, newTotal),
	}, nil
}

func (d *weeklyChallengeDomain) GetHistory(
	ctx context.Context, req *model.GetWeeklyChallengeHistoryRequest,
) (*model.GetWeeklyChallengeHistoryResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	completions, err := d.challengeRepo.GetCompletedByUserID(ctx, xcontext.RequestUserID(ctx), limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get challenge history: %v", err)
		return nil, errorx.Unknown
	}

	challenges := []model.CompletedChallenge{}
	for _, c := range completions {
		challenge := c.Challenge
		completedAt := ""
		if c.CompletedAt.Valid {
			completedAt = c.CompletedAt.Time.Format(model.DefaultTimeLayout)
		}

		challenges = append(challenges, model.CompletedChallenge{
			Challenge:   model.ConvertWeeklyChallenge(&challenge),
			XPEarned:    c.XPEarned,
			CompletedAt: completedAt,
		})
	}

	return &model.GetWeeklyChallengeHistoryResponse{Challenges: challenges}, nil
}

// getOrCreateChallenge returns this week's challenge, creating it on first
// touch. Challenges are keyed by the Monday of their week.
func (d *weeklyChallengeDomain) getOrCreateChallenge(ctx context.Context) (*entity.WeeklyChallenge, error) {
	weekStart := dateutil.WeekStart(d.clock.Now())

	challenge, err := d.challengeRepo.GetByWeekStart(ctx, weekStart)
	if err == nil {
		return challenge, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get weekly challenge: %v", err)
		return nil, errorx.Unknown
	}

	challenge = &entity.WeeklyChallenge{
		Base:          entity.Base{ID: uuid.NewString()},
		WeekStartDate: weekStart,
		WeekEndDate:   dateutil.WeekEnd(d.clock.Now()),
		Title:         "Perfect Week",
		Description: []byte(fmt.Sprintf(
			"Lock %d weekday runs with every core quest completed.", daysRequiredForUnlock)),
		XPReward: xcontext.Configs(ctx).Game.ChallengeReward,
	}

	if err := d.challengeRepo.Create(ctx, challenge); err != nil {
		// Another request may have created this week concurrently.
		existing, getErr := d.challengeRepo.GetByWeekStart(ctx, weekStart)
		if getErr == nil {
			return existing, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot create weekly challenge: %v", err)
		return nil, errorx.Unknown
	}

	return challenge, nil
}

func (d *weeklyChallengeDomain) getOrCreateCompletion(
	ctx context.Context, userID, challengeID string,
) (*entity.WeeklyChallengeCompletion, error) {
	completion, err := d.challengeRepo.GetCompletion(ctx, userID, challengeID)
	if err == nil {
		return completion, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get challenge completion: %v", err)
		return nil, errorx.Unknown
	}

	completion = &entity.WeeklyChallengeCompletion{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		ChallengeID: challengeID,
	}

	if err := d.challengeRepo.CreateCompletion(ctx, completion); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create challenge completion: %v", err)
		return nil, errorx.Unknown
	}

	return completion, nil
}

// countQualifyingDays counts this week's locked weekday runs in which every
// core quest was completed.
func (d *weeklyChallengeDomain) countQualifyingDays(ctx context.Context, userID string) (int, error) {
	weekdays := dateutil.Weekdays(d.clock.Now())

	runs, err := d.dailyRunRepo.GetLockedByUserAndDates(ctx, userID, weekdays)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get locked runs: %v", err)
		return 0, errorx.Unknown
	}

	count := 0
	for _, run := range runs {
		qualified, err := d.allCoreCompleted(ctx, run.ID)
		if err != nil {
			return 0, err
		}

		if qualified {
			count++
		}
	}

	return count, nil
}

func (d *weeklyChallengeDomain) allCoreCompleted(ctx context.Context, runID string) (bool, error) {
	completions, err := d.dailyRunRepo.GetCompletionsByRunID(ctx, runID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest completions: %v", err)
		return false, errorx.Unknown
	}

	questIDs := []string{}
	for _, c := range completions {
		questIDs = append(questIDs, c.QuestID)
	}

	quests, err := d.questRepo.GetByIDs(ctx, questIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
		return false, errorx.Unknown
	}

	// A run without core quests qualifies vacuously. Locking the day is
	// the commitment being measured.
	coreQuests := map[string]bool{}
	for _, q := range quests {
		if q.IsCore {
			coreQuests[q.ID] = true
		}
	}

	for _, c := range completions {
		if coreQuests[c.QuestID] && !c.Completed {
			return false, nil
		}
	}

	return true, nil
}
