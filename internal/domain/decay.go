package domain

import (
	"context"
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
	"github.com/pkg/math"
	"gorm.io/gorm"
)

type DecayDomain interface {
	GetStatus(ctx context.Context, req *model.GetDecayStatusRequest) (*model.GetDecayStatusResponse, error)
	GetHistory(ctx context.Context, req *model.GetDecayHistoryRequest) (*model.GetDecayHistoryResponse, error)
	ProcessAll(ctx context.Context) (*model.DecayBatchStats, error)
}

type decayDomain struct {
	userRepo    repository.UserRepository
	historyRepo repository.XPDecayHistoryRepository
	leaderboard statistic.Leaderboard
	clock       dateutil.Clock
}

func NewDecayDomain(
	userRepo repository.UserRepository,
	historyRepo repository.XPDecayHistoryRepository,
	leaderboard statistic.Leaderboard,
	clock dateutil.Clock,
) *decayDomain {
	return &decayDomain{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		leaderboard: leaderboard,
		clock:       clock,
	}
}

func (d *decayDomain) GetStatus(
	ctx context.Context, req *model.GetDecayStatusRequest,
) (*model.GetDecayStatusResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	gameCfg := xcontext.Configs(ctx).Game
	daysInactive := d.daysInactive(user)
	projected := gamelogic.DecayLoss(
		user.TotalXP, daysInactive+1, gameCfg.DecayRate, gameCfg.DecayGraceDays)

	return &model.GetDecayStatusResponse{
		DaysInactive:    daysInactive,
		DaysUntilDecay:  math.MaxInt(0, gameCfg.DecayGraceDays-daysInactive),
		AtRisk:          projected > 0,
		ProjectedXPLoss: projected,
	}, nil
}

func (d *decayDomain) GetHistory(
	ctx context.Context, req *model.GetDecayHistoryRequest,
) (*model.GetDecayHistoryResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 30
	}

	records, err := d.historyRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx), limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get decay history: %v", err)
		return nil, errorx.Unknown
	}

	modelRecords := []model.DecayRecord{}
	for _, r := range records {
		record := r
		modelRecords = append(modelRecords, model.ConvertDecayRecord(&record))
	}

	return &model.GetDecayHistoryResponse{Records: modelRecords}, nil
}

// ProcessAll applies decay to every inactive user. Each user runs in its
// own transaction so one failure cannot poison the whole batch.
func (d *decayDomain) ProcessAll(ctx context.Context) (*model.DecayBatchStats, error) {
	userIDs, err := d.userRepo.GetAllIDs(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list users for decay: %v", err)
		return nil, err
	}

	stats := &model.DecayBatchStats{}
	for _, userID := range userIDs {
		stats.TotalUsers++

		record, err := d.processUser(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot process decay for user %s: %v", userID, err)
			continue
		}

		if record != nil {
			stats.UsersDecayed++
			stats.TotalXPLost += record.XPLost
			if record.LevelAfter < record.LevelBefore {
				stats.LevelsDropped++
			}
		}
	}

	return stats, nil
}

func (d *decayDomain) processUser(ctx context.Context, userID string) (*entity.XPDecayHistory, error) {
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := dateutil.Date(d.clock.Now())
	_, err = d.historyRepo.GetByUserAndDate(ctx, userID, today)
	if err == nil {
		// Already decayed today. A second batch run must not double-charge.
		return nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	gameCfg := xcontext.Configs(ctx).Game
	daysInactive := d.daysInactive(user)
	loss := gamelogic.DecayLoss(user.TotalXP, daysInactive, gameCfg.DecayRate, gameCfg.DecayGraceDays)
	if loss == 0 {
		return nil, nil
	}

	curve := gamelogic.NewLevelCurve(gameCfg)
	xpAfter := user.TotalXP - loss
	levelAfter := curve.LevelForXP(xpAfter)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.userRepo.SetTotalXP(ctx, userID, xpAfter, levelAfter); err != nil {
		return nil, err
	}

	record := &entity.XPDecayHistory{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       userID,
		DecayDate:    today,
		DaysInactive: daysInactive,
		XPBefore:     user.TotalXP,
		XPLost:       loss,
		XPAfter:      xpAfter,
		LevelBefore:  user.CurrentLevel,
		LevelAfter:   levelAfter,
	}

	if err := d.historyRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	if err := d.leaderboard.ChangeXPLeaderboard(ctx, int64(-loss), userID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update leaderboard: %v", err)
	}

	return record, nil
}

func (d *decayDomain) daysInactive(user *entity.User) int {
	if user.LastActivityDate.IsZero() {
		return 0
	}

	days := dateutil.DaysBetween(user.LastActivityDate, d.clock.Now())
	if days < 0 {
		return 0
	}

	return days
}
