package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/enum"
	"github.com/kunal12203/LifeGoal-Game/pkg/errorx"
	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
	"gorm.io/gorm"
)

type QuestDomain interface {
	Create(ctx context.Context, req *model.CreateQuestRequest) (*model.CreateQuestResponse, error)
	Get(ctx context.Context, req *model.GetQuestRequest) (*model.GetQuestResponse, error)
	GetList(ctx context.Context, req *model.GetListQuestRequest) (*model.GetListQuestResponse, error)
	Deactivate(ctx context.Context, req *model.DeactivateQuestRequest) (*model.DeactivateQuestResponse, error)
}

type questDomain struct {
	questRepo repository.QuestRepository
}

func NewQuestDomain(questRepo repository.QuestRepository) *questDomain {
	return &questDomain{questRepo: questRepo}
}

func (d *questDomain) Create(
	ctx context.Context, req *model.CreateQuestRequest,
) (*model.CreateQuestResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	if req.BaseXP <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Base XP must be positive")
	}

	difficulty, err := enum.ToEnum[entity.QuestDifficulty](req.Difficulty)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid difficulty %s", req.Difficulty)
	}

	quest := &entity.Quest{
		Base:        entity.Base{ID: uuid.NewString()},
		Title:       req.Title,
		Description: []byte(req.Description),
		Category:    req.Category,
		Difficulty:  difficulty,
		BaseXP:      req.BaseXP,
		IsCore:      req.IsCore,
		IsActive:    true,
	}

	if err := d.questRepo.Create(ctx, quest); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create quest: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateQuestResponse{ID: quest.ID}, nil
}

func (d *questDomain) Get(
	ctx context.Context, req *model.GetQuestRequest,
) (*model.GetQuestResponse, error) {
	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetQuestResponse(model.ConvertQuest(quest))
	return &resp, nil
}

func (d *questDomain) GetList(
	ctx context.Context, req *model.GetListQuestRequest,
) (*model.GetListQuestResponse, error) {
	filter := repository.QuestFilter{
		ActiveOnly: true,
		CoreOnly:   req.CoreOnly,
	}

	if req.Category != "" {
		filter.Categories = []string{req.Category}
	}

	quests, err := d.questRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
		return nil, errorx.Unknown
	}

	modelQuests := []model.Quest{}
	for _, q := range quests {
		quest := q
		modelQuests = append(modelQuests, model.ConvertQuest(&quest))
	}

	return &model.GetListQuestResponse{Quests: modelQuests}, nil
}

func (d *questDomain) Deactivate(
	ctx context.Context, req *model.DeactivateQuestRequest,
) (*model.DeactivateQuestResponse, error) {
	if err := d.questRepo.Deactivate(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		xcontext.Logger(ctx).Errorf("Cannot deactivate quest: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeactivateQuestResponse{}, nil
}
