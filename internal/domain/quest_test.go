package domain

import (
	"testing"

	"github.com/kunal12203/LifeGoal-Game/internal/model"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
	"github.com/kunal12203/LifeGoal-Game/pkg/errorx"
	"github.com/kunal12203/LifeGoal-Game/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_questDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewQuestDomain(repository.NewQuestRepository())

	resp, err := domain.Create(ctx, &model.CreateQuestRequest{
		Title:      "Meditate",
		Category:   "health",
		Difficulty: "easy",
		BaseXP:     40,
		IsCore:     true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	got, err := domain.Get(ctx, &model.GetQuestRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, "Meditate", got.Title)
	require.Equal(t, "easy", got.Difficulty)
	require.Equal(t, 40, got.BaseXP)
	require.True(t, got.IsCore)

	_, err = domain.Create(ctx, &model.CreateQuestRequest{
		Title: "No reward", Difficulty: "easy",
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Base XP must be positive"), err)

	_, err = domain.Create(ctx, &model.CreateQuestRequest{
		Title: "Bad difficulty", Difficulty: "nightmare", BaseXP: 10,
	})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid difficulty nightmare"), err)
}

func Test_questDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewQuestDomain(repository.NewQuestRepository())

	resp, err := domain.GetList(ctx, &model.GetListQuestRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 3)

	resp, err = domain.GetList(ctx, &model.GetListQuestRequest{CoreOnly: true})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 2)

	resp, err = domain.GetList(ctx, &model.GetListQuestRequest{Category: "learning"})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 1)
	require.Equal(t, testutil.QuestReading.Title, resp.Quests[0].Title)
}

func Test_questDomain_Deactivate(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := NewQuestDomain(repository.NewQuestRepository())

	_, err := domain.Deactivate(ctx, &model.DeactivateQuestRequest{ID: testutil.QuestReading.ID})
	require.NoError(t, err)

	resp, err := domain.GetList(ctx, &model.GetListQuestRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 2)

	_, err = domain.Deactivate(ctx, &model.DeactivateQuestRequest{ID: "missing"})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found quest"), err)
}
