package testutil

import (
	"context"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/internal/repository"
)

// Sample rows shared by the domain tests. IDs are stable so tests can refer
// to them directly.
var (
	User1 = entity.User{
		Base:         entity.Base{ID: "user1"},
		Username:     "alice",
		Email:        "alice@example.com",
		CurrentLevel: 1,
	}

	User2 = entity.User{
		Base:         entity.Base{ID: "user2"},
		Username:     "bob",
		Email:        "bob@example.com",
		CurrentLevel: 1,
	}

	QuestMorning = entity.Quest{
		Base:       entity.Base{ID: "quest_morning"},
		Title:      "Morning routine",
		Category:   "health",
		Difficulty: entity.QuestEasy,
		BaseXP:     50,
		IsCore:     true,
		IsActive:   true,
	}

	QuestWorkout = entity.Quest{
		Base:       entity.Base{ID: "quest_workout"},
		Title:      "Workout",
		Category:   "fitness",
		Difficulty: entity.QuestMedium,
		BaseXP:     100,
		IsCore:     true,
		IsActive:   true,
	}

	QuestReading = entity.Quest{
		Base:       entity.Base{ID: "quest_reading"},
		Title:      "Read 20 pages",
		Category:   "learning",
		Difficulty: entity.QuestEasy,
		BaseXP:     30,
		IsCore:     false,
		IsActive:   true,
	}
)

// CreateFixtureDb seeds the mock database with the sample users and quests.
func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertQuests(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2} {
		u := user
		if err := userRepo.Create(ctx, &u); err != nil {
			panic(err)
		}
	}
}

func InsertQuests(ctx context.Context) {
	questRepo := repository.NewQuestRepository()

	for _, quest := range []entity.Quest{QuestMorning, QuestWorkout, QuestReading} {
		q := quest
		if err := questRepo.Create(ctx, &q); err != nil {
			panic(err)
		}
	}
}
