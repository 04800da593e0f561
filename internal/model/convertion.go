package model

import (
	"database/sql"
	"time"

	"github.com/kunal12203/LifeGoal-Game/internal/entity"
	"github.com/kunal12203/LifeGoal-Game/pkg/dateutil"
)

const DefaultTimeLayout string = time.RFC3339Nano

func formatNullTime(t sql.NullTime, layout string) string {
	if !t.Valid {
		return ""
	}

	return t.Time.Format(layout)
}

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	lastActivity := ""
	if !user.LastActivityDate.IsZero() {
		lastActivity = dateutil.FormatDate(user.LastActivityDate)
	}

	return User{
		ID:                     user.ID,
		Username:               user.Username,
		Email:                  user.Email,
		TotalXP:                user.TotalXP,
		CurrentLevel:           user.CurrentLevel,
		GoalCategories:         user.GoalCategories,
		HasCompletedOnboarding: user.HasCompletedOnboarding,
		LastActivityDate:       lastActivity,
	}
}

func ConvertQuest(quest *entity.Quest) Quest {
	if quest == nil {
		return Quest{}
	}

	return Quest{
		ID:          quest.ID,
		Title:       quest.Title,
		Description: string(quest.Description),
		Category:    quest.Category,
		Difficulty:  string(quest.Difficulty),
		BaseXP:      quest.BaseXP,
		IsCore:      quest.IsCore,
		IsActive:    quest.IsActive,
	}
}

func ConvertDailyRun(run *entity.DailyRun, completions []QuestCompletion) DailyRun {
	if run == nil {
		return DailyRun{}
	}

	return DailyRun{
		ID:          run.ID,
		Date:        dateutil.FormatDate(run.Date),
		TotalXP:     run.TotalXP,
		IsPerfect:   run.IsPerfect,
		IsLocked:    run.IsLocked,
		CompletedAt: formatNullTime(run.CompletedAt, DefaultTimeLayout),
		Completions: completions,
	}
}

func ConvertQuestCompletion(completion *entity.DailyQuestCompletion, quest *entity.Quest) QuestCompletion {
	if completion == nil {
		return QuestCompletion{}
	}

	return QuestCompletion{
		ID:          completion.ID,
		QuestID:     completion.QuestID,
		Quest:       ConvertQuest(quest),
		Completed:   completion.Completed,
		XPEarned:    completion.XPEarned,
		CompletedAt: formatNullTime(completion.CompletedAt, DefaultTimeLayout),
	}
}

func ConvertStreak(streak *entity.Streak, questTitle string) Streak {
	if streak == nil {
		return Streak{}
	}

	return Streak{
		QuestID:           streak.QuestID,
		QuestTitle:        questTitle,
		CurrentStreak:     streak.CurrentStreak,
		LongestStreak:     streak.LongestStreak,
		LastCompletedDate: formatNullTime(streak.LastCompletedDate, dateutil.DateFormat),
	}
}

func ConvertGoal(goal *entity.Goal, milestones []entity.Milestone) Goal {
	if goal == nil {
		return Goal{}
	}

	modelMilestones := []Milestone{}
	for _, m := range milestones {
		milestone := m
		modelMilestones = append(modelMilestones, ConvertMilestone(&milestone))
	}

	return Goal{
		ID:           goal.ID,
		Title:        goal.Title,
		Description:  string(goal.Description),
		Category:     goal.Category,
		TargetDate:   formatNullTime(goal.TargetDate, dateutil.DateFormat),
		IsCompleted:  goal.IsCompleted,
		RewardIssued: goal.RewardIssued,
		XPReward:     goal.XPReward,
		Milestones:   modelMilestones,
	}
}

func ConvertMilestone(milestone *entity.Milestone) Milestone {
	if milestone == nil {
		return Milestone{}
	}

	return Milestone{
		ID:          milestone.ID,
		Title:       milestone.Title,
		OrderIndex:  milestone.OrderIndex,
		IsCompleted: milestone.IsCompleted,
	}
}

func ConvertDecayRecord(record *entity.XPDecayHistory) DecayRecord {
	if record == nil {
		return DecayRecord{}
	}

	return DecayRecord{
		DecayDate:    dateutil.FormatDate(record.DecayDate),
		DaysInactive: record.DaysInactive,
		XPBefore:     record.XPBefore,
		XPLost:       record.XPLost,
		XPAfter:      record.XPAfter,
		LevelBefore:  record.LevelBefore,
		LevelAfter:   record.LevelAfter,
	}
}

func ConvertWeeklyChallenge(challenge *entity.WeeklyChallenge) WeeklyChallenge {
	if challenge == nil {
		return WeeklyChallenge{}
	}

	return WeeklyChallenge{
		ID:            challenge.ID,
		WeekStartDate: dateutil.FormatDate(challenge.WeekStartDate),
		WeekEndDate:   dateutil.FormatDate(challenge.WeekEndDate),
		Title:         challenge.Title,
		Description:   string(challenge.Description),
		XPReward:      challenge.XPReward,
	}
}
