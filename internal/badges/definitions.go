package badges

// Metric names for Completion badges that track a narrower counter
// than total completions.
const (
	MetricLectures       = "lectures"
	MetricQuizzes        = "quizzes"
	MetricPerfectQuizzes = "perfect_quizzes"
)

// BuiltinDefinitions returns the default badge catalog.
func BuiltinDefinitions() []Definition {
	return []Definition{
		// Streak badges
		{ID: "week_warrior", Name: "Week Warrior", Description: "Maintain a 7-day learning streak", Icon: "🔥", Threshold: 7, Category: CategoryStreak},
		{ID: "streak_master", Name: "Streak Master", Description: "Maintain a 30-day learning streak", Icon: "⚡", Threshold: 30, Category: CategoryStreak},
		{ID: "unstoppable", Name: "Unstoppable", Description: "Maintain a 100-day learning streak", Icon: "💫", Threshold: 100, Category: CategoryStreak},

		// Level badges
		{ID: "rising_star", Name: "Rising Star", Description: "Reach level 5", Icon: "⭐", Threshold: 5, Category: CategoryLevel},
		{ID: "apprentice", Name: "Apprentice", Description: "Reach level 10", Icon: "🌟", Threshold: 10, Category: CategoryLevel},
		{ID: "journeyman", Name: "Journeyman", Description: "Reach level 20", Icon: "✨", Threshold: 20, Category: CategoryLevel},

		// XP badges
		{ID: "xp_hunter", Name: "XP Hunter", Description: "Earn 1,000 total XP", Icon: "💎", Threshold: 1000, Category: CategoryXP},
		{ID: "xp_collector", Name: "XP Collector", Description: "Earn 5,000 total XP", Icon: "💰", Threshold: 5000, Category: CategoryXP},
		{ID: "xp_legend", Name: "XP Legend", Description: "Earn 10,000 total XP", Icon: "👑", Threshold: 10000, Category: CategoryXP},

		// Completion badges
		{ID: "first_steps", Name: "First Steps", Description: "Complete your first lecture", Icon: "👣", Threshold: 1, Category: CategoryCompletion, Metric: MetricLectures},
		{ID: "quiz_whiz", Name: "Quiz Whiz", Description: "Complete 10 quizzes", Icon: "📝", Threshold: 10, Category: CategoryCompletion, Metric: MetricQuizzes},
		{ID: "completionist", Name: "Completionist", Description: "Complete 50 learning activities", Icon: "🏆", Threshold: 50, Category: CategoryCompletion},
		{ID: "perfect_score", Name: "Perfect Score", Description: "Get 100% on any quiz", Icon: "💯", Threshold: 1, Category: CategoryCompletion, Metric: MetricPerfectQuizzes},

		// Mastery badges
		{ID: "skill_seeker", Name: "Skill Seeker", Description: "Reach 50% mastery in any skill", Icon: "🎯", Threshold: 0.5, Category: CategoryMastery},
		{ID: "skill_master", Name: "Skill Master", Description: "Reach 90% mastery in any skill", Icon: "🏅", Threshold: 0.9, Category: CategoryMastery},
	}
}

// DefinitionByID looks up a definition in defs, or nil if absent.
func DefinitionByID(defs []Definition, id string) *Definition {
	for i := range defs {
		if defs[i].ID == id {
			return &defs[i]
		}
	}
	return nil
}

// DefinitionsByCategory filters defs to one category.
func DefinitionsByCategory(defs []Definition, category Category) []Definition {
	var out []Definition
	for _, d := range defs {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}
