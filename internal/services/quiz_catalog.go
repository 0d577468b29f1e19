package services

const (
	QuizQuestionsPerLevel = 5
	QuizPassThreshold     = 4
)

type QuizChoice struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type QuizQuestion struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"prompt"`
	Choices []QuizChoice `json:"choices"`
	Correct string       `json:"-"`
}

type QuizLevel struct {
	ID         string         `json:"id"`
	Topic      string         `json:"topic"`
	Level      int            `json:"level"`
	Reward     int64          `json:"reward"`
	GatesBadge bool           `json:"gates_badge"`
	Questions  []QuizQuestion `json:"questions"`
}

func choices(a, b, c, d string) []QuizChoice {
	return []QuizChoice{
		{Key: "A", Text: a},
		{Key: "B", Text: b},
		{Key: "C", Text: c},
		{Key: "D", Text: d},
	}
}

// DefaultQuizLevels is the fixed leveled quiz set. The last cycle-basics
// level gates the cycle badge unlock.
func DefaultQuizLevels() []QuizLevel {
	return []QuizLevel{
		{
			ID: "cycle-basics-1", Topic: "cycle-basics", Level: 1, Reward: 20,
			Questions: []QuizQuestion{
				{ID: "cb1-q1", Prompt: "How long is the model menstrual cycle used by most trackers?", Choices: choices("21 days", "28 days", "35 days", "40 days"), Correct: "B"},
				{ID: "cb1-q2", Prompt: "Which phase begins on day one of the cycle?", Choices: choices("Luteal", "Ovulation", "Menstrual", "Follicular"), Correct: "C"},
				{ID: "cb1-q3", Prompt: "Which hormone surges right before ovulation?", Choices: choices("Insulin", "Luteinizing hormone", "Melatonin", "Cortisol"), Correct: "B"},
				{ID: "cb1-q4", Prompt: "Which phase follows ovulation?", Choices: choices("Luteal", "Menstrual", "Follicular", "None"), Correct: "A"},
				{ID: "cb1-q5", Prompt: "Spotting between periods is best logged as…", Choices: choices("A new period", "Spotting", "Ovulation", "Nothing"), Correct: "B"},
			},
		},
		{
			ID: "cycle-basics-2", Topic: "cycle-basics", Level: 2, Reward: 25,
			Questions: []QuizQuestion{
				{ID: "cb2-q1", Prompt: "In the 28-day model, ovulation is estimated around which days?", Choices: choices("Days 1-5", "Days 6-13", "Days 14-16", "Days 20-28"), Correct: "C"},
				{ID: "cb2-q2", Prompt: "The follicular phase is driven mainly by…", Choices: choices("Estrogen", "Progesterone", "Testosterone", "Prolactin"), Correct: "A"},
				{ID: "cb2-q3", Prompt: "A cycle day greater than 28 under the model is treated as…", Choices: choices("An error", "Still luteal", "Menstrual", "Follicular"), Correct: "B"},
				{ID: "cb2-q4", Prompt: "Which sign commonly marks the luteal phase?", Choices: choices("Higher energy", "Lower basal temperature", "Premenstrual symptoms", "Ovulation pain"), Correct: "C"},
				{ID: "cb2-q5", Prompt: "Tracking mood and energy daily helps because…", Choices: choices("They never change", "Patterns align with phases", "It replaces sleep", "It predicts weather"), Correct: "B"},
			},
		},
		{
			ID: "cycle-basics-3", Topic: "cycle-basics", Level: 3, Reward: 30, GatesBadge: true,
			Questions: []QuizQuestion{
				{ID: "cb3-q1", Prompt: "Iron-rich foods matter most during which phase?", Choices: choices("Menstrual", "Follicular", "Ovulation", "Luteal"), Correct: "A"},
				{ID: "cb3-q2", Prompt: "Cycle length is measured from…", Choices: choices("Period end to period end", "Period start to next period start", "Ovulation to period end", "Any two symptoms"), Correct: "B"},
				{ID: "cb3-q3", Prompt: "Persistent severe pain every cycle is a reason to…", Choices: choices("Ignore it", "Log it and see a clinician", "Skip logging", "Double exercise"), Correct: "B"},
				{ID: "cb3-q4", Prompt: "Which entry marks a new cycle in the tracker?", Choices: choices("Spotting", "Period end", "Period start", "High energy"), Correct: "C"},
				{ID: "cb3-q5", Prompt: "The estimate shown for a day is…", Choices: choices("Stored forever", "Recomputed on read", "Entered by hand", "Fetched from chain"), Correct: "B"},
			},
		},
		{
			ID: "wellness-1", Topic: "wellness", Level: 1, Reward: 20,
			Questions: []QuizQuestion{
				{ID: "wl1-q1", Prompt: "A balanced way to handle cramps is…", Choices: choices("Hydration and warmth", "Skipping meals", "Caffeine only", "Ignoring them"), Correct: "A"},
				{ID: "wl1-q2", Prompt: "Energy levels in the app are logged on a scale of…", Choices: choices("1-3", "1-5", "1-10", "0-100"), Correct: "B"},
				{ID: "wl1-q3", Prompt: "Gentle exercise during the menstrual phase is…", Choices: choices("Forbidden", "Generally fine", "Required", "Dangerous"), Correct: "B"},
				{ID: "wl1-q4", Prompt: "Notes on a daily log are useful for…", Choices: choices("Nothing", "Context a clinician can review", "Mining tokens", "Unlocking quizzes"), Correct: "B"},
				{ID: "wl1-q5", Prompt: "Sleep disruption is most commonly reported in which phase?", Choices: choices("Follicular", "Ovulation", "Luteal", "None"), Correct: "C"},
			},
		},
	}
}

func FindQuizLevel(topic string, level int) (QuizLevel, bool) {
	for _, quizLevel := range DefaultQuizLevels() {
		if quizLevel.Topic == topic && quizLevel.Level == level {
			return quizLevel, true
		}
	}
	return QuizLevel{}, false
}
