package services

type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Topic   string `json:"topic"`
	Summary string `json:"summary"`
	Reward  int64  `json:"reward"`
}

// DefaultArticles is the fixed article library. Reading one credits its
// reward once per user.
func DefaultArticles() []Article {
	return []Article{
		{ID: "understanding-phases", Title: "Understanding the four cycle phases", Topic: "cycle-basics", Summary: "What menstrual, follicular, ovulation and luteal actually mean.", Reward: ArticleReadReward},
		{ID: "tracking-why", Title: "Why daily tracking works", Topic: "cycle-basics", Summary: "How small daily entries add up to real patterns.", Reward: ArticleReadReward},
		{ID: "nutrition-cycle", Title: "Eating with your cycle", Topic: "wellness", Summary: "Phase-aware nutrition without the fads.", Reward: ArticleReadReward},
		{ID: "pain-when-to-ask", Title: "Period pain: when to ask for help", Topic: "health", Summary: "Normal cramps versus symptoms worth a clinic visit.", Reward: ArticleReadReward},
		{ID: "myths-debunked", Title: "Five cycle myths, debunked", Topic: "health", Summary: "Common misconceptions and what the evidence says.", Reward: ArticleReadReward},
	}
}

func FindArticle(articleID string) (Article, bool) {
	for _, article := range DefaultArticles() {
		if article.ID == articleID {
			return article, true
		}
	}
	return Article{}, false
}
