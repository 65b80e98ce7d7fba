package services

import (
	"time"

	"spendsmart/internal/models"
	"spendsmart/internal/pagination"
)

// CategoryTotal is one category's summed expense amount. Slices of
// CategoryTotal preserve first-appearance order, which is what makes
// tie-breaking in RankCategories deterministic.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// WindowSummary aggregates one owner's transactions over a half-open window.
type WindowSummary struct {
	Income     float64         `json:"income"`
	Expenses   float64         `json:"expenses"`
	Categories []CategoryTotal `json:"categories"`
}

// MonthlySummary is one month of a trailing report.
type MonthlySummary struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// EntryView is a transaction formatted for listing, with the stored ISO date
// parsed into a real date.
type EntryView struct {
	Date        time.Time              `json:"date"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
	Type        models.TransactionType `json:"type"`
}

// DashboardSummary is the composite payload behind the dashboard endpoint.
type DashboardSummary struct {
	TotalBalance    float64          `json:"total_balance"`
	MonthlyIncome   float64          `json:"monthly_income"`
	MonthlyExpenses float64          `json:"monthly_expenses"`
	TopCategories   []CategoryTotal  `json:"top_categories"`
	Monthly         []MonthlySummary `json:"monthly"`
	Recent          []EntryView      `json:"recent"`
}

// AnalyticsServicer defines the contract for the aggregation engine.
type AnalyticsServicer interface {
	SummarizeWindow(owner, start, end string) (*WindowSummary, error)
	RankCategories(totals []CategoryTotal) []CategoryTotal
	TrailingSummaries(owner string, ref time.Time, months int) ([]MonthlySummary, error)
	RecentTransactions(owner string, limit int) ([]EntryView, error)
	Dashboard(owner string, ref time.Time) (*DashboardSummary, error)
}

// TransactionServicer defines the contract for recording and listing transactions.
type TransactionServicer interface {
	Record(owner string, amount float64, category, description, date string, txnType models.TransactionType) (*models.Transaction, error)
	List(owner string, page pagination.PageRequest) (*pagination.PageResponse[EntryView], error)
}

// BudgetProgress joins a budget with its all-time spend. Progress is the
// spent/limit ratio as a percentage rounded to two decimals, or 0 when the
// limit is not positive.
type BudgetProgress struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Spent    float64 `json:"spent"`
	Progress float64 `json:"progress"`
}

// BudgetServicer defines the contract for budget evaluation and mutation.
type BudgetServicer interface {
	EvaluateBudgets(owner string) ([]BudgetProgress, error)
	ComputeAlerts(owner string) ([]BudgetProgress, error)
	AddBudget(owner, category string, limit float64) (*models.Budget, error)
	EditBudget(owner, id, category string, limit float64) (*models.Budget, error)
	DeleteBudget(owner, id string) error
}

// PeerEntry is one identity's lifetime savings with a display name.
type PeerEntry struct {
	Name     string  `json:"name"`
	Identity string  `json:"identity"`
	Saved    float64 `json:"saved"`
}

// PeerRanking splits the sorted savings ranking into leaders and runners-up.
type PeerRanking struct {
	Top3  []PeerEntry `json:"top3"`
	Next5 []PeerEntry `json:"next5"`
}

// PeerServicer defines the contract for the peer ranking engine.
type PeerServicer interface {
	RankPeers() (*PeerRanking, error)
}

// LeaderboardEntry is one participant's position within a challenge.
type LeaderboardEntry struct {
	Identity string  `json:"identity"`
	Progress float64 `json:"progress"`
	Rank     int     `json:"rank"`
}

// ChallengeStanding annotates a challenge with progress data for one viewer.
// Result is "won" or "lost" for past challenges and empty for active ones.
type ChallengeStanding struct {
	Challenge    models.Challenge   `json:"challenge"`
	UserProgress float64            `json:"user_progress"`
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
	Leader       string             `json:"leader"`
	Result       string             `json:"result,omitempty"`
}

// ChallengeList partitions a viewer's challenges into active and past.
type ChallengeList struct {
	Active []ChallengeStanding `json:"active"`
	Past   []ChallengeStanding `json:"past"`
}

// ChallengeServicer defines the contract for the challenge engine.
type ChallengeServicer interface {
	ComputeProgress(identity string, challenge *models.Challenge) (float64, error)
	BuildLeaderboard(challenge *models.Challenge) ([]LeaderboardEntry, error)
	CreateChallenge(name string, challengeType models.ChallengeType, startDate, endDate string, participants []string) (*models.Challenge, error)
	ListChallenges(identity string, today time.Time) (*ChallengeList, error)
}
