package services

import (
	"sort"
	"strings"
	"time"

	apperrors "spendsmart/internal/errors"
	"spendsmart/internal/models"
	"spendsmart/internal/store"
)

// Outcomes recorded on past challenges.
const (
	ResultWon  = "won"
	ResultLost = "lost"
)

// challengeService scores group challenges and builds their leaderboards.
type challengeService struct {
	store store.Store
}

// NewChallengeService creates a new ChallengeServicer.
func NewChallengeService(s store.Store) ChallengeServicer {
	return &challengeService{store: s}
}

// ComputeProgress scores one participant over the challenge's date range.
// The interval is closed on both ends, [start_date, end_date], unlike the
// half-open monthly windows. Savings challenges score income minus expense;
// spending challenges score expense only. An unrecognized stored type scores
// 0; creation rejects such types, so this only guards legacy records.
func (s *challengeService) ComputeProgress(identity string, challenge *models.Challenge) (float64, error) {
	txns, err := s.store.FindTransactions(store.TransactionFilter{
		Owner:      identity,
		DateFrom:   challenge.StartDate,
		DateToIncl: challenge.EndDate,
	})
	if err != nil {
		return 0, err
	}

	var income, expense float64
	for _, txn := range txns {
		switch models.TransactionType(strings.ToLower(string(txn.Type))) {
		case models.TransactionTypeIncome:
			income += txn.Amount
		case models.TransactionTypeExpense:
			expense += txn.Amount
		}
	}

	switch challenge.Type {
	case models.ChallengeTypeSavings:
		return income - expense, nil
	case models.ChallengeTypeSpending:
		return expense, nil
	default:
		return 0, nil
	}
}

// BuildLeaderboard scores every participant and orders them by the
// challenge's direction rule: descending for savings (more saved is better),
// ascending for spending (less spent is better). The sort is stable, so tied
// participants keep their creation-time order. Ranks are assigned 1..n.
func (s *challengeService) BuildLeaderboard(challenge *models.Challenge) ([]LeaderboardEntry, error) {
	entries := make([]LeaderboardEntry, 0, len(challenge.Participants))
	for _, p := range challenge.Participants {
		progress, err := s.ComputeProgress(p.Identity, challenge)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{Identity: p.Identity, Progress: progress})
	}

	descending := challenge.Type == models.ChallengeTypeSavings
	sort.SliceStable(entries, func(i, j int) bool {
		if descending {
			return entries[i].Progress > entries[j].Progress
		}
		return entries[i].Progress < entries[j].Progress
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// CreateChallenge validates and stores a new challenge. There is no
// uniqueness constraint: repeating a creation call makes a second challenge.
func (s *challengeService) CreateChallenge(
	name string,
	challengeType models.ChallengeType,
	startDate, endDate string,
	participants []string,
) (*models.Challenge, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name must not be empty")
	}
	if challengeType != models.ChallengeTypeSavings && challengeType != models.ChallengeTypeSpending {
		return nil, apperrors.ErrInvalidChallengeType
	}
	if len(participants) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one participant is required")
	}
	for _, date := range []string{startDate, endDate} {
		if parsed, err := time.Parse(models.ISODate, date); err != nil || parsed.Format(models.ISODate) != date {
			return nil, apperrors.ErrInvalidDate
		}
	}
	if endDate < startDate {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must not precede start date")
	}

	challenge := &models.Challenge{
		Name:      name,
		Type:      challengeType,
		StartDate: startDate,
		EndDate:   endDate,
	}
	for i, identity := range participants {
		challenge.Participants = append(challenge.Participants, models.ChallengeParticipant{
			Identity: identity,
			Position: i,
		})
	}

	if err := s.store.InsertChallenge(challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

// ListChallenges returns the viewer's challenges, end date ascending, each
// annotated with the viewer's progress, the full leaderboard, and the
// leader. Challenges are partitioned by phase: active while end_date >=
// today (a challenge ending today is still active), past otherwise. Past
// challenges carry the viewer's outcome: won if they lead, lost otherwise.
func (s *challengeService) ListChallenges(identity string, today time.Time) (*ChallengeList, error) {
	challenges, err := s.store.FindChallengesByParticipant(identity)
	if err != nil {
		return nil, err
	}

	todayISO := today.Format(models.ISODate)
	list := &ChallengeList{Active: []ChallengeStanding{}, Past: []ChallengeStanding{}}

	for i := range challenges {
		challenge := challenges[i]

		userProgress, err := s.ComputeProgress(identity, &challenge)
		if err != nil {
			return nil, err
		}

		leaderboard, err := s.BuildLeaderboard(&challenge)
		if err != nil {
			return nil, err
		}

		standing := ChallengeStanding{
			Challenge:    challenge,
			UserProgress: userProgress,
			Leaderboard:  leaderboard,
		}
		if len(leaderboard) > 0 {
			standing.Leader = leaderboard[0].Identity
		}

		if challenge.EndDate >= todayISO {
			list.Active = append(list.Active, standing)
		} else {
			standing.Result = ResultLost
			if standing.Leader == identity {
				standing.Result = ResultWon
			}
			list.Past = append(list.Past, standing)
		}
	}

	return list, nil
}
