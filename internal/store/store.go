// Package store provides the narrow read/write surface the engine uses to
// reach persisted records. No business logic lives here: the store applies
// the documented default substitutions at the ingestion boundary and returns
// typed records, nothing more.
package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "spendsmart/internal/errors"
	"spendsmart/internal/models"
)

// TransactionFilter selects transactions by owner and date range. DateFrom is
// an inclusive lower bound; DateTo an exclusive upper bound; DateToIncl an
// inclusive upper bound. All bounds are ISO date strings and are compared
// lexicographically, which is date order because stored dates are zero-padded.
type TransactionFilter struct {
	Owner      string
	DateFrom   string
	DateTo     string
	DateToIncl string
	DateDesc   bool
	Limit      int
}

// Store is the persistence surface consumed by the engine services.
type Store interface {
	FindTransactions(filter TransactionFilter) ([]models.Transaction, error)
	InsertTransaction(txn *models.Transaction) error
	ExpenseTotalsByCategory(owner string) (map[string]float64, error)
	SumByType(owner string, txnType models.TransactionType) (float64, error)
	DistinctOwners() ([]string, error)

	FindBudgets(owner string) ([]models.Budget, error)
	FindBudget(owner, id string) (*models.Budget, error)
	FindBudgetByCategory(owner, category string) (*models.Budget, error)
	InsertBudget(budget *models.Budget) error
	UpdateBudget(id, category string, limit float64) error
	DeleteBudget(id string) error

	FindUserProfile(identity string) (*models.UserProfile, error)

	FindChallengesByParticipant(identity string) ([]models.Challenge, error)
	InsertChallenge(challenge *models.Challenge) error
}

type gormStore struct {
	db *gorm.DB
}

// New creates a Store backed by the given GORM database.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// FindTransactions returns transactions matching the filter. Without DateDesc
// the result comes back in insertion order, which the aggregation engine
// relies on for stable category ordering.
func (s *gormStore) FindTransactions(filter TransactionFilter) ([]models.Transaction, error) {
	q := s.db.Model(&models.Transaction{}).Where("owner = ?", filter.Owner)

	if filter.DateFrom != "" {
		q = q.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("date < ?", filter.DateTo)
	}
	if filter.DateToIncl != "" {
		q = q.Where("date <= ?", filter.DateToIncl)
	}

	if filter.DateDesc {
		q = q.Order("date DESC, created_at ASC")
	} else {
		q = q.Order("created_at ASC")
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var txns []models.Transaction
	if err := q.Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txns, nil
}

// InsertTransaction validates the ISO date invariant and applies the default
// substitutions before writing: an empty type becomes expense, and an expense
// with no category is filed under models.DefaultCategory. Amounts must be
// non-negative in storage; the sign is carried by the type.
func (s *gormStore) InsertTransaction(txn *models.Transaction) error {
	parsed, err := time.Parse(models.ISODate, txn.Date)
	if err != nil || parsed.Format(models.ISODate) != txn.Date {
		return apperrors.ErrInvalidDate
	}
	if txn.Amount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	txn.Type = models.TransactionType(strings.ToLower(string(txn.Type)))
	if txn.Type == "" {
		txn.Type = models.TransactionTypeExpense
	}
	if txn.Type == models.TransactionTypeExpense && txn.Category == "" {
		txn.Category = models.DefaultCategory
	}

	if err := s.db.Create(txn).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ExpenseTotalsByCategory sums all-time expense amounts per category.
func (s *gormStore) ExpenseTotalsByCategory(owner string) (map[string]float64, error) {
	type row struct {
		Category string
		Total    float64
	}

	var rows []row
	err := s.db.Model(&models.Transaction{}).
		Select("category, SUM(amount) AS total").
		Where("owner = ? AND type = ?", owner, models.TransactionTypeExpense).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make(map[string]float64, len(rows))
	for _, r := range rows {
		totals[r.Category] = r.Total
	}
	return totals, nil
}

// SumByType returns the all-time amount total for one transaction type.
func (s *gormStore) SumByType(owner string, txnType models.TransactionType) (float64, error) {
	var total float64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("owner = ? AND type = ?", owner, txnType).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// DistinctOwners enumerates every identity that has recorded a transaction,
// ordered by earliest record so the enumeration is deterministic. Peer
// ranking depends on this order to break ties.
func (s *gormStore) DistinctOwners() ([]string, error) {
	var owners []string
	err := s.db.Model(&models.Transaction{}).
		Select("owner").
		Group("owner").
		Order("MIN(created_at), owner").
		Scan(&owners).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return owners, nil
}

// FindBudgets returns the owner's budgets in storage (creation) order.
func (s *gormStore) FindBudgets(owner string) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.Where("owner = ?", owner).Order("created_at ASC").Find(&budgets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// FindBudget returns a budget by ID if it belongs to the owner.
func (s *gormStore) FindBudget(owner, id string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND owner = ?", id, owner).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// FindBudgetByCategory returns the owner's budget for a category, or nil when
// no such budget exists.
func (s *gormStore) FindBudgetByCategory(owner, category string) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Where("owner = ? AND category = ?", owner, category).First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

func (s *gormStore) InsertBudget(budget *models.Budget) error {
	if err := s.db.Create(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// UpdateBudget overwrites both mutable fields of the budget.
func (s *gormStore) UpdateBudget(id, category string, limit float64) error {
	err := s.db.Model(&models.Budget{}).Where("id = ?", id).
		Updates(map[string]interface{}{"category": category, "limit": limit}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *gormStore) DeleteBudget(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Budget{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// FindUserProfile returns the profile for an identity, or nil when none exists.
func (s *gormStore) FindUserProfile(identity string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("email = ?", identity).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// FindChallengesByParticipant returns every challenge the identity takes part
// in, ordered by end date ascending, with participants preloaded in their
// creation-time order.
func (s *gormStore) FindChallengesByParticipant(identity string) ([]models.Challenge, error) {
	member := s.db.Model(&models.ChallengeParticipant{}).
		Select("challenge_id").
		Where("identity = ?", identity)

	var challenges []models.Challenge
	err := s.db.Where("id IN (?)", member).
		Order("end_date ASC").
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Find(&challenges).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return challenges, nil
}

func (s *gormStore) InsertChallenge(challenge *models.Challenge) error {
	if err := s.db.Create(challenge).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
