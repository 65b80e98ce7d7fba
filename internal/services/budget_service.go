package services

import (
	"math"

	apperrors "spendsmart/internal/errors"
	"spendsmart/internal/models"
	"spendsmart/internal/store"
)

// alertThreshold is the progress percentage at which a budget becomes an alert.
const alertThreshold = 90

// budgetService joins budgets with spend aggregates and handles budget mutation.
type budgetService struct {
	store store.Store
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(s store.Store) BudgetServicer {
	return &budgetService{store: s}
}

// EvaluateBudgets computes all-time spend and progress for each of the
// owner's budgets, in storage order. A category with no recorded expenses
// counts as zero spent, and a non-positive limit yields progress 0 rather
// than an error.
func (s *budgetService) EvaluateBudgets(owner string) ([]BudgetProgress, error) {
	budgets, err := s.store.FindBudgets(owner)
	if err != nil {
		return nil, err
	}

	spentByCategory, err := s.store.ExpenseTotalsByCategory(owner)
	if err != nil {
		return nil, err
	}

	progress := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]

		var pct float64
		if b.Limit > 0 {
			pct = round2(spent / b.Limit * 100)
		}

		progress = append(progress, BudgetProgress{
			ID:       b.ID,
			Category: b.Category,
			Limit:    b.Limit,
			Spent:    spent,
			Progress: pct,
		})
	}
	return progress, nil
}

// ComputeAlerts returns the budgets whose progress has reached the alert
// threshold. The caller decides whether to cache the count; this function is
// pure.
func (s *budgetService) ComputeAlerts(owner string) ([]BudgetProgress, error) {
	all, err := s.EvaluateBudgets(owner)
	if err != nil {
		return nil, err
	}

	alerts := make([]BudgetProgress, 0)
	for _, p := range all {
		if p.Progress >= alertThreshold {
			alerts = append(alerts, p)
		}
	}
	return alerts, nil
}

// AddBudget creates a budget after validating the input and checking for a
// category collision. Both checks run before any mutation.
func (s *budgetService) AddBudget(owner, category string, limit float64) (*models.Budget, error) {
	if err := validateBudgetInput(category, limit); err != nil {
		return nil, err
	}

	existing, err := s.store.FindBudgetByCategory(owner, category)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateBudget
	}

	budget := &models.Budget{Owner: owner, Category: category, Limit: limit}
	if err := s.store.InsertBudget(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// EditBudget overwrites a budget's category and limit. The owner must match
// the stored record; the original accepted any id unchecked, which let one
// user rewrite another's budget.
func (s *budgetService) EditBudget(owner, id, category string, limit float64) (*models.Budget, error) {
	if err := validateBudgetInput(category, limit); err != nil {
		return nil, err
	}

	budget, err := s.store.FindBudget(owner, id)
	if err != nil {
		return nil, err
	}

	if category != budget.Category {
		existing, err := s.store.FindBudgetByCategory(owner, category)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.ErrDuplicateBudget
		}
	}

	if err := s.store.UpdateBudget(budget.ID, category, limit); err != nil {
		return nil, err
	}
	budget.Category = category
	budget.Limit = limit
	return budget, nil
}

// DeleteBudget removes a budget after verifying ownership.
func (s *budgetService) DeleteBudget(owner, id string) error {
	budget, err := s.store.FindBudget(owner, id)
	if err != nil {
		return err
	}
	return s.store.DeleteBudget(budget.ID)
}

func validateBudgetInput(category string, limit float64) error {
	if category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category must not be empty")
	}
	if limit <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be greater than zero")
	}
	return nil
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
