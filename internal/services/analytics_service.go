package services

import (
	"sort"
	"strings"
	"time"

	apperrors "spendsmart/internal/errors"
	"spendsmart/internal/models"
	"spendsmart/internal/store"
	"spendsmart/internal/window"
)

// analyticsService turns the raw transaction stream into monthly summaries
// and category breakdowns.
type analyticsService struct {
	store store.Store
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(s store.Store) AnalyticsServicer {
	return &analyticsService{store: s}
}

// SummarizeWindow aggregates one owner's transactions with date in
// [start, end). Income and expense amounts are summed per type; expenses are
// additionally grouped by category, case-sensitively, in first-appearance
// order. A transaction whose type is neither income nor expense counts
// toward neither total.
func (s *analyticsService) SummarizeWindow(owner, start, end string) (*WindowSummary, error) {
	txns, err := s.store.FindTransactions(store.TransactionFilter{
		Owner:    owner,
		DateFrom: start,
		DateTo:   end,
	})
	if err != nil {
		return nil, err
	}

	summary := &WindowSummary{}
	index := make(map[string]int)

	for _, txn := range txns {
		switch models.TransactionType(strings.ToLower(string(txn.Type))) {
		case models.TransactionTypeIncome:
			summary.Income += txn.Amount
		case models.TransactionTypeExpense:
			summary.Expenses += txn.Amount

			category := txn.Category
			if category == "" {
				category = models.DefaultCategory
			}
			if i, ok := index[category]; ok {
				summary.Categories[i].Total += txn.Amount
			} else {
				index[category] = len(summary.Categories)
				summary.Categories = append(summary.Categories, CategoryTotal{Category: category, Total: txn.Amount})
			}
		}
	}

	return summary, nil
}

// RankCategories sorts category totals by absolute value, descending. The
// sort is stable: categories with equal totals keep their input order, so the
// breakdown is deterministic across runs.
func (s *analyticsService) RankCategories(totals []CategoryTotal) []CategoryTotal {
	ranked := make([]CategoryTotal, len(totals))
	for i, ct := range totals {
		ranked[i] = CategoryTotal{Category: ct.Category, Total: abs(ct.Total)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	return ranked
}

// TrailingSummaries reports the given number of months preceding the
// reference date, oldest first. Expenses are reported as absolute values and
// savings as income minus those expenses. Within a trailing window any
// transaction that is not income counts as expense.
func (s *analyticsService) TrailingSummaries(owner string, ref time.Time, months int) ([]MonthlySummary, error) {
	summaries := make([]MonthlySummary, 0, months)

	for _, w := range window.Trailing(ref, months) {
		txns, err := s.store.FindTransactions(store.TransactionFilter{
			Owner:    owner,
			DateFrom: w.Start,
			DateTo:   w.End,
		})
		if err != nil {
			return nil, err
		}

		var income, expenses float64
		for _, txn := range txns {
			if models.TransactionType(strings.ToLower(string(txn.Type))) == models.TransactionTypeIncome {
				income += txn.Amount
			} else {
				expenses += txn.Amount
			}
		}

		summaries = append(summaries, MonthlySummary{
			Month:    w.Label,
			Income:   income,
			Expenses: abs(expenses),
			Savings:  income - abs(expenses),
		})
	}

	return summaries, nil
}

// RecentTransactions returns the owner's newest transactions, date
// descending, truncated to limit.
func (s *analyticsService) RecentTransactions(owner string, limit int) ([]EntryView, error) {
	txns, err := s.store.FindTransactions(store.TransactionFilter{
		Owner:    owner,
		DateDesc: true,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	return formatEntries(txns, false)
}

// Dashboard assembles the current-month summary, ranked category breakdown,
// trailing six-month report, and the five most recent transactions.
func (s *analyticsService) Dashboard(owner string, ref time.Time) (*DashboardSummary, error) {
	current := window.Month(ref, 0)
	summary, err := s.SummarizeWindow(owner, current.Start, current.End)
	if err != nil {
		return nil, err
	}

	monthly, err := s.TrailingSummaries(owner, ref, 6)
	if err != nil {
		return nil, err
	}

	recent, err := s.RecentTransactions(owner, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalBalance:    summary.Income - summary.Expenses,
		MonthlyIncome:   summary.Income,
		MonthlyExpenses: summary.Expenses,
		TopCategories:   s.RankCategories(summary.Categories),
		Monthly:         monthly,
		Recent:          recent,
	}, nil
}

// formatEntries parses each stored record into an EntryView. A record whose
// date does not parse aborts the whole listing with ErrMalformedRecord; dates
// are validated at insertion, so a failure here means the stored data was
// tampered with or predates the ingestion check.
func formatEntries(txns []models.Transaction, listingDefaults bool) ([]EntryView, error) {
	entries := make([]EntryView, 0, len(txns))
	for _, txn := range txns {
		date, err := time.Parse(models.ISODate, txn.Date)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrMalformedRecord, err)
		}

		entry := EntryView{
			Date:        date,
			Category:    txn.Category,
			Description: txn.Description,
			Amount:      txn.Amount,
			Type:        txn.Type,
		}
		if listingDefaults {
			if entry.Category == "" {
				entry.Category = "No Category"
			}
			if entry.Description == "" {
				entry.Description = "No description"
			}
			if entry.Type == "" {
				entry.Type = models.TransactionTypeExpense
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
