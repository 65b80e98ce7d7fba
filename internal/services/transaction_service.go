package services

import (
	"time"

	apperrors "spendsmart/internal/errors"
	"spendsmart/internal/models"
	"spendsmart/internal/pagination"
	"spendsmart/internal/store"
)

// transactionService records new transactions and lists existing ones.
type transactionService struct {
	store store.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s store.Store) TransactionServicer {
	return &transactionService{store: s}
}

// Record validates and inserts a new transaction. Transactions are immutable
// once stored.
func (s *transactionService) Record(
	owner string,
	amount float64,
	category, description, date string,
	txnType models.TransactionType,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	switch txnType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	case "":
		txnType = models.TransactionTypeExpense
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}
	if parsed, err := time.Parse(models.ISODate, date); err != nil || parsed.Format(models.ISODate) != date {
		return nil, apperrors.ErrInvalidDate
	}

	txn := &models.Transaction{
		Owner:       owner,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		Type:        txnType,
	}
	if err := s.store.InsertTransaction(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// List returns one page of the owner's transactions, newest date first, with
// the listing placeholders substituted for empty fields.
func (s *transactionService) List(owner string, page pagination.PageRequest) (*pagination.PageResponse[EntryView], error) {
	txns, err := s.store.FindTransactions(store.TransactionFilter{
		Owner:    owner,
		DateDesc: true,
	})
	if err != nil {
		return nil, err
	}

	entries, err := formatEntries(txns, true)
	if err != nil {
		return nil, err
	}

	result := pagination.Page(entries, page)
	return &result, nil
}
