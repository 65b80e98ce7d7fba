package models

// ISODate is the storage format for all transaction and challenge dates.
// Dates are stored as zero-padded ISO strings so that lexicographic
// comparison (in SQL and in Go) is equivalent to date comparison. Every
// write path must validate against this format.
const ISODate = "2006-01-02"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DefaultCategory is substituted when an expense is recorded without a category.
const DefaultCategory = "Uncategorized"

// Categories is the suggested category set offered by the presentation layer.
// Free-text categories are also accepted.
var Categories = []string{
	"Salary", "Food", "Housing", "Transportation", "Entertainment",
	"Shopping", "Healthcare", "Education", "Others",
}

// Transaction represents a single income or expense record. Transactions are
// immutable once created: there is no update or delete surface.
type Transaction struct {
	Base
	Owner       string          `gorm:"index;not null" json:"owner"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `gorm:"type:varchar(10);index;not null" json:"date"`
	Type        TransactionType `gorm:"not null" json:"type"`
}
