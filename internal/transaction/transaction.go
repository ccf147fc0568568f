package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Types lists every valid transaction type, in form-display order.
func Types() []Type {
	return []Type{TypeIncome, TypeExpense}
}

// Category classifies what a transaction was for.
type Category string

const (
	CategoryFood       Category = "food"
	CategoryRent       Category = "rent"
	CategoryShopping   Category = "shopping"
	CategoryTravel     Category = "travel"
	CategorySalary     Category = "salary"
	CategoryInvestment Category = "investment"
	CategoryOther      Category = "other"
)

// Categories lists every valid category, in form-display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryRent,
		CategoryShopping,
		CategoryTravel,
		CategorySalary,
		CategoryInvestment,
		CategoryOther,
	}
}

// Transaction represents a single income or expense record owned by one user.
// UserID and CreatedAt are set when the record is created and never change.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Type      Type
	Category  Category
	CreatedAt time.Time
}

// MonthlySummary holds the amount sums for one calendar month, keyed by
// type and by category. A month with no transactions yields empty maps.
type MonthlySummary struct {
	ByType     map[Type]decimal.Decimal
	ByCategory map[Category]decimal.Decimal
}
