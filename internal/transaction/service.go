package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no transaction exists for the given id and
// owner. A transaction owned by another user is indistinguishable from a
// missing one.
var ErrNotFound = errors.New("transaction not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error

	ListTransactions(ctx context.Context, ownerID uuid.UUID) ([]*Transaction, error)
	SummarizeMonth(ctx context.Context, ownerID uuid.UUID, year int, month time.Month) (*MonthlySummary, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title    string
	Amount   decimal.Decimal
	Type     Type
	Category Category
}

// Create persists a new transaction stamped with ownerID as its owner.
// The store assigns the id and the creation timestamp.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		UserID:   ownerID,
		Title:    params.Title,
		Amount:   params.Amount,
		Type:     params.Type,
		Category: params.Category,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ListResult bundles the owner's full history with the breakdowns for the
// requested month.
type ListResult struct {
	Transactions []*Transaction
	Summary      *MonthlySummary
}

// List returns every transaction owned by ownerID regardless of date,
// plus the per-type and per-category amount sums restricted to the given
// month and year.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, year int, month time.Month) (*ListResult, error) {
	txs, err := s.repo.ListTransactions(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary, err := s.repo.SummarizeMonth(ctx, ownerID, year, month)
	if err != nil {
		return nil, err
	}

	return &ListResult{Transactions: txs, Summary: summary}, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, ownerID, id)
}

type UpdateParams struct {
	Title    string
	Amount   decimal.Decimal
	Type     Type
	Category Category
}

// Update overwrites the editable fields of an existing transaction. The
// owner and the creation timestamp are never touched.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, params UpdateParams) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	tx.Title = params.Title
	tx.Amount = params.Amount
	tx.Type = params.Type
	tx.Category = params.Category

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, ownerID, id)
}
