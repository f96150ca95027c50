package analytics

import (
	"fmt"

	"github.com/budgetcalc/engine/internal/models"
	"github.com/budgetcalc/engine/internal/types"
	"github.com/google/uuid"
)

// Snapshot is a validated, indexed view of transactions and their categories.
type Snapshot struct {
	tree         *models.CategoryTree
	transactions []models.Transaction
	byMonth      map[types.Month][]models.Transaction
}

// NewSnapshot validates the category tree and the category references of all
// transactions and indexes the transactions by month.
//
// The input slices are copied.
func NewSnapshot(transactions []models.Transaction, categories []models.Category) (*Snapshot, error) {
	tree, err := models.NewCategoryTree(categories)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{
		tree:         tree,
		transactions: make([]models.Transaction, 0, len(transactions)),
		byMonth:      make(map[types.Month][]models.Transaction),
	}

	for _, t := range transactions {
		if t.CategoryID != nil && !tree.Contains(*t.CategoryID) {
			return nil, fmt.Errorf("%w: transaction %s references %s", models.ErrUnknownCategory, t.ID, *t.CategoryID)
		}

		s.transactions = append(s.transactions, t)
		month := types.MonthOf(t.Date)
		s.byMonth[month] = append(s.byMonth[month], t)
	}

	return s, nil
}

// Tree returns the category tree of the snapshot.
func (s *Snapshot) Tree() *models.CategoryTree {
	return s.tree
}

// Transactions returns all transactions in input order.
func (s *Snapshot) Transactions() []models.Transaction {
	return append([]models.Transaction(nil), s.transactions...)
}

// Between returns the transactions within the inclusive range, grouped by
// month in ascending order and in input order within a month.
func (s *Snapshot) Between(r types.Range) []models.Transaction {
	if !r.Valid() {
		return nil
	}

	var result []models.Transaction
	for _, month := range types.MonthsBetween(r.Start, r.End) {
		for _, t := range s.byMonth[month] {
			if r.Contains(t.Date) {
				result = append(result, t)
			}
		}
	}

	return result
}

// category resolves a category or fails with ErrCategoryNotFound.
func (s *Snapshot) category(id uuid.UUID) (models.Category, error) {
	c, ok := s.tree.Get(id)
	if !ok {
		return models.Category{}, fmt.Errorf("%w: %s", models.ErrCategoryNotFound, id)
	}
	return c, nil
}
