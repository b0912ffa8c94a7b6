// Package ledger records the expenses of users.
//
// Every operation is scoped to a single user. Records of other users are
// treated as if they did not exist.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryGetter resolves category references.
type CategoryGetter interface {
	Get(ctx context.Context, id uuid.UUID) (models.Category, error)
}

// Ledger stores expenses.
type Ledger struct {
	db         *gorm.DB
	categories CategoryGetter
}

func New(db *gorm.DB, categories CategoryGetter) *Ledger {
	return &Ledger{db: db, categories: categories}
}

// order is the ordering of all lists: newest day first, same day in
// insertion order.
const order = "date DESC, created_at ASC"

// Create validates and stores a new expense.
func (l *Ledger) Create(ctx context.Context, userID string, in ExpenseInput) (models.Expense, error) {
	expense := models.Expense{
		UserID:      userID,
		Amount:      in.Amount,
		CategoryID:  in.CategoryID,
		Date:        in.Date,
		PaymentMode: in.PaymentMode,
		Notes:       in.Notes,
		Location:    in.Location,
	}

	err := l.validate(ctx, expense)
	if err != nil {
		return models.Expense{}, err
	}

	err = l.db.WithContext(ctx).Omit(clause.Associations).Create(&expense).Error
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// Get returns a single expense of the user.
func (l *Ledger) Get(ctx context.Context, userID string, id uuid.UUID) (models.Expense, error) {
	var expense models.Expense

	err := l.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&expense).Error
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// Update changes the fields set in the patch.
func (l *Ledger) Update(ctx context.Context, userID string, id uuid.UUID, patch ExpensePatch) (models.Expense, error) {
	expense, err := l.Get(ctx, userID, id)
	if err != nil {
		return models.Expense{}, err
	}

	if patch.Amount != nil {
		expense.Amount = *patch.Amount
	}
	if patch.CategoryID != nil {
		expense.CategoryID = *patch.CategoryID
	}
	if patch.Date != nil {
		expense.Date = *patch.Date
	}
	if patch.PaymentMode != nil {
		expense.PaymentMode = *patch.PaymentMode
	}
	if patch.Notes != nil {
		expense.Notes = *patch.Notes
	}
	if patch.Location != nil {
		expense.Location = *patch.Location
	}

	err = l.validate(ctx, expense)
	if err != nil {
		return models.Expense{}, err
	}

	err = l.db.WithContext(ctx).Omit(clause.Associations).Save(&expense).Error
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// Delete removes an expense. Deleting an expense twice fails with
// models.ErrResourceNotFound.
func (l *Ledger) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tx := l.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.Expense{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w expense matching your query", models.ErrResourceNotFound)
	}

	return nil
}

// ListForRange returns all expenses of the user with start <= date <= end.
func (l *Ledger) ListForRange(ctx context.Context, userID string, start, end types.Date) ([]models.Expense, error) {
	var expenses []models.Expense

	err := l.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order(order).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// SumForRange returns the total amount of the expenses ListForRange returns.
//
// The amounts are added as decimals, never as floating point numbers.
func (l *Ledger) SumForRange(ctx context.Context, userID string, start, end types.Date) (decimal.Decimal, error) {
	var amounts []decimal.Decimal

	err := l.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}

	return Sum(amounts...), nil
}

// Sum adds up amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}

	return sum
}

// List returns one page of the user's expenses that match the filter.
func (l *Ledger) List(ctx context.Context, userID string, filter Filter) (Page, error) {
	query := l.db.WithContext(ctx).Where("user_id = ?", userID)

	if !filter.From.IsZero() {
		query = query.Where("date >= ?", filter.From)
	}

	if !filter.Until.IsZero() {
		query = query.Where("date <= ?", filter.Until)
	}

	if filter.CategoryID != uuid.Nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	if filter.PaymentMode != "" {
		query = query.Where("payment_mode = ?", filter.PaymentMode)
	}

	var expenses []models.Expense
	err := query.Order(order).Find(&expenses).Error
	if err != nil {
		return Page{}, err
	}

	// Amount bounds and the note pattern are checked here so that
	// decimals compare exactly on every database
	pattern := strings.ToLower(filter.Note)
	matching := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if filter.MinAmount.Valid && e.Amount.LessThan(filter.MinAmount.Decimal) {
			continue
		}

		if filter.MaxAmount.Valid && e.Amount.GreaterThan(filter.MaxAmount.Decimal) {
			continue
		}

		if pattern != "" && !glob.Glob(pattern, strings.ToLower(e.Notes)) {
			continue
		}

		matching = append(matching, e)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	page := Page{
		Expenses: []models.Expense{},
		Total:    len(matching),
		Offset:   filter.Offset,
		Limit:    limit,
	}

	// Offset and limit come from the query string, compare them as uint
	// so that huge values neither wrap nor turn negative
	total := uint(len(matching))
	if filter.Offset >= total {
		return page, nil
	}

	end := total
	if limit < total-filter.Offset {
		end = filter.Offset + limit
	}
	page.Expenses = matching[filter.Offset:end]

	return page, nil
}

// validate checks the expense and verifies that its category exists.
func (l *Ledger) validate(ctx context.Context, expense models.Expense) error {
	err := expense.Validate()
	if err != nil {
		return err
	}

	_, err = l.categories.Get(ctx, expense.CategoryID)
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.ErrCategoryNotExisting
	}

	return err
}
