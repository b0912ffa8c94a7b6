// Package budget manages budget windows and derives their status from the
// expense ledger.
package budget

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/types"
	"gorm.io/gorm"
)

var (
	ErrBudgetActive   = errors.New("there already is an active budget")
	ErrNoActiveBudget = errors.New("there is no active budget")
)

// Summer sums the expenses of a user in a date range.
type Summer interface {
	SumForRange(ctx context.Context, userID string, start, end types.Date) (decimal.Decimal, error)
}

// Manager establishes budgets and computes their status.
type Manager struct {
	db     *gorm.DB
	ledger Summer

	// Now returns the current time. "Today" is the UTC date of it.
	Now func() time.Time
}

func New(db *gorm.DB, ledger Summer) *Manager {
	return &Manager{db: db, ledger: ledger, Now: time.Now}
}

// Status is the state of a budget at the time it was computed.
// Spent and Remaining are never read from the database.
type Status struct {
	Budget    models.Budget
	Spent     decimal.Decimal
	Remaining decimal.Decimal

	// PercentUsed is not valid for budgets with an amount of zero
	PercentUsed decimal.NullDecimal
	Level       Level
}

// Window returns the window of a budget established at now.
//
// Both cycles start on the first day of the month. Monthly windows end on
// the last day of that month, weekly windows six days after the start.
func Window(now time.Time, cycle models.Cycle) (start, end types.Date) {
	start = types.Today(now).FirstOfMonth()

	if cycle == models.CycleWeekly {
		return start, start.AddDate(0, 0, 7-1)
	}

	return start, start.AddDate(0, 1, -1)
}

// Establish creates a new budget for the current window.
func (m *Manager) Establish(ctx context.Context, userID string, amount decimal.Decimal, cycle models.Cycle) (Status, error) {
	if userID == "" {
		return Status{}, models.ErrUserMissing
	}

	if amount.IsNegative() {
		return Status{}, models.ErrBudgetAmountNegative
	}

	if !cycle.Valid() {
		return Status{}, models.ErrCycleInvalid
	}

	_, err := m.Active(ctx, userID)
	if err == nil {
		return Status{}, ErrBudgetActive
	} else if !errors.Is(err, ErrNoActiveBudget) {
		return Status{}, err
	}

	start, end := Window(m.Now(), cycle)
	budget := models.Budget{
		UserID:    userID,
		Cycle:     cycle,
		Amount:    amount,
		StartDate: start,
		EndDate:   end,
	}

	err = m.db.WithContext(ctx).Create(&budget).Error
	if err != nil {
		return Status{}, err
	}

	return status(budget, decimal.Zero), nil
}

// Active returns the budget whose window contains today.
//
// If there are several, the one created last is returned.
func (m *Manager) Active(ctx context.Context, userID string) (models.Budget, error) {
	today := types.Today(m.Now())

	var budgets []models.Budget
	err := m.db.WithContext(ctx).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, today, today).
		Order("created_at DESC").
		Limit(1).
		Find(&budgets).Error
	if err != nil {
		return models.Budget{}, err
	}

	if len(budgets) == 0 {
		return models.Budget{}, ErrNoActiveBudget
	}

	return budgets[0], nil
}

// CurrentStatus computes the status of the active budget from the ledger.
func (m *Manager) CurrentStatus(ctx context.Context, userID string) (Status, error) {
	budget, err := m.Active(ctx, userID)
	if err != nil {
		return Status{}, err
	}

	spent, err := m.ledger.SumForRange(ctx, userID, budget.StartDate, budget.EndDate)
	if err != nil {
		return Status{}, err
	}

	return status(budget, spent), nil
}

// List returns all budgets of the user, the newest window first.
func (m *Manager) List(ctx context.Context, userID string) ([]models.Budget, error) {
	var budgets []models.Budget

	err := m.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC, created_at DESC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

func status(budget models.Budget, spent decimal.Decimal) Status {
	s := Status{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.Amount.Sub(spent),
	}

	// Nothing can be spent from a budget of zero
	if budget.Amount.IsZero() {
		s.Level = LevelExceeded
		return s
	}

	ratio := spent.Div(budget.Amount)
	s.Level = Classify(ratio)
	s.PercentUsed = decimal.NewNullDecimal(ratio.Mul(decimal.NewFromInt(100)).Round(1))

	return s
}
