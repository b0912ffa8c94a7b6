// Package dashboard summarizes the spending of a user over a period.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/budget"
	"github.com/spendwise-app/backend/internal/i18n"
	"github.com/spendwise-app/backend/internal/models"
	"github.com/spendwise-app/backend/internal/types"
	"golang.org/x/exp/slices"
)

// NoCategory is shown when there is no top category or a category is unknown.
const NoCategory = "-"

// RecentCount is the number of expenses in Summary.RecentExpenses.
const RecentCount = 5

var ErrPeriodInvalid = fmt.Errorf("%w: the start of the period must not be after its end", models.ErrValidation)

type Expenses interface {
	ListForRange(ctx context.Context, userID string, start, end types.Date) ([]models.Expense, error)
}

type Budgets interface {
	CurrentStatus(ctx context.Context, userID string) (budget.Status, error)
}

type Categories interface {
	List(ctx context.Context) []models.Category
}

// Aggregator composes ledger, budget and category data.
type Aggregator struct {
	expenses   Expenses
	budgets    Budgets
	categories Categories
}

func New(expenses Expenses, budgets Budgets, categories Categories) *Aggregator {
	return &Aggregator{expenses: expenses, budgets: budgets, categories: categories}
}

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	CategoryID uuid.UUID
	Name       string
	Icon       string
	Amount     decimal.Decimal

	// Percent is the share of the period total, rounded to one decimal place
	Percent decimal.Decimal
}

// Summary is a snapshot of a user's spending in a period.
type Summary struct {
	From            types.Date
	Until           types.Date
	TotalSpent      decimal.Decimal
	RemainingBudget decimal.Decimal
	TopCategory     string
	Breakdown       []CategoryTotal
	RecentExpenses  []models.Expense
	ExpenseCount    int
}

// Summarize builds the summary for the inclusive period [from, until].
// Category names are rendered in the locale.
func (a *Aggregator) Summarize(ctx context.Context, userID string, from, until types.Date, locale i18n.Locale) (Summary, error) {
	if from.After(until) {
		return Summary{}, ErrPeriodInvalid
	}

	expenses, err := a.expenses.ListForRange(ctx, userID, from, until)
	if err != nil {
		return Summary{}, err
	}

	remaining := decimal.Zero
	status, err := a.budgets.CurrentStatus(ctx, userID)
	if err == nil {
		remaining = status.Remaining
	} else if !errors.Is(err, budget.ErrNoActiveBudget) {
		return Summary{}, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	breakdown := Breakdown(expenses, a.categories.List(ctx), locale)

	top := NoCategory
	if len(breakdown) > 0 {
		top = breakdown[0].Name
	}

	recent := make([]models.Expense, 0, RecentCount)
	for i := 0; i < len(expenses) && i < RecentCount; i++ {
		recent = append(recent, expenses[i])
	}

	return Summary{
		From:            from,
		Until:           until,
		TotalSpent:      total,
		RemainingBudget: remaining,
		TopCategory:     top,
		Breakdown:       breakdown,
		RecentExpenses:  recent,
		ExpenseCount:    len(expenses),
	}, nil
}

// Breakdown groups the expenses by category.
//
// Entries are ordered by amount, largest first. Equal amounts are ordered by
// the display name in the locale.
func Breakdown(expenses []models.Expense, all []models.Category, locale i18n.Locale) []CategoryTotal {
	byID := make(map[uuid.UUID]models.Category, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}

	total := decimal.Zero
	index := make(map[uuid.UUID]int)
	breakdown := []CategoryTotal{}

	for _, e := range expenses {
		total = total.Add(e.Amount)

		i, ok := index[e.CategoryID]
		if !ok {
			entry := CategoryTotal{CategoryID: e.CategoryID, Name: NoCategory, Amount: decimal.Zero}
			if c, found := byID[e.CategoryID]; found {
				entry.Name = c.Name(locale)
				entry.Icon = c.Icon
			}

			i = len(breakdown)
			index[e.CategoryID] = i
			breakdown = append(breakdown, entry)
		}

		breakdown[i].Amount = breakdown[i].Amount.Add(e.Amount)
	}

	hundred := decimal.NewFromInt(100)
	for i := range breakdown {
		if total.IsPositive() {
			breakdown[i].Percent = breakdown[i].Amount.Mul(hundred).Div(total).Round(1)
		} else {
			breakdown[i].Percent = decimal.Zero
		}
	}

	slices.SortStableFunc(breakdown, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return breakdown
}
