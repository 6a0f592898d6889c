package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
)

func TestComputeTotals_Empty(t *testing.T) {
	totals := domain.ComputeTotals(nil)

	assert.True(t, totals.Cash.IsZero())
	assert.True(t, totals.Card.IsZero())
	assert.True(t, totals.Online.IsZero())
	assert.True(t, totals.Expenses.IsZero())
	assert.True(t, totals.Income.IsZero())
}

func TestComputeTotals_MixedMethods(t *testing.T) {
	movements := []domain.Movement{
		{Type: domain.MovementSale, Amount: decimal.NewFromInt(250), PaymentMethod: domain.MethodCash},
		{Type: domain.MovementSale, Amount: decimal.NewFromInt(180), PaymentMethod: domain.MethodCard},
		{Type: domain.MovementSale, Amount: decimal.NewFromInt(90), PaymentMethod: domain.MethodOnline},
		{Type: domain.MovementIncome, Amount: decimal.NewFromInt(100), PaymentMethod: domain.MethodCash},
		{Type: domain.MovementExpense, Amount: decimal.NewFromInt(60), PaymentMethod: domain.MethodCash},
	}

	totals := domain.ComputeTotals(movements)

	assert.True(t, totals.Cash.Equal(decimal.NewFromInt(290)), "cash: %s", totals.Cash)
	assert.True(t, totals.Card.Equal(decimal.NewFromInt(180)))
	assert.True(t, totals.Online.Equal(decimal.NewFromInt(90)))
	assert.True(t, totals.Expenses.Equal(decimal.NewFromInt(60)))
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(620)))
}

func TestComputeTotals_ExpenseSubtractsFromItsMethod(t *testing.T) {
	movements := []domain.Movement{
		{Type: domain.MovementSale, Amount: decimal.NewFromInt(500), PaymentMethod: domain.MethodCard},
		{Type: domain.MovementExpense, Amount: decimal.NewFromInt(500), PaymentMethod: domain.MethodCard},
	}

	totals := domain.ComputeTotals(movements)

	assert.True(t, totals.Card.IsZero())
	assert.True(t, totals.Expenses.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(500)))
}

func TestMovementSignedAmount(t *testing.T) {
	sale := domain.Movement{Type: domain.MovementSale, Amount: decimal.NewFromInt(100)}
	income := domain.Movement{Type: domain.MovementIncome, Amount: decimal.NewFromInt(100)}
	expense := domain.Movement{Type: domain.MovementExpense, Amount: decimal.NewFromInt(100)}

	assert.True(t, sale.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-100)))
}

func TestMovementAffectsDrawer(t *testing.T) {
	cash := domain.Movement{PaymentMethod: domain.MethodCash}
	card := domain.Movement{PaymentMethod: domain.MethodCard}
	online := domain.Movement{PaymentMethod: domain.MethodOnline}

	assert.True(t, cash.AffectsDrawer())
	assert.False(t, card.AffectsDrawer())
	assert.False(t, online.AffectsDrawer())
}
