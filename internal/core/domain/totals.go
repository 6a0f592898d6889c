package domain

import "github.com/shopspring/decimal"

// ShiftTotals is the per-method breakdown of a shift's movements.
// Cash/Card/Online are net of expenses paid through the same method;
// Income and Expenses are gross figures kept for auditing.
type ShiftTotals struct {
	Cash     decimal.Decimal `json:"cash"`
	Card     decimal.Decimal `json:"card"`
	Online   decimal.Decimal `json:"online"`
	Expenses decimal.Decimal `json:"expenses"`
	Income   decimal.Decimal `json:"income"`
}

// ComputeTotals folds a movement list into per-method buckets.
// Sale and income rows add to their method bucket and to gross income;
// expense rows subtract from their method bucket and add to gross expenses.
func ComputeTotals(movements []Movement) ShiftTotals {
	t := ShiftTotals{
		Cash:     decimal.Zero,
		Card:     decimal.Zero,
		Online:   decimal.Zero,
		Expenses: decimal.Zero,
		Income:   decimal.Zero,
	}
	for i := range movements {
		m := &movements[i]
		signed := m.SignedAmount()
		switch m.PaymentMethod {
		case MethodCard:
			t.Card = t.Card.Add(signed)
		case MethodOnline:
			t.Online = t.Online.Add(signed)
		default:
			t.Cash = t.Cash.Add(signed)
		}
		if m.Type == MovementExpense {
			t.Expenses = t.Expenses.Add(m.Amount)
		} else {
			t.Income = t.Income.Add(m.Amount)
		}
	}
	return t
}
