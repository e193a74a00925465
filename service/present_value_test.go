package service

import (
	"math"
	"testing"

	"loan-optimizer/domain"
)

func TestDiscount_ZeroRateIsNoOp(t *testing.T) {

	if got := discount(500, 0, 36); got != 500 {
		t.Errorf("expected 500.00, got %.6f", got)
	}
}

func TestDiscount_MonthZeroIsNoOp(t *testing.T) {

	if got := discount(500, 0.08, 0); got != 500 {
		t.Errorf("expected 500.00, got %.6f", got)
	}
}

func TestDiscount_MonthlyCompounding(t *testing.T) {

	// 12% anual: 1% mensual durante 12 meses.
	want := 100 / math.Pow(1.01, 12)
	if got := discount(100, 0.12, 12); !almostEqual(got, want) {
		t.Errorf("expected %.6f, got %.6f", want, got)
	}
}

func TestAdjustedCost_ZeroRateEqualsNominal(t *testing.T) {

	snaps := []domain.MonthlySnapshot{
		{Month: 0, Paid: 1000},
		{Month: 1, Paid: 200},
		{Month: 2, Paid: 200},
	}

	if got := adjustedCost(snaps, 0); !almostEqual(got, 1400) {
		t.Errorf("expected nominal sum 1400.00, got %.6f", got)
	}
}

func TestAdjustedCost_LaterPaymentsWorthLess(t *testing.T) {

	early := []domain.MonthlySnapshot{{Month: 1, Paid: 1000}}
	late := []domain.MonthlySnapshot{{Month: 60, Paid: 1000}}

	if adjustedCost(early, 0.04) <= adjustedCost(late, 0.04) {
		t.Errorf("expected earlier payment to cost more in present terms")
	}
}

func TestPaymentLedger_MatchesAdjustedCost(t *testing.T) {

	snaps := []domain.MonthlySnapshot{
		{Month: 0, Paid: 1000},
		{Month: 6, Paid: 350},
		{Month: 18, Paid: 350},
	}

	ledger := paymentLedger{savingsRate: 0.05}
	for _, s := range snaps {
		ledger.record(s.Paid, s.Month)
	}

	if !almostEqual(ledger.nominal, 1700) {
		t.Errorf("expected nominal 1700.00, got %.6f", ledger.nominal)
	}
	if !almostEqual(ledger.adjusted, adjustedCost(snaps, 0.05)) {
		t.Errorf("ledger and adjustedCost disagree: %.6f vs %.6f",
			ledger.adjusted, adjustedCost(snaps, 0.05))
	}
}
