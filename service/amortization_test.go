package service

import (
	"errors"
	"math"
	"testing"

	"loan-optimizer/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestStepMonth_AccruesInterestThenPaysMinimum(t *testing.T) {

	loans := []domain.Loan{
		{Name: "federal", Balance: 1200, InterestRate: 0.12, MinimumPayment: 100},
	}
	cfg := normalizedConfig(domain.SimulationConfig{})

	out, err := stepMonth(loans, cfg, 100)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(out.Interest, 12) {
		t.Errorf("expected interest 12.00, got %.6f", out.Interest)
	}
	if !almostEqual(out.Paid, 100) {
		t.Errorf("expected paid 100.00, got %.6f", out.Paid)
	}
	if !almostEqual(loans[0].Balance, 1112) {
		t.Errorf("expected balance 1112.00, got %.6f", loans[0].Balance)
	}
}

func TestStepMonth_SurplusGoesToHighestRate(t *testing.T) {

	loans := []domain.Loan{
		{Name: "caro", Balance: 1000, InterestRate: 0.10, MinimumPayment: 50},
		{Name: "barato", Balance: 1000, InterestRate: 0.05, MinimumPayment: 50},
	}
	sortAvalanche(loans)
	cfg := normalizedConfig(domain.SimulationConfig{})

	// 100 de mínimos + 200 de excedente
	out, err := stepMonth(loans, cfg, 300)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(out.Paid, 300) {
		t.Errorf("expected paid 300.00, got %.6f", out.Paid)
	}

	// El préstamo de menor tasa solo recibe su mínimo.
	wantCheap := 1000*(1+0.05/12) - 50
	if !almostEqual(loans[1].Balance, wantCheap) {
		t.Errorf("expected cheap loan %.6f, got %.6f", wantCheap, loans[1].Balance)
	}

	wantExpensive := 1000*(1+0.10/12) - 250
	if !almostEqual(loans[0].Balance, wantExpensive) {
		t.Errorf("expected expensive loan %.6f, got %.6f", wantExpensive, loans[0].Balance)
	}
}

func TestStepMonth_InsufficientBudgetIsConfigError(t *testing.T) {

	loans := []domain.Loan{
		{Name: "a", Balance: 1000, InterestRate: 0.06, MinimumPayment: 100},
		{Name: "b", Balance: 1000, InterestRate: 0.06, MinimumPayment: 100},
	}
	cfg := normalizedConfig(domain.SimulationConfig{})

	_, err := stepMonth(loans, cfg, 150)

	if err == nil {
		t.Fatalf("expected error for insufficient budget")
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestStepMonth_ClosesLoanWithoutNegativeBalance(t *testing.T) {

	loans := []domain.Loan{
		{Name: "casi-pagado", Balance: 30, InterestRate: 0.12, MinimumPayment: 100},
	}
	cfg := normalizedConfig(domain.SimulationConfig{})

	out, err := stepMonth(loans, cfg, 100)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loans[0].Balance != 0 {
		t.Errorf("expected balance exactly 0, got %.10f", loans[0].Balance)
	}
	if len(out.Closed) != 1 || out.Closed[0] != "casi-pagado" {
		t.Errorf("expected closed [casi-pagado], got %v", out.Closed)
	}
	// Solo se paga lo adeudado: 30 + interés del mes.
	wantPaid := 30 * (1 + 0.12/12)
	if !almostEqual(out.Paid, wantPaid) {
		t.Errorf("expected paid %.6f, got %.6f", wantPaid, out.Paid)
	}
}

func TestPayAvalanche_CapsAtTotalOwed(t *testing.T) {

	loans := []domain.Loan{
		{Name: "a", Balance: 400, InterestRate: 0.10},
		{Name: "b", Balance: 600, InterestRate: 0.05},
	}
	sortAvalanche(loans)

	applied := payAvalanche(loans, 5000)

	if !almostEqual(applied, 1000) {
		t.Errorf("expected applied 1000.00, got %.6f", applied)
	}
	if anyOpen(loans) {
		t.Errorf("expected all loans closed")
	}
}

func TestPayAvalanche_HighestRateFirst(t *testing.T) {

	loans := []domain.Loan{
		{Name: "barato", Balance: 500, InterestRate: 0.04},
		{Name: "caro", Balance: 500, InterestRate: 0.09},
	}
	sortAvalanche(loans)

	payAvalanche(loans, 600)

	// caro se cierra, barato absorbe el resto
	if loans[0].Name != "caro" || loans[0].Balance != 0 {
		t.Errorf("expected caro closed first, got %s=%.2f", loans[0].Name, loans[0].Balance)
	}
	if !almostEqual(loans[1].Balance, 400) {
		t.Errorf("expected barato balance 400.00, got %.6f", loans[1].Balance)
	}
}

func TestSortAvalanche_TieBreakByName(t *testing.T) {

	loans := []domain.Loan{
		{Name: "zeta", Balance: 100, InterestRate: 0.06},
		{Name: "alfa", Balance: 100, InterestRate: 0.06},
		{Name: "media", Balance: 100, InterestRate: 0.08},
	}

	sortAvalanche(loans)

	got := []string{loans[0].Name, loans[1].Name, loans[2].Name}
	want := []string{"media", "alfa", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestMonthlyRate_AutoPayDiscount(t *testing.T) {

	cfg := domain.SimulationConfig{AutoPayDiscount: 0.0025}

	enrolled := domain.Loan{InterestRate: 0.06, AutoPay: true}
	if !almostEqual(monthlyRate(enrolled, cfg), (0.06-0.0025)/12) {
		t.Errorf("expected discounted rate for auto-pay loan")
	}

	notEnrolled := domain.Loan{InterestRate: 0.06}
	if !almostEqual(monthlyRate(notEnrolled, cfg), 0.06/12) {
		t.Errorf("expected full rate for non-enrolled loan")
	}

	// El descuento nunca deja la tasa negativa.
	tiny := domain.Loan{InterestRate: 0.001, AutoPay: true}
	if monthlyRate(tiny, cfg) != 0 {
		t.Errorf("expected rate floored at 0")
	}
}
