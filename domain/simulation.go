package domain

import "time"

// SimulationConfig es inmutable durante una corrida. Los campos en cero
// toman valores por defecto (horizonte de 120 meses, incremento de $1000,
// inicio en enero, verbosidad 1).
type SimulationConfig struct {
	HorizonMonths   int
	SavingsRate     float64 // fracción anual de la cuenta de ahorro
	EmployerAmount  float64 // crédito anual del empleador, 0 = sin beneficio
	EmployerMonth   int     // mes calendario 1-12
	StartMonth      int     // mes calendario del primer mes simulado, 1-12
	AutoPayDiscount float64 // fracción restada a la tasa con débito automático
	Increment       float64 // tamaño de paso del barrido de pagos adelantados
	MaxEarlyPayment float64 // 0 = hasta el balance total
	Verbosity       int     // 1 resumen, 2 candidatos, 3 detalle mensual
}

type LoanBalance struct {
	Name    string
	Balance float64
}

// MonthlySnapshot registra el resultado de un mes simulado. Paid es el
// desembolso del prestatario; el crédito del empleador no es efectivo del
// prestatario y se reporta aparte.
type MonthlySnapshot struct {
	Month          int
	Balances       []LoanBalance
	Interest       float64
	Principal      float64
	EmployerCredit float64
	Paid           float64
}

type CandidateResult struct {
	EarlyPayment    float64
	NominalCost     float64
	AdjustedCost    float64
	TotalInterest   float64
	EmployerCredits float64
	MonthsToPayoff  int
	Snapshots       []MonthlySnapshot `json:",omitempty"`
}

type SimulationRequest struct {
	Loans        []Loan
	Config       SimulationConfig
	EarlyPayment float64
}

type OptimizationInput struct {
	Loans  []Loan
	Config SimulationConfig
}

type OptimizationResult struct {
	Best        CandidateResult
	Candidates  []CandidateResult `json:",omitempty"`
	Explanation string            `json:",omitempty"`
}

// OptimizationRun es una corrida persistida del optimizador.
type OptimizationRun struct {
	ID        string
	CreatedAt time.Time
	Input     OptimizationInput
	Best      CandidateResult
}
