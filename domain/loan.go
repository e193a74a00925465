package domain

// Loan representa una deuda individual con su estado actual.
// Las tasas son fracciones anuales (0.065 = 6.5%).
type Loan struct {
	Name           string
	Balance        float64
	InterestRate   float64
	MinimumPayment float64
	AutoPay        bool
}

type LoanInput struct {
	Amount       float64
	InterestRate float64 // fracción anual
	TermMonths   int
}

type LoanResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
}
