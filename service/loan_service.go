package service

import (
	"fmt"
	"math"

	"loan-optimizer/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type LoanService struct{}

func NewLoanService() *LoanService {
	return &LoanService{}
}

// CalculatePayment calcula la cuota mensual de amortización para un monto,
// tasa anual (fracción) y plazo dados. Es la manera estándar de derivar el
// pago mínimo de un préstamo antes de simularlo.
func (s *LoanService) CalculatePayment(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	// Validar entrada
	if input.Amount <= 0 {
		return domain.LoanResult{}, fmt.Errorf("%w: monto inválido", domain.ErrInvalidConfig)
	}
	if input.Amount > MaxLoanAmount {
		return domain.LoanResult{}, fmt.Errorf("%w: monto excede el máximo permitido de $%.2f",
			domain.ErrInvalidConfig, MaxLoanAmount)
	}
	if input.InterestRate < 0 || input.InterestRate >= MaxInterestRate {
		return domain.LoanResult{}, fmt.Errorf("%w: la tasa debe ser una fracción entre 0.0 y 1.0",
			domain.ErrInvalidConfig)
	}
	if input.TermMonths <= 0 {
		return domain.LoanResult{}, fmt.Errorf("%w: plazo inválido", domain.ErrInvalidConfig)
	}
	if input.TermMonths > MaxTermMonths {
		return domain.LoanResult{}, fmt.Errorf("%w: plazo excede el máximo permitido de %d meses",
			domain.ErrInvalidConfig, MaxTermMonths)
	}

	var cuota float64

	if input.InterestRate == 0 {
		cuota = input.Amount / float64(input.TermMonths)
	} else {
		tasaMensual := input.InterestRate / 12
		n := float64(input.TermMonths)

		cuota = input.Amount * (tasaMensual /
			(1 - math.Pow(1+tasaMensual, -n)))
	}

	total := cuota * float64(input.TermMonths)
	intereses := total - input.Amount

	return domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(cuota),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(intereses),
	}, nil
}
