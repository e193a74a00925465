package service

import (
	"math"

	"loan-optimizer/domain"
)

// discount trae un pago futuro a dólares de hoy usando la tasa de ahorro
// anual con capitalización mensual.
func discount(amount, savingsRate float64, month int) float64 {
	if savingsRate == 0 || month == 0 {
		return amount
	}
	return amount / math.Pow(1+savingsRate/12, float64(month))
}

// paymentLedger acumula los desembolsos del prestatario en términos
// nominales y ajustados a valor presente.
type paymentLedger struct {
	savingsRate float64
	nominal     float64
	adjusted    float64
}

func (l *paymentLedger) record(amount float64, month int) {
	l.nominal += amount
	l.adjusted += discount(amount, l.savingsRate, month)
}

// adjustedCost colapsa una serie mensual al costo total en dólares de hoy.
// Con tasa de ahorro cero es idéntico a la suma nominal.
func adjustedCost(snapshots []domain.MonthlySnapshot, savingsRate float64) float64 {
	total := 0.0
	for _, s := range snapshots {
		total += discount(s.Paid, savingsRate, s.Month)
	}
	return total
}
