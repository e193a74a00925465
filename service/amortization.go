package service

import (
	"fmt"
	"sort"

	"loan-optimizer/domain"
)

// monthOutcome resume la aplicación de pagos de un mes sobre el portafolio.
type monthOutcome struct {
	Interest float64
	Paid     float64
	Closed   []string
}

// monthlyRate calcula la tasa mensual efectiva de un préstamo, aplicando el
// descuento por débito automático cuando corresponde. Nunca es negativa.
func monthlyRate(loan domain.Loan, cfg domain.SimulationConfig) float64 {
	rate := loan.InterestRate
	if loan.AutoPay {
		rate -= cfg.AutoPayDiscount
	}
	if rate < 0 {
		rate = 0
	}
	return rate / 12
}

// sortAvalanche ordena el portafolio por tasa descendente; los empates se
// resuelven por nombre ascendente para que la asignación sea determinista.
func sortAvalanche(loans []domain.Loan) {
	sort.Slice(loans, func(i, j int) bool {
		if loans[i].InterestRate == loans[j].InterestRate {
			return loans[i].Name < loans[j].Name
		}
		return loans[i].InterestRate > loans[j].InterestRate
	})
}

func totalBalance(loans []domain.Loan) float64 {
	total := 0.0
	for _, l := range loans {
		total += l.Balance
	}
	return total
}

func anyOpen(loans []domain.Loan) bool {
	for _, l := range loans {
		if l.Balance > BalanceTolerance {
			return true
		}
	}
	return false
}

// plannedMinimums suma los pagos mínimos de los préstamos abiertos. Es el
// presupuesto que el simulador entrega al motor cada mes.
func plannedMinimums(loans []domain.Loan) float64 {
	total := 0.0
	for _, l := range loans {
		if l.Balance > BalanceTolerance {
			total += l.MinimumPayment
		}
	}
	return total
}

// payAvalanche aplica un monto extra al portafolio en orden avalancha: todo
// al préstamo abierto de mayor tasa hasta cerrarlo, luego al siguiente.
// Asume el portafolio ya ordenado por sortAvalanche. Devuelve lo realmente
// aplicado; nunca deja balances negativos.
func payAvalanche(loans []domain.Loan, amount float64) float64 {
	applied := 0.0
	for i := range loans {
		if amount <= 0 {
			break
		}
		if loans[i].Balance <= 0 {
			continue
		}
		pay := amount
		if pay > loans[i].Balance {
			pay = loans[i].Balance
		}
		loans[i].Balance -= pay
		applied += pay
		amount -= pay
	}
	return applied
}

// stepMonth avanza el portafolio un mes: acumula interés sobre los balances
// abiertos y luego asigna el presupuesto — mínimos primero, el excedente al
// préstamo de mayor tasa. Un presupuesto que no cubre los mínimos es un
// error de configuración, no se reparte en silencio.
func stepMonth(loans []domain.Loan, cfg domain.SimulationConfig, budget float64) (monthOutcome, error) {
	var out monthOutcome

	for i := range loans {
		if loans[i].Balance <= 0 {
			continue
		}
		interest := loans[i].Balance * monthlyRate(loans[i], cfg)
		loans[i].Balance += interest
		out.Interest += interest
	}

	required := 0.0
	for _, l := range loans {
		if l.Balance <= 0 {
			continue
		}
		min := l.MinimumPayment
		if min > l.Balance {
			min = l.Balance
		}
		required += min
	}
	if budget+BalanceTolerance < required {
		return monthOutcome{}, fmt.Errorf(
			"%w: presupuesto mensual de $%.2f no cubre los pagos mínimos de $%.2f",
			domain.ErrInvalidConfig, budget, required)
	}

	remaining := budget
	for i := range loans {
		if loans[i].Balance <= 0 {
			continue
		}
		pay := loans[i].MinimumPayment
		if pay > loans[i].Balance {
			pay = loans[i].Balance
		}
		if pay > remaining {
			pay = remaining
		}
		loans[i].Balance -= pay
		out.Paid += pay
		remaining -= pay
		if loans[i].Balance <= 0 {
			out.Closed = append(out.Closed, loans[i].Name)
		}
	}

	// El excedente que ya no tiene deuda que pagar simplemente no se gasta.
	if remaining > 0 {
		before := openNames(loans)
		out.Paid += payAvalanche(loans, remaining)
		for _, name := range before {
			if closedNow(loans, name) {
				out.Closed = append(out.Closed, name)
			}
		}
	}

	return out, nil
}

func openNames(loans []domain.Loan) []string {
	names := []string{}
	for _, l := range loans {
		if l.Balance > 0 {
			names = append(names, l.Name)
		}
	}
	return names
}

func closedNow(loans []domain.Loan, name string) bool {
	for _, l := range loans {
		if l.Name == name {
			return l.Balance <= 0
		}
	}
	return false
}

func balancesOf(loans []domain.Loan) []domain.LoanBalance {
	balances := make([]domain.LoanBalance, len(loans))
	for i, l := range loans {
		balances[i] = domain.LoanBalance{Name: l.Name, Balance: l.Balance}
	}
	return balances
}
