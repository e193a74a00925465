package service

import (
	"errors"
	"fmt"

	"loan-optimizer/domain"
)

type SimulationService struct{}

func NewSimulationService() *SimulationService {
	return &SimulationService{}
}

// normalizedConfig completa los valores por defecto sin mutar la entrada.
func normalizedConfig(cfg domain.SimulationConfig) domain.SimulationConfig {
	if cfg.HorizonMonths == 0 {
		cfg.HorizonMonths = DefaultHorizonMonths
	}
	if cfg.StartMonth == 0 {
		cfg.StartMonth = DefaultStartMonth
	}
	if cfg.Increment == 0 {
		cfg.Increment = DefaultIncrement
	}
	if cfg.Verbosity == 0 {
		cfg.Verbosity = DefaultVerbosity
	}
	return cfg
}

func validateConfig(cfg domain.SimulationConfig) error {
	if cfg.HorizonMonths < 1 || cfg.HorizonMonths > MaxHorizonMonths {
		return fmt.Errorf("%w: horizonte de %d meses fuera del rango 1-%d",
			domain.ErrInvalidConfig, cfg.HorizonMonths, MaxHorizonMonths)
	}
	if cfg.SavingsRate < 0 || cfg.SavingsRate >= MaxInterestRate {
		return fmt.Errorf("%w: tasa de ahorro debe ser una fracción entre 0.0 y 1.0",
			domain.ErrInvalidConfig)
	}
	if cfg.EmployerAmount < 0 {
		return fmt.Errorf("%w: monto del empleador negativo", domain.ErrInvalidConfig)
	}
	if cfg.EmployerAmount > 0 && (cfg.EmployerMonth < 1 || cfg.EmployerMonth > 12) {
		return fmt.Errorf("%w: mes del empleador %d fuera del rango 1-12",
			domain.ErrInvalidConfig, cfg.EmployerMonth)
	}
	if cfg.StartMonth < 1 || cfg.StartMonth > 12 {
		return fmt.Errorf("%w: mes de inicio %d fuera del rango 1-12",
			domain.ErrInvalidConfig, cfg.StartMonth)
	}
	if cfg.AutoPayDiscount < 0 || cfg.AutoPayDiscount >= MaxInterestRate {
		return fmt.Errorf("%w: descuento por débito automático debe ser una fracción entre 0.0 y 1.0",
			domain.ErrInvalidConfig)
	}
	if cfg.Increment <= 0 {
		return fmt.Errorf("%w: incremento del barrido inválido", domain.ErrInvalidConfig)
	}
	if cfg.MaxEarlyPayment < 0 {
		return fmt.Errorf("%w: pago adelantado máximo negativo", domain.ErrInvalidConfig)
	}
	if cfg.Verbosity < 1 || cfg.Verbosity > 3 {
		return fmt.Errorf("%w: verbosidad %d fuera del rango 1-3",
			domain.ErrInvalidConfig, cfg.Verbosity)
	}
	return nil
}

// validateLoans verifica los invariantes del portafolio antes de simular:
// nombres únicos, montos y tasas en rango, y mínimos que al menos cubren el
// interés del primer mes — si no, el préstamo nunca amortiza.
func validateLoans(loans []domain.Loan, cfg domain.SimulationConfig) error {
	if len(loans) == 0 {
		return fmt.Errorf("%w: no se proporcionaron préstamos", domain.ErrInvalidConfig)
	}
	if len(loans) > MaxLoansPerRequest {
		return fmt.Errorf("%w: número de préstamos excede el máximo de %d",
			domain.ErrInvalidConfig, MaxLoansPerRequest)
	}

	names := make(map[string]bool)
	for _, loan := range loans {
		if loan.Name == "" {
			return fmt.Errorf("%w: nombre de préstamo vacío", domain.ErrInvalidConfig)
		}
		if names[loan.Name] {
			return fmt.Errorf("%w: nombre de préstamo duplicado: %s",
				domain.ErrInvalidConfig, loan.Name)
		}
		names[loan.Name] = true

		if loan.Balance < 0 {
			return fmt.Errorf("%w: %s: balance negativo", domain.ErrInvalidConfig, loan.Name)
		}
		if loan.Balance > MaxLoanAmount {
			return fmt.Errorf("%w: %s: balance excede el máximo de $%.2f",
				domain.ErrInvalidConfig, loan.Name, MaxLoanAmount)
		}
		if loan.InterestRate < 0 || loan.InterestRate >= MaxInterestRate {
			return fmt.Errorf("%w: %s: la tasa debe ser una fracción entre 0.0 y 1.0",
				domain.ErrInvalidConfig, loan.Name)
		}
		if loan.MinimumPayment <= 0 {
			return fmt.Errorf("%w: %s: pago mínimo inválido", domain.ErrInvalidConfig, loan.Name)
		}
		monthlyInterest := loan.Balance * monthlyRate(loan, cfg)
		if loan.MinimumPayment < monthlyInterest {
			return fmt.Errorf("%w: pago mínimo de %s ($%.2f) es menor que su interés mensual ($%.2f)",
				domain.ErrInvalidConfig, loan.Name, loan.MinimumPayment, monthlyInterest)
		}
	}
	return nil
}

// Simulate corre un candidato de pago adelantado sobre una copia del
// portafolio: el pago adelantado se aplica en el mes 0, luego cada mes
// acumula interés, paga mínimos y aplica el crédito del empleador cuando
// corresponde. Termina antes del horizonte si toda la deuda se cierra.
// El portafolio de entrada nunca se muta, así cada candidato es
// independiente y reproducible.
func (s *SimulationService) Simulate(
	loans []domain.Loan,
	cfg domain.SimulationConfig,
	earlyPayment float64,
) (domain.CandidateResult, error) {

	cfg = normalizedConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return domain.CandidateResult{}, err
	}
	if err := validateLoans(loans, cfg); err != nil {
		return domain.CandidateResult{}, err
	}
	if earlyPayment < 0 {
		return domain.CandidateResult{}, fmt.Errorf("%w: pago adelantado negativo",
			domain.ErrInvalidConfig)
	}

	portfolio := make([]domain.Loan, len(loans))
	copy(portfolio, loans)
	sortAvalanche(portfolio)

	ledger := paymentLedger{savingsRate: cfg.SavingsRate}
	result := domain.CandidateResult{EarlyPayment: earlyPayment}

	// Mes 0: el pago adelantado entra directo a capital, sin acumulación
	// de interés y sin descuento a valor presente.
	applied := payAvalanche(portfolio, earlyPayment)
	ledger.record(applied, 0)
	snapshots := []domain.MonthlySnapshot{{
		Month:     0,
		Balances:  balancesOf(portfolio),
		Principal: applied,
		Paid:      applied,
	}}

	for m := 1; m <= cfg.HorizonMonths; m++ {
		if !anyOpen(portfolio) {
			break
		}

		budget := plannedMinimums(portfolio)
		out, err := stepMonth(portfolio, cfg, budget)
		if err != nil {
			return domain.CandidateResult{}, err
		}

		credit := employerCredit(cfg, m, totalBalance(portfolio))
		if credit > 0 {
			credit = payAvalanche(portfolio, credit)
		}

		ledger.record(out.Paid, m)
		snapshots = append(snapshots, domain.MonthlySnapshot{
			Month:          m,
			Balances:       balancesOf(portfolio),
			Interest:       out.Interest,
			Principal:      out.Paid + credit - out.Interest,
			EmployerCredit: credit,
			Paid:           out.Paid,
		})

		result.TotalInterest += out.Interest
		result.EmployerCredits += credit

		if !anyOpen(portfolio) {
			result.MonthsToPayoff = m
			break
		}
	}

	// Si queda deuda al final del horizonte, MonthsToPayoff reporta el
	// horizonte completo y el último snapshot muestra el balance restante.
	if anyOpen(portfolio) {
		result.MonthsToPayoff = cfg.HorizonMonths
	}

	result.NominalCost = roundTo2Decimals(ledger.nominal)
	result.AdjustedCost = roundTo2Decimals(ledger.adjusted)
	result.TotalInterest = roundTo2Decimals(result.TotalInterest)
	result.EmployerCredits = roundTo2Decimals(result.EmployerCredits)
	result.Snapshots = snapshots
	return result, nil
}

// IsInvalidInput indica si un error proviene de validación de entrada.
func IsInvalidInput(err error) bool {
	return errors.Is(err, domain.ErrInvalidConfig) || errors.Is(err, domain.ErrInvalidData)
}
