package service

import "loan-optimizer/domain"

// calendarMonth traduce el índice de mes simulado (m >= 1) al mes calendario
// 1-12, partiendo del mes de inicio configurado.
func calendarMonth(cfg domain.SimulationConfig, m int) int {
	return ((cfg.StartMonth - 1) + (m - 1)) % 12 + 1
}

// employerCredit decide el crédito del empleador para un mes simulado:
// aplica una vez por año en el mes configurado, mientras quede deuda, y
// nunca más que el balance pendiente. El monto no se ajusta por inflación.
func employerCredit(cfg domain.SimulationConfig, m int, outstanding float64) float64 {
	if cfg.EmployerAmount <= 0 {
		return 0
	}
	if calendarMonth(cfg, m) != cfg.EmployerMonth {
		return 0
	}
	if outstanding <= BalanceTolerance {
		return 0
	}
	credit := cfg.EmployerAmount
	if credit > outstanding {
		credit = outstanding
	}
	return credit
}
