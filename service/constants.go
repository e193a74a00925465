package service

import "time"

const (
	MaxLoanAmount      = 1_000_000_000.0 // mil millones
	MaxInterestRate    = 1.0             // fracción anual, exclusivo
	MaxTermMonths      = 600             // 50 años
	MaxLoansPerRequest = 50              // máximo de préstamos por request
	MaxHorizonMonths   = 600             // 50 años de simulación
	MaxCandidates      = 1000            // máximo de candidatos en el barrido

	DefaultHorizonMonths = 120    // 10 años
	DefaultIncrement     = 1000.0 // paso del barrido en dólares
	DefaultStartMonth    = 1      // enero
	DefaultVerbosity     = 1

	BalanceTolerance = 0.01 // tolerancia para considerar un préstamo pagado
	CostTolerance    = 0.01 // mejora mínima para desplazar al mejor candidato

	ResultCacheTTL = time.Hour
)
