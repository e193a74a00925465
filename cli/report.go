package cli

import (
	"fmt"
	"io"

	"loan-optimizer/domain"
)

// printReport formatea el resultado del optimizador para consola. El núcleo
// no imprime nada; todo el reporte vive aquí.
func printReport(w io.Writer, result domain.OptimizationResult, verbosity int) {
	best := result.Best

	fmt.Fprintf(w, "Mejor pago adelantado: $%.2f\n", best.EarlyPayment)
	fmt.Fprintf(w, "Costo nominal: $%.2f | Costo ajustado (hoy): $%.2f\n",
		best.NominalCost, best.AdjustedCost)
	fmt.Fprintf(w, "Intereses pagados: $%.2f | Aportes del empleador: $%.2f\n",
		best.TotalInterest, best.EmployerCredits)
	fmt.Fprintf(w, "Deuda liquidada en %d meses (%.1f años)\n",
		best.MonthsToPayoff, float64(best.MonthsToPayoff)/12.0)

	if result.Explanation != "" {
		fmt.Fprintf(w, "\n%s\n", result.Explanation)
	}

	if verbosity >= 2 && len(result.Candidates) > 0 {
		fmt.Fprintf(w, "\nCandidatos:\n")
		for _, c := range result.Candidates {
			marker := " "
			if c.EarlyPayment == best.EarlyPayment {
				marker = "*"
			}
			fmt.Fprintf(w, "%s $%10.2f -> nominal $%12.2f | ajustado $%12.2f | %3d meses\n",
				marker, c.EarlyPayment, c.NominalCost, c.AdjustedCost, c.MonthsToPayoff)
		}
	}

	if verbosity >= 3 && len(best.Snapshots) > 0 {
		fmt.Fprintf(w, "\nDetalle mensual del mejor candidato:\n")
		for _, snap := range best.Snapshots {
			fmt.Fprintf(w, "[%3d] deuda $%.2f | pagado $%.2f | interés $%.2f",
				snap.Month, totalOf(snap.Balances), snap.Paid, snap.Interest)
			if snap.EmployerCredit > 0 {
				fmt.Fprintf(w, " | aporte empleador $%.2f", snap.EmployerCredit)
			}
			fmt.Fprintln(w)
			for _, b := range snap.Balances {
				fmt.Fprintf(w, "\t%s $%.2f\n", b.Name, b.Balance)
			}
		}
	}
}

func totalOf(balances []domain.LoanBalance) float64 {
	total := 0.0
	for _, b := range balances {
		total += b.Balance
	}
	return total
}
