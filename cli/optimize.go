package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"loan-optimizer/config"
	"loan-optimizer/domain"
	"loan-optimizer/repository"
	"loan-optimizer/service"
)

func newOptimizeCmd(cfgFile *string) *cobra.Command {
	var (
		loansFile       string
		savingsRate     float64
		employerAmount  float64
		employerMonth   int
		startMonth      int
		autoPayDiscount float64
		increment       float64
		horizonMonths   int
		maxEarlyPayment float64
		verbosity       int
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Calcula el pago adelantado óptimo para un archivo de préstamos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if loansFile == "" {
				return errors.New("--loans es requerido")
			}

			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}

			loans, err := repository.LoadLoansCSV(loansFile)
			if err != nil {
				return err
			}

			simConfig := domain.SimulationConfig{
				HorizonMonths:   cfg.Defaults.HorizonMonths,
				SavingsRate:     savingsRate,
				EmployerAmount:  employerAmount,
				EmployerMonth:   employerMonth,
				StartMonth:      cfg.Defaults.StartMonth,
				AutoPayDiscount: autoPayDiscount,
				Increment:       cfg.Defaults.Increment,
				MaxEarlyPayment: maxEarlyPayment,
				Verbosity:       verbosity,
			}
			if horizonMonths > 0 {
				simConfig.HorizonMonths = horizonMonths
			}
			if increment > 0 {
				simConfig.Increment = increment
			}
			if startMonth > 0 {
				simConfig.StartMonth = startMonth
			}

			optimizer := service.NewOptimizerService(
				service.NewSimulationService(),
				repository.NewRunRepositoryMemory(),
				repository.NewMemoryCache(),
			)

			result, err := optimizer.OptimizeEarlyPayment(domain.OptimizationInput{
				Loans:  loans,
				Config: simConfig,
			})
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), result, verbosity)
			return nil
		},
	}

	cmd.Flags().StringVar(&loansFile, "loans", "", "archivo CSV de préstamos (name,balance,interest_rate,minimum_payment[,auto_pay])")
	cmd.Flags().Float64Var(&savingsRate, "savings-rate", 0, "tasa anual de la cuenta de ahorro, como fracción (0.04 = 4%)")
	cmd.Flags().Float64Var(&employerAmount, "employer-amount", 0, "aporte anual del empleador en dólares")
	cmd.Flags().IntVar(&employerMonth, "employer-month", 0, "mes calendario del aporte del empleador (1-12)")
	cmd.Flags().IntVar(&startMonth, "start-month", 0, "mes calendario del primer mes simulado (1-12)")
	cmd.Flags().Float64Var(&autoPayDiscount, "auto-pay-discount", 0, "descuento de tasa por débito automático, como fracción")
	cmd.Flags().Float64Var(&increment, "increment", 0, "paso del barrido de pagos adelantados en dólares")
	cmd.Flags().IntVar(&horizonMonths, "horizon-months", 0, "horizonte de simulación en meses")
	cmd.Flags().Float64Var(&maxEarlyPayment, "max-early-payment", 0, "tope del barrido; 0 = balance total")
	cmd.Flags().IntVarP(&verbosity, "verbosity", "v", 1, "1 resumen, 2 candidatos, 3 detalle mensual")

	return cmd
}
