package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "loan-optimizer",
		Short:        "Simulador y optimizador de pago adelantado de préstamos",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "ruta del archivo de configuración YAML")

	cmd.AddCommand(newServeCmd(&cfgFile))
	cmd.AddCommand(newOptimizeCmd(&cfgFile))

	return cmd
}
