package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"loan-optimizer/domain"
)

// Columnas esperadas en un archivo de préstamos. La columna auto_pay es
// opcional.
var expectedColumns = []string{"name", "balance", "interest_rate", "minimum_payment"}

// LoadLoansCSV lee préstamos desde un archivo CSV con encabezado
// name,balance,interest_rate,minimum_payment[,auto_pay]. Cualquier registro
// malformado se reporta con su número de fila y detiene la carga: los datos
// inválidos nunca llegan al simulador.
func LoadLoansCSV(path string) ([]domain.Loan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: no se pudo abrir %s: %v", domain.ErrInvalidData, path, err)
	}
	defer f.Close()
	return ReadLoans(f)
}

// ReadLoans parsea préstamos desde cualquier reader CSV.
func ReadLoans(r io.Reader) ([]domain.Loan, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: encabezado CSV ilegible: %v", domain.ErrInvalidData, err)
	}
	withAutoPay, err := checkHeader(header)
	if err != nil {
		return nil, err
	}

	loans := []domain.Loan{}
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: fila %d: %v", domain.ErrInvalidData, row, err)
		}

		loan := domain.Loan{Name: record[0]}
		if loan.Name == "" {
			return nil, fmt.Errorf("%w: fila %d: nombre vacío", domain.ErrInvalidData, row)
		}

		loan.Balance, err = parseAmount(record[1], row, "balance")
		if err != nil {
			return nil, err
		}
		loan.InterestRate, err = parseRate(record[2], row)
		if err != nil {
			return nil, err
		}
		loan.MinimumPayment, err = parseAmount(record[3], row, "minimum_payment")
		if err != nil {
			return nil, err
		}
		if withAutoPay {
			loan.AutoPay, err = strconv.ParseBool(record[4])
			if err != nil {
				return nil, fmt.Errorf("%w: fila %d: auto_pay debe ser true/false",
					domain.ErrInvalidData, row)
			}
		}

		loans = append(loans, loan)
	}

	return loans, nil
}

func checkHeader(header []string) (withAutoPay bool, err error) {
	switch len(header) {
	case len(expectedColumns):
	case len(expectedColumns) + 1:
		if header[4] != "auto_pay" {
			return false, fmt.Errorf("%w: columna 5 debe ser auto_pay, no %q",
				domain.ErrInvalidData, header[4])
		}
		withAutoPay = true
	default:
		return false, fmt.Errorf("%w: se esperaban columnas %v", domain.ErrInvalidData, expectedColumns)
	}
	for i, want := range expectedColumns {
		if header[i] != want {
			return false, fmt.Errorf("%w: columna %d debe ser %s, no %q",
				domain.ErrInvalidData, i+1, want, header[i])
		}
	}
	return withAutoPay, nil
}

func parseAmount(value string, row int, column string) (float64, error) {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: fila %d: %s no es un monto: %q",
			domain.ErrInvalidData, row, column, value)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: fila %d: %s negativo", domain.ErrInvalidData, row, column)
	}
	return amount, nil
}

func parseRate(value string, row int) (float64, error) {
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: fila %d: interest_rate no es un número: %q",
			domain.ErrInvalidData, row, value)
	}
	if rate < 0 || rate >= 1 {
		return 0, fmt.Errorf("%w: fila %d: interest_rate debe ser una fracción entre 0.0 y 1.0",
			domain.ErrInvalidData, row)
	}
	return rate, nil
}
