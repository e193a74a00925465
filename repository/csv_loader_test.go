package repository

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loan-optimizer/domain"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loans.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp csv: %v", err)
	}
	return path
}

func TestLoadLoansCSV_OK(t *testing.T) {

	path := writeTempCSV(t, `name,balance,interest_rate,minimum_payment,auto_pay
federal,12500.50,0.055,150,true
privado,8000,0.068,120,false
`)

	loans, err := LoadLoansCSV(path)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 2 {
		t.Fatalf("expected 2 loans, got %d", len(loans))
	}
	if loans[0].Name != "federal" || loans[0].Balance != 12500.50 || !loans[0].AutoPay {
		t.Errorf("unexpected first loan: %+v", loans[0])
	}
	if loans[1].InterestRate != 0.068 || loans[1].AutoPay {
		t.Errorf("unexpected second loan: %+v", loans[1])
	}
}

func TestLoadLoansCSV_AutoPayColumnOptional(t *testing.T) {

	path := writeTempCSV(t, `name,balance,interest_rate,minimum_payment
uni,5000,0.04,90
`)

	loans, err := LoadLoansCSV(path)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 1 || loans[0].AutoPay {
		t.Errorf("expected one loan without auto-pay, got %+v", loans)
	}
}

func TestLoadLoansCSV_BadHeader(t *testing.T) {

	path := writeTempCSV(t, `nombre,monto,tasa,minimo
uni,5000,0.04,90
`)

	_, err := LoadLoansCSV(path)

	if err == nil {
		t.Fatalf("expected error for wrong header")
	}
	if !errors.Is(err, domain.ErrInvalidData) {
		t.Errorf("expected ErrInvalidData, got %v", err)
	}
}

func TestLoadLoansCSV_RowErrorsNameTheRow(t *testing.T) {

	cases := []struct {
		name string
		rows string
	}{
		{"monto ilegible", "uni,abc,0.04,90"},
		{"tasa fuera de rango", "uni,5000,1.2,90"},
		{"balance negativo", "uni,-5,0.04,90"},
		{"nombre vacío", ",5000,0.04,90"},
	}

	for _, tc := range cases {
		path := writeTempCSV(t, "name,balance,interest_rate,minimum_payment\nok,1000,0.05,50\n"+tc.rows+"\n")

		_, err := LoadLoansCSV(path)

		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !errors.Is(err, domain.ErrInvalidData) {
			t.Errorf("%s: expected ErrInvalidData, got %v", tc.name, err)
		}
		if !strings.Contains(err.Error(), "fila 2") {
			t.Errorf("%s: expected row number in error, got %v", tc.name, err)
		}
	}
}

func TestLoadLoansCSV_MissingFile(t *testing.T) {

	_, err := LoadLoansCSV(filepath.Join(t.TempDir(), "no-existe.csv"))

	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !errors.Is(err, domain.ErrInvalidData) {
		t.Errorf("expected ErrInvalidData, got %v", err)
	}
}
