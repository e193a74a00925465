package domain

import "errors"

// Errores centinela para clasificación amplia. Los mensajes concretos se
// agregan al envolverlos con fmt.Errorf y %w.
var (
	// ErrInvalidConfig cubre parámetros de simulación fuera de rango y
	// portafolios que no pueden amortizarse con los mínimos dados.
	ErrInvalidConfig = errors.New("configuración inválida")

	// ErrInvalidData cubre registros de préstamos malformados detectados
	// en la frontera de carga, antes de llegar al núcleo.
	ErrInvalidData = errors.New("datos inválidos")
)
