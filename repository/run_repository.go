package repository

import "loan-optimizer/domain"

type RunRepository interface {
	Save(run domain.OptimizationRun) error
	List() ([]domain.OptimizationRun, error)
}
