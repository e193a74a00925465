package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"loan-optimizer/domain"
	"loan-optimizer/repository"
)

type OptimizerService struct {
	sim   *SimulationService
	runs  repository.RunRepository
	cache repository.CacheRepository
	ai    *AIService
}

func NewOptimizerService(
	sim *SimulationService,
	runs repository.RunRepository,
	cache repository.CacheRepository,
) *OptimizerService {
	return &OptimizerService{
		sim:   sim,
		runs:  runs,
		cache: cache,
		ai:    NewAIService(),
	}
}

// OptimizeEarlyPayment barre candidatos de pago adelantado en incrementos
// fijos — 0, inc, 2·inc, ... hasta el balance total o el máximo configurado —
// simula cada uno sobre una copia fresca del portafolio y selecciona el de
// menor costo ajustado a valor presente. Ante un empate dentro de $0.01 gana
// el pago adelantado menor: compromete menos efectivo hoy.
func (s *OptimizerService) OptimizeEarlyPayment(
	input domain.OptimizationInput,
) (domain.OptimizationResult, error) {

	cfg := normalizedConfig(input.Config)
	if err := validateConfig(cfg); err != nil {
		return domain.OptimizationResult{}, err
	}
	if err := validateLoans(input.Loans, cfg); err != nil {
		return domain.OptimizationResult{}, err
	}
	input.Config = cfg

	if cached, ok := s.lookupCache(input); ok {
		return cached, nil
	}

	limit := totalBalance(input.Loans)
	if cfg.MaxEarlyPayment > 0 && cfg.MaxEarlyPayment < limit {
		limit = cfg.MaxEarlyPayment
	}
	if limit/cfg.Increment > MaxCandidates {
		return domain.OptimizationResult{}, fmt.Errorf(
			"%w: el barrido excede %d candidatos; use un incremento mayor",
			domain.ErrInvalidConfig, MaxCandidates)
	}

	var result domain.OptimizationResult
	var best domain.CandidateResult
	haveBest := false

	for amount := 0.0; amount <= limit+BalanceTolerance; amount += cfg.Increment {
		candidate, err := s.sim.Simulate(input.Loans, cfg, amount)
		if err != nil {
			return domain.OptimizationResult{}, err
		}

		if cfg.Verbosity >= 2 {
			summary := candidate
			summary.Snapshots = nil
			result.Candidates = append(result.Candidates, summary)
		}

		// Solo un candidato estrictamente mejor desplaza al actual; así
		// los empates favorecen al pago adelantado más pequeño.
		if !haveBest || best.AdjustedCost-candidate.AdjustedCost > CostTolerance {
			best = candidate
			haveBest = true
		}
	}

	if cfg.Verbosity < 3 {
		best.Snapshots = nil
	}
	result.Best = best
	result.Explanation = s.ai.GenerateOptimizationExplanation(
		best.EarlyPayment,
		best.NominalCost,
		best.AdjustedCost,
		best.MonthsToPayoff,
		best.EmployerCredits,
		cfg.SavingsRate,
	)

	s.storeRun(input, best)
	s.storeCache(input, result)

	return result, nil
}

// optimizationCacheKey deriva una clave estable a partir de la entrada
// canónica serializada en JSON.
func optimizationCacheKey(input domain.OptimizationInput) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("optimize:%016x", xxhash.Sum64(payload)), nil
}

func (s *OptimizerService) lookupCache(input domain.OptimizationInput) (domain.OptimizationResult, bool) {
	key, err := optimizationCacheKey(input)
	if err != nil {
		return domain.OptimizationResult{}, false
	}
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.OptimizationResult{}, false
	}
	var result domain.OptimizationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Warning: discarding corrupt cached result: %v", err)
		return domain.OptimizationResult{}, false
	}
	return result, true
}

func (s *OptimizerService) storeCache(input domain.OptimizationInput, result domain.OptimizationResult) {
	key, err := optimizationCacheKey(input)
	if err != nil {
		log.Printf("Warning: failed to build cache key: %v", err)
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to marshal result for cache: %v", err)
		return
	}
	if err := s.cache.Set(key, string(payload), ResultCacheTTL); err != nil {
		log.Printf("Warning: failed to cache optimization result: %v", err)
	}
}

// storeRun persiste la corrida (no crítico si falla).
func (s *OptimizerService) storeRun(input domain.OptimizationInput, best domain.CandidateResult) {
	best.Snapshots = nil
	run := domain.OptimizationRun{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Input:     input,
		Best:      best,
	}
	if err := s.runs.Save(run); err != nil {
		log.Printf("Warning: failed to save optimization run: %v", err)
	}
}
