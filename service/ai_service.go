package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type AIService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAIService() *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	enabled := apiKey != ""

	return &AIService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateOptimizationExplanation genera una explicación inteligente del pago
// adelantado óptimo seleccionado por el barrido
func (s *AIService) GenerateOptimizationExplanation(
	earlyPayment float64,
	nominalCost float64,
	adjustedCost float64,
	monthsToPayoff int,
	employerCredits float64,
	savingsRate float64,
) string {
	if !s.enabled {
		return s.generateFallbackExplanation(earlyPayment, adjustedCost, monthsToPayoff, employerCredits)
	}

	creditText := "El prestatario no recibe aporte del empleador."
	if employerCredits > 0 {
		creditText = fmt.Sprintf(
			"Durante la simulación el empleador aporta $%.2f en total contra el capital de la deuda.",
			employerCredits)
	}

	prompt := fmt.Sprintf(`Analiza este resultado de optimización de pago adelantado de préstamos estudiantiles y genera una explicación clara y educativa.

RESULTADO DEL BARRIDO:
- Pago adelantado óptimo hoy: $%.2f
- Costo nominal total de la estrategia: $%.2f
- Costo total ajustado a valor presente (tasa de ahorro %.2f%% anual): $%.2f
- Meses hasta liquidar toda la deuda: %d (%.1f años)
- %s

INSTRUCCIONES:
1. Explica por qué este monto de pago adelantado minimiza el costo en dólares de hoy.
2. Si hay aporte del empleador, explica el balance entre pagar rápido y esperar para capturar el beneficio anual.
3. Explica en términos sencillos qué significa comparar estrategias en valor presente en lugar de totales nominales.
4. Sé específico con los números y realista con las conclusiones.

Genera una explicación de 3-4 oraciones fácil de entender para cualquier persona.`,
		earlyPayment, nominalCost, savingsRate*100, adjustedCost,
		monthsToPayoff, float64(monthsToPayoff)/12.0, creditText)

	explanation, err := s.callLLM(prompt)
	if err != nil {
		log.Printf("Error calling AI service for optimization explanation: %v", err)
		return s.generateFallbackExplanation(earlyPayment, adjustedCost, monthsToPayoff, employerCredits)
	}

	return explanation
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: "gpt-4o-mini",
		Messages: []Message{
			{
				Role:    "system",
				Content: "Eres un asesor financiero experto en estrategias de pago de préstamos estudiantiles. Proporcionas explicaciones claras, precisas y motivacionales en español sobre pagos adelantados, valor presente del dinero y beneficios de contrapartida del empleador. Tus explicaciones son educativas, fáciles de entender y ayudan a los usuarios a tomar decisiones financieras informadas.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

func (s *AIService) generateFallbackExplanation(
	earlyPayment float64,
	adjustedCost float64,
	monthsToPayoff int,
	employerCredits float64,
) string {
	if employerCredits > 0 {
		return fmt.Sprintf("Pagar $%.2f por adelantado hoy minimiza el costo total en dólares de hoy ($%.2f), liquidando la deuda en %d meses (%.1f años). Mantener parte de la deuda permite capturar $%.2f en aportes del empleador, que solo aplican mientras exista saldo pendiente; por eso adelantar más dinero no siempre reduce el costo ajustado.",
			earlyPayment, adjustedCost, monthsToPayoff, float64(monthsToPayoff)/12.0, employerCredits)
	}
	return fmt.Sprintf("Pagar $%.2f por adelantado hoy minimiza el costo total en dólares de hoy ($%.2f), liquidando la deuda en %d meses (%.1f años). Sin aporte del empleador, reducir capital temprano evita intereses futuros y es la estrategia más barata en valor presente.",
		earlyPayment, adjustedCost, monthsToPayoff, float64(monthsToPayoff)/12.0)
}
