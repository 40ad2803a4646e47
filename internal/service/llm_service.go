package service

import (
	"context"
	"fmt"

	"spendscan/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

type ReceiptClassifier interface {
	Classify(ctx context.Context, ocrText string) (string, error)
}

// classifierInstruction pins the model to a single-line minified JSON
// reply so the parse step can be strict about what it accepts.
const classifierInstruction = `You are an expert at reading OCR results from receipts.
Your task is to extract the final total amount paid and the purchase category.
- For the total, select the line that clearly indicates the final amount due, typically labeled 'TOTAL', 'AMOUNT DUE', or similar.
- Ignore lines mentioning 'cash', 'change', 'amount tendered', 'balance', 'subtotal', 'tax', or any intermediate values.
- Do not select values from lines like 'CASH', 'CHANGE', 'AMOUNT TENDERED', 'BALANCE', 'SUBTOTAL', or 'TAX'.
- For the category, choose one from: Groceries, Dining, Gas, Pharmacy, Shopping, Entertainment, Utilities, Other.
Respond ONLY with a single-line, minified JSON object in the following format:
{"total_amount": <float or "Total amount not found">, "category": <category string or "Category not found">}
- total_amount must be a float (e.g., 12.34) or the string "Total amount not found".
- category must be exactly one of: Groceries, Dining, Gas, Pharmacy, Shopping, Entertainment, Utilities, Other, or "Category not found".
- If multiple totals/categories are found, choose the most likely final total and category.
- Do not include any explanation, formatting, extra text, or newlines.
Example valid output:
{"total_amount": 23.50, "category": "Groceries"}`

// LLMService classifies receipt text with GigaChat.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = classifierInstruction
	model.Temperature = 0

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Classify sends the OCR text blob to the model and returns its raw reply.
func (s *LLMService) Classify(ctx context.Context, ocrText string) (string, error) {
	messages := []gigago.Message{
		{
			Role:    gigago.RoleUser,
			Content: fmt.Sprintf("Extract the total amount and category from the following OCR results:\n%s", ocrText),
		},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	reply := resp.Choices[0].Message.Content
	s.logger.Debug("Classifier reply", zap.String("reply", reply))

	return reply, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
