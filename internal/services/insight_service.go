package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"money-monitor/internal/config"
	"money-monitor/internal/models"

	"google.golang.org/genai"
)

// Canned messages returned when the model is unavailable. The endpoint
// always answers with something encouraging; upstream failures are an
// operational detail, not a user-facing error.
const (
	fallbackNoAPIKey = "Great job tracking your money! Remember that every dollar saved today is a step toward your big goals."
	fallbackEmpty    = "Keep up the great work! Consistency is key to growing your savings."
	fallbackError    = "Nice work on staying organized! Keep tracking those transactions to see your habits clearly."
)

type insightService struct {
	cfg     config.InsightConfig
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewInsightService(cfg config.InsightConfig, metrics MetricsRecorderInterface) InsightServiceInterface {
	return &insightService{
		cfg:     cfg,
		metrics: metrics,
		logger:  slog.Default(),
	}
}

// GenerateInsight asks Gemini for a few short coaching tips based on the
// most recent transactions. Every failure path degrades to a canned
// message; this method never returns an error.
func (s *insightService) GenerateInsight(ctx context.Context, transactions []models.Transaction) string {
	startTime := time.Now()

	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		s.metrics.IncrementCounter("insight.request", map[string]string{"outcome": "no_api_key"})
		return fallbackNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		s.logger.Warn("failed to create insight client", slog.String("error", err.Error()))
		s.metrics.IncrementCounter("insight.request", map[string]string{"outcome": "client_error"})
		return fallbackError
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: s.buildPrompt(transactions)},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, s.cfg.Model, contents, nil)
	if err != nil {
		s.logger.Warn("insight request failed", slog.String("error", err.Error()))
		s.metrics.IncrementCounter("insight.request", map[string]string{"outcome": "request_error"})
		return fallbackError
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		s.metrics.IncrementCounter("insight.request", map[string]string{"outcome": "empty_response"})
		return fallbackEmpty
	}

	s.metrics.IncrementCounter("insight.request", map[string]string{"outcome": "success"})
	s.metrics.RecordProcessingTime("insight.request", time.Since(startTime))
	s.logger.Info("insight generated",
		slog.Int("transaction_count", len(transactions)),
		slog.Duration("duration", time.Since(startTime)),
	)

	return text
}

// buildPrompt summarizes the tail of the collection, one line per
// transaction, and asks for a handful of friendly tips.
func (s *insightService) buildPrompt(transactions []models.Transaction) string {
	recent := transactions
	if len(recent) > s.cfg.RecentCount {
		recent = recent[len(recent)-s.cfg.RecentCount:]
	}

	var lines []string
	for i := range recent {
		lines = append(lines, fmt.Sprintf("%s: %s of $%s for %s (%s)",
			recent[i].Date,
			recent[i].Type,
			recent[i].Amount.StringFixed(2),
			recent[i].Category,
			recent[i].Comment,
		))
	}

	return fmt.Sprintf(
		"The user is tracking their personal money. Here are their recent transactions:\n%s\n\n"+
			"Based on this, give 3 short, encouraging, and easy-to-understand financial tips or insights. "+
			"Keep the tone friendly and motivating. Use bullet points.",
		strings.Join(lines, "\n"),
	)
}
