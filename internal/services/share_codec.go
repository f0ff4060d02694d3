package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"money-monitor/internal/models"
)

// DefaultShareLimit caps how many records a share token carries. The cap
// keeps tokens small enough to travel inside a URL.
const DefaultShareLimit = 100

var (
	ErrMalformedShareToken = errors.New("share token is malformed")
)

type shareCodec struct {
	metrics MetricsRecorderInterface
}

func NewShareCodec(metrics MetricsRecorderInterface) ShareCodecInterface {
	return &shareCodec{metrics: metrics}
}

// Encode serializes the last limit records, by insertion order, into an
// opaque URL-safe token. A non-positive limit falls back to the default
// cap.
func (c *shareCodec) Encode(transactions []models.Transaction, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultShareLimit
	}
	if len(transactions) > limit {
		transactions = transactions[len(transactions)-limit:]
	}

	payload, err := json.Marshal(transactions)
	if err != nil {
		return "", fmt.Errorf("failed to encode share payload: %w", err)
	}

	c.metrics.IncrementCounter("share.minted", nil)

	return base64.URLEncoding.EncodeToString(payload), nil
}

// Decode is the inverse of Encode. Any token that is not valid base64
// wrapping a JSON transaction array, or that carries an invalid record,
// yields ErrMalformedShareToken so callers can fall back to normal mode.
func (c *shareCodec) Decode(token string) ([]models.Transaction, error) {
	payload, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrMalformedShareToken
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(payload, &transactions); err != nil {
		return nil, ErrMalformedShareToken
	}

	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return nil, ErrMalformedShareToken
		}
	}

	return transactions, nil
}
