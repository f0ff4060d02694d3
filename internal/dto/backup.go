package dto

import (
	"encoding/json"

	"money-monitor/internal/models"
)

// BackupPayload is the export shape and the canonical import shape
type BackupPayload struct {
	Transactions []models.Transaction `json:"transactions"`
	Categories   []string             `json:"categories"`
}

// ParseBackup accepts either the canonical object shape or a bare
// transaction array, the two formats older exports used.
func ParseBackup(body []byte) (*BackupPayload, error) {
	var payload BackupPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Transactions != nil {
		return &payload, nil
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(body, &transactions); err != nil {
		return nil, err
	}
	return &BackupPayload{Transactions: transactions}, nil
}
