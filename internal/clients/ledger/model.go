package ledger

import "github.com/payportal/go-selfservice/internal/models"

type TransactionSearchResult struct {
	Total   int                  `json:"total"`
	Count   int                  `json:"count"`
	Page    int                  `json:"page"`
	Results []models.Transaction `json:"results"`
}

type eventsResponse struct {
	TransactionID string                    `json:"transaction_id"`
	Events        []models.TransactionEvent `json:"events"`
}
