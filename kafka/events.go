package kafka

import "time"

// TransactionRecordedEvent represents one appended inventory ledger entry
type TransactionRecordedEvent struct {
	EventID           string    `json:"event_id"`
	EventType         string    `json:"event_type"`
	TransactionID     string    `json:"transaction_id"`
	BookID            string    `json:"book_id"`
	DeltaQuantity     int       `json:"delta_quantity"`
	Reason            string    `json:"reason"`
	ResultingQuantity int       `json:"resulting_quantity"`
	Timestamp         time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeTransactionRecorded = "inventory.transaction.recorded"
)

// Kafka topics
const (
	TopicInventoryTransactions = "inventory-transactions"
)
