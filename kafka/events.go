package kafka

import "time"

// StockMovementEvent is emitted after a stock movement has been recorded
// and applied.
type StockMovementEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Movement    string    `json:"movement"`
	Quantity    int       `json:"quantity"`
	Actor       string    `json:"actor"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockMovement = "inventory.stock_movement"
)

// Kafka topics
const (
	TopicStockMovements = "inventory-stock-movements"
)
