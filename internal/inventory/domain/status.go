package domain

// Severity is the urgency tier of a product's stock level.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeverityNormal   Severity = "normal"
)

// StockStatus is the classified stock level of a product.
type StockStatus struct {
	Severity Severity `json:"severity"`
	Label    string   `json:"label"`
}

// Classify maps a stock level against its reorder threshold to one of four
// tiers. The checks are ordered: zero stock wins over the low-stock band,
// which wins over the medium band.
func Classify(stock, minStock int) StockStatus {
	switch {
	case stock == 0:
		return StockStatus{Severity: SeverityCritical, Label: "Out of Stock"}
	case stock <= minStock:
		return StockStatus{Severity: SeverityWarning, Label: "Low Stock"}
	case stock <= minStock*2:
		return StockStatus{Severity: SeverityInfo, Label: "Medium Stock"}
	default:
		return StockStatus{Severity: SeverityNormal, Label: "In Stock"}
	}
}
