package models

// Summary holds the headline metrics of a generated dataset.
// swagger:model Summary
type Summary struct {
	// Number of generated transactions
	// example: 700
	Total int `json:"total"`

	// Number of transactions flagged as suspicious
	// example: 41
	Suspicious int `json:"suspicious"`

	// Share of flagged transactions in percent, two decimals
	// example: 5.86
	FraudRate float64 `json:"fraud_rate"`

	// Sum of flagged amounts rounded to cents
	// example: 4821.37
	SuspiciousValue float64 `json:"suspicious_value"`

	// Sum of flagged amounts formatted for display
	// example: R$ 4,821.37
	SuspiciousValueDisplay string `json:"suspicious_value_display"`

	// Flagged transactions per category
	ByCategory map[string]int `json:"by_category"`

	// Flagged transactions per region code
	ByLocation map[string]int `json:"by_location"`
}

// TransactionsResponse wraps a list of transactions.
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Number of days covered
	// example: 7
	Days int `json:"days"`

	Transactions []Transaction `json:"transactions"`
}

// Alert is a human readable notice about a flagged transaction.
// swagger:model Alert
type Alert struct {
	// Alert identifier
	ID string `json:"id"`

	// Date and time as dd/mm/yyyy HH:MM
	// example: 18/10/2026 03:17
	DateTime string `json:"date_time"`

	// example: R$ 1,204.50
	Value string `json:"value"`

	// example: Transfer
	Category string `json:"category"`

	// example: RJ
	Location string `json:"location"`

	// Rendered message
	Message string `json:"message"`
}

// AlertsResponse wraps the newest alerts.
// swagger:model AlertsResponse
type AlertsResponse struct {
	Alerts []Alert `json:"alerts"`
}

// RulesResponse describes the active detection heuristics.
// swagger:model RulesResponse
type RulesResponse struct {
	// Name of the labeling strategy in use
	// example: percentile
	Strategy string `json:"strategy"`

	// Configured suspicious value limit
	// example: 5000
	SuspiciousValueLimit float64 `json:"suspicious_value_limit"`

	// Human readable rule list
	Rules []string `json:"rules"`
}

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: days must be between 1 and 30
	Error string `json:"error"`
}

// DatasetKey identifies a generated dataset: the same key always yields the
// same records, apart from timestamps, which depend on the generation day.
type DatasetKey struct {
	Day   string  // generation day, YYYY-MM-DD
	Count int     // number of records
	Seed  uint64  // random seed
	Rule  string  // labeling strategy name
	Limit float64 // suspicious value limit, only meaningful for the threshold rule
}
