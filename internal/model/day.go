package model

// DayStatus tracks whether a trading day is currently open. Exactly one
// instance is persisted; only the day service mutates it.
type DayStatus struct {
	DayStarted   bool    `json:"dayStarted"`
	DayStartTime *string `json:"dayStartTime"`
}
