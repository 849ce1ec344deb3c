package models

// AuditEntry records one confirmed admin mutation.
type AuditEntry struct {
	ID       string `json:"_id,omitempty"`
	Actor    string `json:"actor"`
	Action   string `json:"action"` // status-update | verify | delete
	Entity   string `json:"entity"` // submission | payment
	RecordID string `json:"recordId"`
	Detail   string `json:"detail,omitempty"`
	At       string `json:"at"`
}
