package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PurchaseStatus represents the status of a supplier purchase order
type PurchaseStatus int

const (
	PurchaseStatusPending   PurchaseStatus = 0
	PurchaseStatusCompleted PurchaseStatus = 1
	PurchaseStatusCancelled PurchaseStatus = 2
)

func (s PurchaseStatus) String() string {
	names := [...]string{"pending", "completed", "cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

// ParsePurchaseStatus maps a status name to its enum value
func ParsePurchaseStatus(str string) (PurchaseStatus, bool) {
	switch str {
	case "pending":
		return PurchaseStatusPending, true
	case "completed":
		return PurchaseStatusCompleted, true
	case "cancelled":
		return PurchaseStatusCancelled, true
	}
	return PurchaseStatusPending, false
}

func (s PurchaseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PurchaseStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PurchaseStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = PurchaseStatusPending
	case "completed":
		*s = PurchaseStatusCompleted
	case "cancelled":
		*s = PurchaseStatusCancelled
	}
	return nil
}

func (s PurchaseStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PurchaseStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PurchaseStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PurchaseStatus(v)
	case int:
		*s = PurchaseStatus(v)
	}
	return nil
}
