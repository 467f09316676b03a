package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// MinQuantityType controls how the wholesale quantity threshold is evaluated:
// per cart line or against the whole cart.
type MinQuantityType string

const (
	MinQuantityTypePerItem MinQuantityType = "perItem"
	MinQuantityTypeTotal   MinQuantityType = "total"
)

func (t MinQuantityType) String() string {
	return string(t)
}

func (t MinQuantityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *MinQuantityType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = MinQuantityType(str)
	return nil
}

func (t MinQuantityType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *MinQuantityType) Scan(value interface{}) error {
	if value == nil {
		*t = MinQuantityTypePerItem
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = MinQuantityType(v)
	case []byte:
		*t = MinQuantityType(string(v))
	}
	return nil
}
