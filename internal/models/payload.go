package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Payload is the complete source document of a scraped record, stored
// verbatim in a JSONB column next to the typed fields. It is never parsed
// beyond that.
type Payload map[string]interface{}

// Value implements the driver.Valuer interface for database storage
func (p Payload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface for database retrieval
func (p *Payload) Scan(value interface{}) error {
	if value == nil {
		*p = Payload{}
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(b, p)
}
