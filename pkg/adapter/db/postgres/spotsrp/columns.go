package spotsrp

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// stringList is stored as a JSON array in a text column.
type stringList []string

func (sl stringList) Value() (driver.Value, error) {
	if sl == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(sl))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (sl *stringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*sl = nil
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported string list column type: %T", src)
	}
	var l []string
	if err := json.Unmarshal(data, &l); err != nil {
		return fmt.Errorf("decoding string list: %w", err)
	}
	*sl = l
	return nil
}
