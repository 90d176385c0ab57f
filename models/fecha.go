package models

import (
	"strings"
	"time"
)

// fecha layouts accepted from the server. The API serialises Java
// LocalDateTime values without a zone offset, so plain RFC 3339 parsing
// would reject them.
var fechaLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// Fecha is a timestamp as transmitted by the ForoHub API.
// It behaves like [time.Time] but tolerates the zone-less layout the server
// produces. A missing or empty value unmarshals to the zero time.
type Fecha struct {
	time.Time
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}

	var lastErr error
	for _, layout := range fechaLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			f.Time = t
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + f.Format("2006-01-02T15:04:05") + `"`), nil
}
