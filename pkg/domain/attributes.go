package domain

import "time"

// Attributes is the basic metadata of a path.
type Attributes struct {
	Name     string
	IsDir    bool
	Size     int64
	Created  time.Time
	Accessed time.Time
	Modified time.Time
}

// FormatTime renders a timestamp as ISO-8601 in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
