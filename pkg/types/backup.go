package types

import "time"

// BackupVersion is the current backup payload format version.
const BackupVersion = 1

// Backup is the versioned JSON snapshot produced by Export and consumed by
// Import. Data maps each table name to its rows with native JSON types:
// every column of every row, untransformed (booleans appear in their stored
// 0/1 form).
type Backup struct {
	Version    int                         `json:"version"`
	ExportedAt time.Time                   `json:"exportedAt"`
	Data       map[string][]map[string]any `json:"data"`
}
