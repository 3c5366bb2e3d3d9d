package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StoredFile describes one uploaded file kept in the file store.
// Path is relative to the store root and is re-resolved on download or delete.
type StoredFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Mimetype string `json:"mimetype"`
	Size     int64  `json:"size"`
}

// Value implements driver.Valuer so a *StoredFile can live in a jsonb column
func (f StoredFile) Value() (driver.Value, error) {
	b, err := json.Marshal(f)
	return string(b), err
}

// Scan implements sql.Scanner
func (f *StoredFile) Scan(value interface{}) error {
	return scanJSON(value, f)
}

// StoredFiles is a list of files kept in one jsonb column
type StoredFiles []StoredFile

// Value implements driver.Valuer
func (fs StoredFiles) Value() (driver.Value, error) {
	if fs == nil {
		return "[]", nil
	}
	b, err := json.Marshal(fs)
	return string(b), err
}

// Scan implements sql.Scanner
func (fs *StoredFiles) Scan(value interface{}) error {
	return scanJSON(value, fs)
}

// Paths returns the store path of every file in the list
func (fs StoredFiles) Paths() []string {
	paths := make([]string, 0, len(fs))
	for _, f := range fs {
		if f.Path != "" {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

func scanJSON(value interface{}, dst interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported type for jsonb column")
	}
}
