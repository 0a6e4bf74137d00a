package models

import (
	"encoding/json"
	"time"
)

// FileRef points at a stored upload (birth certificate, KCSE slip, medical letter...).
// The URL is what the file storage returned when the upload was saved.
type FileRef struct {
	URL        string    `json:"url"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	MimeType   string    `json:"mimeType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// DocumentSet maps a document category (e.g. "birthCert", "kcseSlip") to its stored file.
// Stored as JSONB on students and holiday reports.
type DocumentSet map[string]FileRef

// MarshalDB serializes the set for a JSONB column. An empty set is stored as NULL.
func (d DocumentSet) MarshalDB() ([]byte, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return json.Marshal(d)
}

// UnmarshalDB restores the set from a JSONB column value.
func (d *DocumentSet) UnmarshalDB(raw []byte) error {
	if len(raw) == 0 {
		*d = nil
		return nil
	}
	return json.Unmarshal(raw, d)
}
