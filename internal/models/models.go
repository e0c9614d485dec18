package models

import (
	"time"
)

// Setting is a locally persisted operator setting (API token, backend
// URL override). Everything else the dashboard shows is server-owned
// and held in memory only.
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys.
const (
	SettingAPIToken   = "API_TOKEN"
	SettingBackendURL = "BACKEND_URL"
)
