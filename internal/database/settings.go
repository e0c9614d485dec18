package database

import (
	"sync"

	"whatsapp-dashboard/internal/config"
	"whatsapp-dashboard/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsStore persists operator settings locally and serves as the
// bearer-token source for the backend client. Reads go through a small
// in-memory cache so the poller doesn't hit the database every tick.
type SettingsStore struct {
	db    *gorm.DB
	log   *zap.SugaredLogger
	mu    sync.RWMutex
	cache map[string]string
}

func NewSettingsStore(db *gorm.DB, log *zap.SugaredLogger) *SettingsStore {
	return &SettingsStore{
		db:    db,
		log:   log,
		cache: make(map[string]string),
	}
}

// Seed reconciles env config with persisted settings: a value already
// in the database wins over the environment; env values are written
// down on first run so they survive restarts.
func (s *SettingsStore) Seed(cfg *config.Config) {
	seeds := []struct {
		key   string
		value *string
	}{
		{models.SettingAPIToken, &cfg.APIToken},
		{models.SettingBackendURL, &cfg.BackendBaseURL},
	}

	for _, seed := range seeds {
		var setting models.Setting
		err := s.db.Where("key = ?", seed.key).First(&setting).Error
		switch {
		case err == nil && setting.Value != "":
			*seed.value = setting.Value
			s.put(seed.key, setting.Value)
		case *seed.value != "":
			if err := s.Set(seed.key, *seed.value); err != nil {
				s.log.Warnw("failed to seed setting", "key", seed.key, "error", err)
			}
		}
	}
}

// Get returns the persisted value for key, or "" when absent.
func (s *SettingsStore) Get(key string) string {
	s.mu.RLock()
	value, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return value
	}

	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return ""
	}
	s.put(key, setting.Value)
	return setting.Value
}

// Set persists a value and refreshes the cache.
func (s *SettingsStore) Set(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	if err := s.db.Save(&setting).Error; err != nil {
		return err
	}
	s.put(key, value)
	return nil
}

// APIToken implements the backend client's token source.
func (s *SettingsStore) APIToken() string {
	return s.Get(models.SettingAPIToken)
}

func (s *SettingsStore) put(key, value string) {
	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()
}
