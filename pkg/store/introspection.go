package store

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Root              string `json:"root"`
	SecureExtension   string `json:"secure_extension"`
	AssetSuffix       string `json:"asset_suffix"`
	AutoGuessEncoding bool   `json:"auto_guess_encoding"`
	ReadOnly          bool   `json:"read_only"`
	HasKeychain       bool   `json:"has_keychain"`
	WatcherActive     bool   `json:"watcher_active"`
	PendingSelfSaves  int    `json:"pending_self_saves"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Root:              s.config.Root,
		SecureExtension:   SecureExtension,
		AssetSuffix:       s.config.AssetSuffix,
		AutoGuessEncoding: s.config.AutoGuessEncoding,
		ReadOnly:          s.config.ReadOnly,
		HasKeychain:       s.keychain != nil,
		WatcherActive:     s.watcherActive,
		PendingSelfSaves:  len(s.recentSaves),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
