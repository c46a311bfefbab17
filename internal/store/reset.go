// Reset wipes the domain tables and clears the cached preference keys. The
// two phases are separate: the table wipe is one transaction, the
// preference wipe is best-effort afterwards and reports its own error so a
// caller can retry it independently.
package store

import (
	"fmt"

	"github.com/zeloapp/zelopet/internal/prefs"
	"github.com/zeloapp/zelopet/pkg/types"
)

// Preference keys cleared on reset: the active-pet selection and the two
// weather caches.
const (
	PrefKeyActivePet       = "active-pet"
	PrefKeyWeatherCache    = "weather-cache-v1"
	PrefKeyWeatherLocation = "weather-location-v1"
)

var cachedPrefKeys = []string{
	PrefKeyActivePet,
	PrefKeyWeatherCache,
	PrefKeyWeatherLocation,
}

// WipeData deletes every row from every domain table, children before
// parents, inside one transaction. Either all tables are emptied or none.
func (s *Store) WipeData() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning wipe transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range types.TablesChildFirst {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("wiping %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing wipe: %w", err)
	}
	return nil
}

// ClearCachedPrefs removes the cached preference keys. Failures wrap
// ErrPrefsClear so callers can tell this phase apart from the table wipe.
func ClearCachedPrefs(p *prefs.Store) error {
	if err := p.MultiRemove(cachedPrefKeys...); err != nil {
		return fmt.Errorf("%w: %s", types.ErrPrefsClear, err)
	}
	return nil
}

// Reset runs both phases in order: table wipe, then preference wipe. A
// failed preference wipe leaves the tables wiped; the returned error tells
// the caller which phase to retry.
func (s *Store) Reset(p *prefs.Store) error {
	if err := s.WipeData(); err != nil {
		return err
	}
	return ClearCachedPrefs(p)
}
