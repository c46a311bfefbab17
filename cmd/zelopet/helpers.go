// Shared helpers for zelopet CLI commands.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/zeloapp/zelopet/internal/store"
	"github.com/zeloapp/zelopet/pkg/types"
)

// openStore resolves the data directory and opens the shared store. The
// caller must defer st.Close().
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	st, err := store.Open(types.Config{DataDir: dataDir, SeedDemo: configSeedDemo})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openMigratedStore opens the store and brings the schema to the latest
// version, the normal entry point for commands that touch table data.
func openMigratedStore() (*store.Store, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(); err != nil {
		st.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}

func printSuccess(format string, a ...any) {
	fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("✓"), fmt.Sprintf(format, a...))
}

func printWarning(format string, a ...any) {
	fmt.Printf("%s %s\n", color.New(color.FgYellow).Sprint("!"), fmt.Sprintf(format, a...))
}
