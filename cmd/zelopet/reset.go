package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/zeloapp/zelopet/internal/prefs"
	"github.com/zeloapp/zelopet/pkg/types"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and clear cached preferences",
	Long: `Reset empties every domain table in one transaction, then clears the
cached preference keys (active pet, weather caches). A failed preference
wipe leaves the tables wiped and is reported separately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openMigratedStore()
		if err != nil {
			return err
		}
		defer st.Close()

		err = st.Reset(prefs.New(st.DataDir()))
		if errors.Is(err, types.ErrPrefsClear) {
			printWarning("data wiped, but preference cleanup failed: %v", err)
			return nil
		}
		if err != nil {
			return err
		}
		printSuccess("all data wiped")
		return nil
	},
}
