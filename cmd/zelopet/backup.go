// Backup commands: export the database to a versioned JSON snapshot and
// import one back.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zeloapp/zelopet/internal/prefs"
	"github.com/zeloapp/zelopet/internal/store"
)

var flagKeepExisting bool

func init() {
	importCmd.Flags().BoolVar(&flagKeepExisting, "keep-existing", false,
		"merge into existing data instead of wiping first")
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all tables to a JSON backup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openMigratedStore()
		if err != nil {
			return err
		}
		defer st.Close()

		out, err := st.ExportJSON()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(string(out))
			return nil
		}

		if err := os.WriteFile(args[0], out, 0o644); err != nil {
			return fmt.Errorf("writing backup: %w", err)
		}
		printSuccess("exported to %s", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON backup, replacing existing data",
	Long: `Import replays a backup produced by export. By default a full reset runs
first, wiping existing data and clearing cached preferences;
--keep-existing merges instead. The import is atomic: any bad row rolls
the whole operation back.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading backup: %w", err)
		}

		st, err := openMigratedStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Import(payload, prefs.New(st.DataDir()), store.ImportOptions{KeepExisting: flagKeepExisting}); err != nil {
			return err
		}
		printSuccess("imported %s", args[0])
		return nil
	},
}
