package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long: `Migrate brings the database schema to the latest version, applying each
pending migration in its own transaction. With seed_demo enabled (config
or ZELOPET_SEED_DEMO), an empty database is seeded with demo data
afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(); err != nil {
			return err
		}

		if configSeedDemo {
			if err := st.Seed(); err != nil {
				return err
			}
		}

		version, err := st.CurrentVersion()
		if err != nil {
			return err
		}
		printSuccess("schema at version %d", version)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demonstration data into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openMigratedStore()
		if err != nil {
			return err
		}
		defer st.Close()

		pets, err := st.Pets().List()
		if err != nil {
			return err
		}
		if len(pets) > 0 {
			printWarning("database is not empty, nothing seeded")
			return nil
		}

		if err := st.Seed(); err != nil {
			return err
		}
		printSuccess("demo data seeded")
		return nil
	},
}
