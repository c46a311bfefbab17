package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	petsCmd.Flags().BoolVar(&flagJSON, "json", false, "output as JSON")
}

var petsCmd = &cobra.Command{
	Use:   "pets",
	Short: "List registered pets",
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

		if flagJSON {
			out, err := json.MarshalIndent(pets, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling pets: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(pets) == 0 {
			printWarning("no pets registered")
			return nil
		}
		for _, pet := range pets {
			breed := ""
			if pet.Breed != nil {
				breed = " (" + *pet.Breed + ")"
			}
			fmt.Printf("%s  %s%s [%s]\n", pet.ID, pet.Name, breed, pet.Species)
		}
		return nil
	},
}
