package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the built-in pathway into an empty store",
	Long: `Insert the built-in pathway into an empty store.

Only the sqlite, postgres and memory drivers can be seeded. A store that
already holds rows is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	container, cleanup, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	seeder, ok := container.Base.Seeder()
	if !ok {
		return fmt.Errorf("the %s driver cannot be seeded", container.Base.Driver)
	}
	n, err := seeder.Seed(cmd.Context(), pathway.Catalog())
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("refusing to seed: %s store already has rows", container.Base.Driver)
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✔ Inserted %d nodes", n)))
	return nil
}
