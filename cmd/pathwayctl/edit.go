package main

import (
	"github.com/spf13/cobra"

	"github.com/nathan-pham/gradcap-mvp/internal/interfaces/tui"
	"github.com/nathan-pham/gradcap-mvp/internal/service/admin"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the terminal editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Log lines would tear the alternate screen.
		if logLevel == "" {
			logLevel = "error"
		}
		container, cleanup, err := openContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		session := admin.NewSession("terminal", container.Accessor, container.Logger, nil)
		return tui.Run(cmd.Context(), session)
	},
}
