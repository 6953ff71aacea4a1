package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the questionnaire reminder so it shows again",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.FlagRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset flags: %w", err)
		}
		fmt.Println("Questionnaire reminder reset. Stored profiles were kept.")
		return nil
	},
}
