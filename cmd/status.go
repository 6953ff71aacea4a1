package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cragcoach/internal/questionnaire"
	"github.com/abhisek/cragcoach/internal/ratings"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration, reminder flags and the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		target := "local"
		if cfg.Endpoint != "" {
			target = cfg.Endpoint
		}
		email := cfg.Email
		if email == "" {
			email = "(not set)"
		}

		fmt.Println("Cragcoach status")
		fmt.Println("════════════════")
		fmt.Printf("Email:     %s\n", email)
		fmt.Printf("Database:  %s\n", cfg.DBPath)
		fmt.Printf("Target:    %s\n", target)

		flags, err := st.FlagRepo().Get(ctx)
		if err != nil {
			return fmt.Errorf("read flags: %w", err)
		}
		fmt.Println()
		fmt.Println("Questionnaire")
		fmt.Printf("  Needed:       %s\n", yesNo(flags.NeedsQuestionnaire))
		fmt.Printf("  Prompt shown: %s\n", yesNo(flags.ShowQuestionnairePrompt))

		if cfg.Email != "" {
			p, err := st.ProfileRepo().Get(ctx, cfg.Email)
			if err != nil {
				return fmt.Errorf("get profile: %w", err)
			}
			fmt.Println()
			fmt.Println("Profile")
			if p == nil {
				fmt.Println("  none stored")
			} else {
				attrs := ratings.Defaults()
				questionnaire.ResolveRatings(p).Apply(attrs)
				fmt.Printf("  Name:       %s\n", p.Name)
				fmt.Printf("  Grade:      %s / %s\n", p.CurrentClimbingGrade, p.MaxBoulderGrade)
				fmt.Printf("  Strengths:  %s\n", ratings.Strengths(attrs))
				fmt.Printf("  Weaknesses: %s\n", ratings.Weaknesses(attrs))
				fmt.Printf("  Updated:    %s\n", p.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
		}

		subs, err := st.SubmissionRepo().Recent(ctx, 0)
		if err != nil {
			return fmt.Errorf("query submissions: %w", err)
		}
		failed := 0
		for _, s := range subs {
			if !s.Success {
				failed++
			}
		}
		fmt.Println()
		fmt.Println("Submissions")
		fmt.Printf("  Total:  %d (%d failed)\n", len(subs), failed)
		if len(subs) > 0 {
			last := subs[0]
			fmt.Printf("  Last:   %s to %s\n", last.CreatedAt.Local().Format("2006-01-02 15:04"), last.Target)
		}
		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
