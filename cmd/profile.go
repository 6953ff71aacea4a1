package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cragcoach/internal/profile"
	"github.com/abhisek/cragcoach/internal/questionnaire"
	"github.com/abhisek/cragcoach/internal/ratings"
	"github.com/abhisek/cragcoach/internal/store"
	"github.com/abhisek/cragcoach/internal/submit"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and move stored profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles, most recently updated first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		profiles, err := st.ProfileRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles stored.")
			return nil
		}

		fmt.Printf("%-4s  %-30s  %-20s  %-8s  %-8s  %s\n",
			"ID", "Email", "Name", "Grade", "Boulder", "Updated")
		fmt.Println(strings.Repeat("─", 95))
		for _, p := range profiles {
			fmt.Printf("%-4d  %-30s  %-20s  %-8s  %-8s  %s\n",
				p.ID, clip(p.EmailValue(), 30), clip(p.Name, 20),
				clip(p.CurrentClimbingGrade, 8), clip(p.MaxBoulderGrade, 8),
				p.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Printf("\n%d profiles\n", len(profiles))
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [email]",
	Short: "Show the stored answers for a climber",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(cmd.Context(), args)
		if err != nil {
			return err
		}

		fmt.Printf("Name:      %s\n", p.Name)
		fmt.Printf("Email:     %s\n", p.EmailValue())
		fmt.Printf("Grade:     %s (boulder %s)\n", p.CurrentClimbingGrade, p.MaxBoulderGrade)
		fmt.Printf("Goal:      %s\n", p.Goal)
		fmt.Printf("Updated:   %s\n", p.UpdatedAt.Local().Format("2006-01-02 15:04:05"))

		attrs := ratings.Defaults()
		res := questionnaire.ResolveRatings(p)
		res.Apply(attrs)

		fmt.Println()
		fmt.Printf("Ratings (%s):\n", res.Source)
		for _, a := range attrs {
			fmt.Printf("  %-18s %s%s  %d\n", a.Name,
				strings.Repeat("●", a.Rating), strings.Repeat("○", ratings.MaxRating-a.Rating), a.Rating)
		}
		for _, s := range res.Skipped {
			fmt.Printf("  skipped malformed entry %q\n", s)
		}
		return nil
	},
}

var profileExportCmd = &cobra.Command{
	Use:   "export [email]",
	Short: "Print the stored answers as a JSON answer payload",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(cmd.Context(), args)
		if err != nil {
			return err
		}

		// Round-trip through a session so the export is normalized the
		// same way a questionnaire submission is.
		s := questionnaire.NewSession()
		questionnaire.Hydrate(s, p)
		payload := questionnaire.Serialize(s, p.EmailValue())

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	},
}

var profileImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Submit a JSON answer payload as if it came from the questionnaire",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readPayload(cmd, args[0])
		if err != nil {
			return err
		}
		if err := submit.Validate(payload); err != nil {
			return err
		}

		log, err := newLogger("stderr")
		if err != nil {
			return err
		}
		defer log.Sync()

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		submitter, err := submit.New(submit.Options{
			Endpoint: cfg.Endpoint,
			APIToken: cfg.APIToken,
			Timeout:  cfg.Timeout,
			Retry:    cfg.Retry,
			Store:    st,
			Logger:   log,
		})
		if err != nil {
			return fmt.Errorf("build submitter: %w", err)
		}

		email := payload[profile.KeyEmail]
		if email == "" {
			email = cfg.Email
		}
		ctrl := questionnaire.NewController(questionnaire.Options{
			Email:     email,
			Profiles:  store.NewProfileCache(st.ProfileRepo()),
			Submitter: submitter,
			Flags:     st.FlagRepo(),
			Logger:    log,
		})
		ctrl.ApplyLoaded(profile.FromPayload(payload))

		if err := ctrl.Submit(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Answers for %s submitted to %s.\n", email, submitter.Target())
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileExportCmd)
	profileCmd.AddCommand(profileImportCmd)
}

// loadProfile fetches the profile for args[0] or the configured email.
func loadProfile(ctx context.Context, args []string) (*profile.Profile, error) {
	email, err := resolveEmail(args)
	if err != nil {
		return nil, err
	}

	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	p, err := st.ProfileRepo().Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("no profile stored for %s", email)
	}
	return p, nil
}

// readPayload decodes an answer payload from path, or stdin for "-".
func readPayload(cmd *cobra.Command, path string) (profile.AnswerPayload, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open payload: %w", err)
		}
		defer f.Close()
		r = f
	}

	var payload profile.AnswerPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return payload, nil
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
