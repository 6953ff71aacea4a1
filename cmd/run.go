package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cragcoach/internal/app"
	"github.com/abhisek/cragcoach/internal/questionnaire"
	"github.com/abhisek/cragcoach/internal/screens/home"
	"github.com/abhisek/cragcoach/internal/store"
	"github.com/abhisek/cragcoach/internal/submit"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// Logs go to the log file since the UI owns the terminal.
func runApp(cmd *cobra.Command) error {
	log, err := newLogger(cfg.LogFile)
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

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	flags := st.FlagRepo()

	log.Info("starting cragcoach", "email", cfg.Email, "target", submitter.Target(), "db", cfg.DBPath)

	return app.Run(app.Options{
		Home: home.Options{
			Questionnaire: questionnaire.Options{
				Email:     cfg.Email,
				Profiles:  store.NewProfileCache(st.ProfileRepo()),
				Submitter: submitter,
				Flags:     flags,
				Logger:    log,
			},
			Flags:       flags,
			Submissions: st.SubmissionRepo(),
		},
		Splash: !noSplash,
		Logger: log,
	})
}
