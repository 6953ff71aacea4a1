package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cragcoach/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the answer submission log",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		failedOnly, _ := cmd.Flags().GetBool("failed")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		// Filtering happens after the query, so fetch everything when
		// only failures are wanted.
		queryLimit := limit
		if failedOnly {
			queryLimit = 0
		}
		subs, err := st.SubmissionRepo().Recent(cmd.Context(), queryLimit)
		if err != nil {
			return fmt.Errorf("query submissions: %w", err)
		}

		var filtered []store.Submission
		for _, s := range subs {
			if failedOnly && s.Success {
				continue
			}
			filtered = append(filtered, s)
			if limit > 0 && len(filtered) >= limit {
				break
			}
		}

		if len(filtered) == 0 {
			fmt.Println("No submissions found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-28s  %-7s  %s\n", "ID", "Time", "Email", "Status", "Target")
		fmt.Println(strings.Repeat("─", 90))
		for _, s := range filtered {
			status := "ok"
			if !s.Success {
				status = "FAILED"
			}
			fmt.Printf("%-5d  %-19s  %-28s  %-7s  %s\n",
				s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				clip(s.Email, 28), status, s.Target)
		}
		fmt.Printf("\n%d submissions\n", len(filtered))
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id|uuid>",
	Short: "Show one submission with its full payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		subs, err := st.SubmissionRepo().Recent(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("query submissions: %w", err)
		}

		sub := findSubmission(subs, args[0])
		if sub == nil {
			return fmt.Errorf("submission %s not found", args[0])
		}

		fmt.Printf("ID:       %d\n", sub.ID)
		fmt.Printf("UUID:     %s\n", sub.UUID)
		fmt.Printf("Time:     %s\n", sub.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Email:    %s\n", sub.Email)
		fmt.Printf("Target:   %s\n", sub.Target)
		fmt.Printf("Success:  %v\n", sub.Success)
		if sub.Error != "" {
			fmt.Printf("Error:    %s\n", sub.Error)
		}

		fmt.Println()
		fmt.Println("── Payload ──")
		keys := make([]string, 0, len(sub.Payload))
		for k := range sub.Payload {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-26s %s\n", k, sub.Payload[k])
		}
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "Maximum number of submissions to show")
	historyListCmd.Flags().Bool("failed", false, "Only show failed submissions")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}

// findSubmission matches ref against the row ID or the UUID.
func findSubmission(subs []store.Submission, ref string) *store.Submission {
	id, idErr := strconv.Atoi(ref)
	for i := range subs {
		if idErr == nil && subs[i].ID == id {
			return &subs[i]
		}
		if subs[i].UUID == ref {
			return &subs[i]
		}
	}
	return nil
}
