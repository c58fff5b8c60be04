package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thechessguy13/resume-tailor-agent/internal/config"
	"github.com/thechessguy13/resume-tailor-agent/internal/session"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect and clean up stored browser sessions",
	Long: `Each scrape of a gated posting reuses a browser profile directory keyed to
the current day, so a morning login stays valid all day. These subcommands
show what is stored and delete everything except today's directory.`,
}

var sessionsDir string

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored session directories",
	RunE:  runSessionsList,
}

var sessionsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all session directories except today's",
	RunE:  runSessionsPurge,
}

func init() {
	sessionsCmd.PersistentFlags().StringVar(&sessionsDir, "dir", "", "Session base directory (defaults to SESSION_DIR)")
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsPurgeCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func sessionStore() *session.Store {
	dir := sessionsDir
	if dir == "" {
		dir = config.FromEnv().SessionDir
	}
	return session.New(dir)
}

func runSessionsList(_ *cobra.Command, _ []string) error {
	identities, err := sessionStore().List()
	if err != nil {
		return err
	}
	if len(identities) == 0 {
		fmt.Fprintf(os.Stdout, "No stored sessions\n")
		return nil
	}
	for _, identity := range identities {
		fmt.Fprintf(os.Stdout, "%s  %s\n", identity.CreatedDate.Format("2006-01-02"), identity.Path)
	}
	return nil
}

func runSessionsPurge(_ *cobra.Command, _ []string) error {
	removed := sessionStore().PurgeStale()
	fmt.Fprintf(os.Stdout, "Removed %d stale session directories\n", removed)
	return nil
}
