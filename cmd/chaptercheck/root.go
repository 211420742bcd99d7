package cmd

import (
	"fmt"
	"os"

	"github.com/kerbaras/chaptercheck/pkg/app"
	"github.com/kerbaras/chaptercheck/pkg/config"
	"github.com/kerbaras/chaptercheck/pkg/data"
	"github.com/kerbaras/chaptercheck/pkg/services"
	"github.com/kerbaras/chaptercheck/pkg/sources"
	"github.com/spf13/cobra"
)

var (
	flagUser     string
	flagPassword string
	flagCreate   bool
)

var rootCmd = &cobra.Command{
	Use:   "chaptercheck",
	Short: "Stay up to date on new manga chapter releases",
	Long:  "Track your favourite mangas and check for newly released chapters, with a TUI and CLI",
	Run: func(cmd *cobra.Command, args []string) {
		tracker, cleanup := buildTracker()
		defer cleanup()

		a := app.NewApp(tracker)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "username")
	rootCmd.PersistentFlags().StringVarP(&flagPassword, "password", "p", "", "password")
	rootCmd.PersistentFlags().BoolVar(&flagCreate, "create", false, "sign up if the user does not exist yet")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildTracker wires config, store, source and logger into a Tracker. The
// returned cleanup releases the store lock.
func buildTracker() (*services.Tracker, func()) {
	cfg, err := config.Load()
	cobra.CheckErr(err)

	logger, err := config.SetupLogger(cfg.Logging)
	if err != nil {
		logger = config.NullLogger()
	}

	store, err := data.OpenStore(cfg.DataDir)
	cobra.CheckErr(err)

	source := sources.NewMangaUpdatesWithConfig(sources.MangaUpdatesConfig{
		SeriesURL:      cfg.Source.SeriesURL,
		SearchURL:      cfg.Source.SearchURL,
		SearchKey:      cfg.Source.SearchKey,
		SearchEngineID: cfg.Source.SearchEngineID,
		Timeout:        cfg.Source.Timeout(),
	})

	tracker := services.NewTracker(store, source, logger)
	return tracker, func() { store.Close() }
}

// requireSession logs in with the --user/--password flags. With --create an
// unknown username is signed up on the spot.
func requireSession(tracker *services.Tracker) services.Session {
	if flagUser == "" || flagPassword == "" {
		cobra.CheckErr(fmt.Errorf("this command needs --user and --password"))
	}

	result, err := tracker.Login(flagUser, flagPassword)
	cobra.CheckErr(err)

	switch result {
	case services.LoginCorrect:
		return services.Session{Username: flagUser}
	case services.LoginIncorrect:
		cobra.CheckErr(fmt.Errorf("incorrect password for %q", flagUser))
	case services.LoginNewUser:
		if !flagCreate {
			cobra.CheckErr(fmt.Errorf("no user %q; pass --create to sign up", flagUser))
		}
		sess, err := tracker.Signup(flagUser, flagPassword)
		cobra.CheckErr(err)
		fmt.Printf("✅ Created user %q\n", flagUser)
		return *sess
	}
	return services.Session{}
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
