package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/kj-nakamura/baby-wear-translator/client"
	"github.com/kj-nakamura/baby-wear-translator/internal/catalog"
	"github.com/kj-nakamura/baby-wear-translator/internal/model"
	"github.com/kj-nakamura/baby-wear-translator/internal/render"
	"github.com/kj-nakamura/baby-wear-translator/internal/timeline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

const defaultAPIURL = "http://localhost:3000/api"

// now is replaced in tests.
var now = time.Now

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	apiURL  string
	lang    string
	output  string
	debug   bool
	timeout time.Duration
	catalog *catalog.Catalog
}

func (o *rootOptions) locale() language.Tag {
	pref := o.lang
	if pref == "" {
		pref = localeFromEnv()
	}
	return o.catalog.ResolveLocale(pref)
}

func (o *rootOptions) client() *client.Client {
	copts := []client.Option{client.WithDebugLogging(o.debug)}
	if o.timeout > 0 {
		copts = append(copts, client.WithHTTPTimeout(o.timeout))
	}
	return client.New(o.apiURL, copts...)
}

// localeFromEnv maps a POSIX locale such as ja_JP.UTF-8 to a BCP 47 tag.
func localeFromEnv() string {
	for _, key := range []string{"LC_ALL", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{catalog: catalog.MustLoadEmbedded()}

	rootCmd := &cobra.Command{
		Use:           "babywearctl",
		Short:         "Baby-wear milestones and shop name translation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if opts.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			switch opts.output {
			case "text", "json":
				return nil
			default:
				return fmt.Errorf("unsupported --output %q (text, json)", opts.output)
			}
		},
	}

	defaultURL := getEnv("BABYWEAR_API_URL", defaultAPIURL)
	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", defaultURL, "Base URL of the gateway API (or the backend)")
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", "", "Display language (ja, en); defaults to $LANG")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout (0 keeps the client default)")

	// Sub-commands
	rootCmd.AddCommand(newMilestonesCmd(opts))
	rootCmd.AddCommand(newRecommendCmd(opts))
	rootCmd.AddCommand(newTimelineCmd(opts))
	rootCmd.AddCommand(newShopsCmd(opts))

	return rootCmd
}

func newMilestonesCmd(opts *rootOptions) *cobra.Command {
	var birthDate, shop string
	var selectIdx int
	var current bool

	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Fetch the size and clothing timeline for an infant",
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := parseBirthDate(birthDate)
			if err != nil {
				return err
			}
			ts := time.Now()
			today := now()

			view := timeline.NewView(today)
			resp, err := opts.client().FetchMilestones(cmd.Context(), birth, model.ShopID(shop))
			if err != nil {
				return fetchFailed("milestones", err)
			}
			view.Replace(*resp)
			log.Debug().Int("slots", len(resp.Milestones)).Dur("elapsed", time.Since(ts)).Msg("milestones fetched")

			switch {
			case cmd.Flags().Changed("select"):
				if err := view.Select(selectIdx, today); err != nil {
					return err
				}
			case current:
				selectAge(view, timeline.AgeInMonths(time.Time(birth), today), today)
			}

			r := render.New(opts.catalog, opts.locale(), model.ShopID(shop))
			slots := r.Slots(view.Visible(today), view.Selected())
			if opts.output == "json" {
				return render.WriteJSON(cmd.OutOrStdout(), slots)
			}
			return r.WriteTimeline(cmd.OutOrStdout(), slots)
		},
	}

	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&shop, "shop", "", "Target shop id (nishimatsuya, uniqlo, akachan_honpo)")
	cmd.Flags().IntVar(&selectIdx, "select", 0, "Index of the upcoming milestone to show")
	cmd.Flags().BoolVar(&current, "current", false, "Select the milestone matching the infant's current age")
	_ = cmd.MarkFlagRequired("birth-date")
	return cmd
}

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var birthDate, shop string
	var temp float64

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Fetch a single recommendation for today's temperature",
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := parseBirthDate(birthDate)
			if err != nil {
				return err
			}
			resp, err := opts.client().FetchRecommendation(cmd.Context(), birth, temp, model.ShopID(shop))
			if err != nil {
				return fetchFailed("recommendation", err)
			}

			r := render.New(opts.catalog, opts.locale(), model.ShopID(shop))
			rec := r.Recommendation(*resp)
			if opts.output == "json" {
				return render.WriteJSON(cmd.OutOrStdout(), rec)
			}
			return r.WriteRecommendation(cmd.OutOrStdout(), rec)
		},
	}

	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&temp, "temp", 0, "Current temperature in °C")
	cmd.Flags().StringVar(&shop, "shop", "", "Target shop id")
	_ = cmd.MarkFlagRequired("birth-date")
	_ = cmd.MarkFlagRequired("temp")
	return cmd
}

func newTimelineCmd(opts *rootOptions) *cobra.Command {
	var selectIdx int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the placeholder timeline for the coming year without contacting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := now()
			view := timeline.NewView(today)
			if err := view.Select(selectIdx, today); err != nil {
				return err
			}

			r := render.New(opts.catalog, opts.locale(), "")
			slots := r.Slots(view.Visible(today), view.Selected())
			if opts.output == "json" {
				return render.WriteJSON(cmd.OutOrStdout(), slots)
			}
			return r.WriteTimeline(cmd.OutOrStdout(), slots)
		},
	}
	cmd.Flags().IntVar(&selectIdx, "select", 0, "Index of the milestone to highlight")
	return cmd
}

func newShopsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shops",
		Short: "List supported shops and their display names",
		RunE: func(cmd *cobra.Command, args []string) error {
			shops := opts.catalog.Shops(opts.locale())
			if opts.output == "json" {
				return render.WriteJSON(cmd.OutOrStdout(), shops)
			}
			for _, s := range shops {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", s.ID, s.DisplayName); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// selectAge highlights the visible slot for age, if present.
func selectAge(view *timeline.View, age int, today time.Time) {
	for i, s := range view.Visible(today) {
		if s.AgeInMonths == age {
			_ = view.Select(i, today)
			return
		}
	}
}

func parseBirthDate(s string) (strfmt.Date, error) {
	var d strfmt.Date
	if strings.TrimSpace(s) == "" {
		return d, fmt.Errorf("--birth-date is required")
	}
	if err := d.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return d, fmt.Errorf("invalid --birth-date %q (want YYYY-MM-DD): %w", s, err)
	}
	return d, nil
}

// fetchFailed turns a client error into the message shown to the user.
func fetchFailed(what string, err error) error {
	msg := err.Error()
	var ce *client.ClassifiedError
	if errors.As(err, &ce) && ce.Message != "" {
		msg = ce.Message
	}
	return fmt.Errorf("failed to load %s: %s; please try again", what, msg)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
