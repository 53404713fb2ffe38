package main

import (
	"fmt"
	"time"

	"github.com/kass/matchmap/pkg/models"
	"github.com/kass/matchmap/pkg/timezone"
	"github.com/spf13/cobra"
)

type resolvedMatch struct {
	Match    string                  `json:"match"`
	Date     string                  `json:"date,omitempty"`
	Timezone models.ResolvedTimezone `json:"timezone"`
}

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [file]",
		Short: "Resolve the venue timezone of each match",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := loadMatches(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			r, err := a.resolver()
			if err != nil {
				return err
			}

			out := make([]resolvedMatch, len(matches))
			for i := range matches {
				out[i] = resolvedMatch{
					Match:    matchName(matches[i]),
					Date:     matches[i].Fixture.Date,
					Timezone: r.Resolve(&matches[i].Fixture),
				}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

type formattedMatch struct {
	Match   string            `json:"match"`
	Kickoff timezone.Display `json:"kickoff"`
}

func (a *app) newFormatCmd() *cobra.Command {
	var (
		timeFormat   string
		showDate     bool
		showYear     bool
		showTimezone bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Render each kick-off in the venue's local time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.Format
			flags := cmd.Flags()
			if flags.Changed("time-format") {
				opts.TimeFormat = timezone.TimeFormat(timeFormat)
			}
			if flags.Changed("show-date") {
				opts.ShowDate = showDate
			}
			if flags.Changed("show-year") {
				opts.ShowYear = showYear
			}
			if flags.Changed("show-timezone") {
				opts.ShowTimezone = showTimezone
			}
			if opts.TimeFormat != timezone.Format12Hour && opts.TimeFormat != timezone.Format24Hour {
				return fmt.Errorf("--time-format must be 12hour or 24hour, got %q", opts.TimeFormat)
			}

			matches, err := loadMatches(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			r, err := a.resolver()
			if err != nil {
				return err
			}

			out := make([]formattedMatch, len(matches))
			for i := range matches {
				f := &matches[i].Fixture
				out[i] = formattedMatch{
					Match:   matchName(matches[i]),
					Kickoff: r.FormatMatchTime(f.Date, f, opts),
				}
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			for _, fm := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", fm.Match, fm.Kickoff)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timeFormat, "time-format", "", "12hour or 24hour")
	cmd.Flags().BoolVar(&showDate, "show-date", true, "include the date")
	cmd.Flags().BoolVar(&showYear, "show-year", false, "include the year")
	cmd.Flags().BoolVar(&showTimezone, "show-timezone", true, "append the timezone label")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

type relativeMatch struct {
	Match    string `json:"match"`
	Relative string `json:"relative"`
}

func (a *app) newRelativeCmd() *cobra.Command {
	var (
		now    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "relative [file]",
		Short: "Describe each kick-off relative to now",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []timezone.Option
			if now != "" {
				t, err := time.Parse(time.RFC3339, now)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
				opts = append(opts, timezone.WithClock(func() time.Time { return t }))
			}

			matches, err := loadMatches(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			r, err := a.resolver(opts...)
			if err != nil {
				return err
			}

			out := make([]relativeMatch, len(matches))
			for i := range matches {
				f := &matches[i].Fixture
				out[i] = relativeMatch{Match: matchName(matches[i]), Relative: r.RelativeTime(f.Date, f)}
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			for _, rm := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", rm.Match, rm.Relative)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "reference time (RFC 3339), defaults to the current time")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (a *app) newLabelCmd() *cobra.Command {
	var (
		at   string
		city string
	)

	cmd := &cobra.Command{
		Use:   "label ZONE",
		Short: "Print the display label of a timezone, e.g. \"BST (London)\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when := time.Now()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				when = t
			}

			r, err := a.resolver()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Label(args[0], when, city))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "instant to label (RFC 3339), defaults to now")
	cmd.Flags().StringVar(&city, "city", "", "venue city shown in the label")
	return cmd
}
