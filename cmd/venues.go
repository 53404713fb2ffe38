package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kass/matchmap/pkg/bounds"
	"github.com/kass/matchmap/pkg/geo"
	"github.com/kass/matchmap/pkg/models"
	"github.com/kass/matchmap/pkg/venuegroup"
	"github.com/spf13/cobra"
)

type groupOutput struct {
	Groups    venuegroup.Groups `json:"groups"`
	Ungrouped int               `json:"ungrouped"`
}

func (a *app) newGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "group [file]",
		Short: "Group matches into one marker per stadium",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := loadMatches(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			groups := venuegroup.GroupMatches(matches)
			ungrouped := len(matches) - groups.Len()
			a.logger.WithField("groups", len(groups)).WithField("ungrouped", ungrouped).Debug("grouped matches")
			return writeJSON(cmd.OutOrStdout(), groupOutput{Groups: groups, Ungrouped: ungrouped})
		},
	}
}

type boundsOutput struct {
	Region         models.MapRegion      `json:"region"`
	Classification bounds.Classification `json:"classification"`
	Points         int                   `json:"points"`
}

func (a *app) newBoundsCmd() *cobra.Command {
	var (
		points  []string
		minSpan float64
		maxSpan float64
	)

	cmd := &cobra.Command{
		Use:   "bounds [file]",
		Short: "Frame the venues of the given matches, plus any --point, as a map region",
		Long: `Frame the venues of the given matches, plus any --point, as a map region.

Matches are read from the file argument or stdin unless only --point values
are given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.Bounds
			if cmd.Flags().Changed("min-span") {
				opts.MinSpan = minSpan
			}
			if cmd.Flags().Changed("max-span") {
				opts.MaxSpan = maxSpan
			}

			var pts []models.GeoPoint
			for _, s := range points {
				p, err := parsePoint(s)
				if err != nil {
					return err
				}
				pts = append(pts, p)
			}

			if len(args) > 0 || len(points) == 0 {
				matches, err := loadMatches(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				for i := range matches {
					if p, ok := geo.VenuePoint(matches[i].Fixture.Venue); ok {
						pts = append(pts, p)
					}
				}
			}

			c, err := a.calculator()
			if err != nil {
				return err
			}
			region, cls := c.Frame(pts, opts)
			return writeJSON(cmd.OutOrStdout(), boundsOutput{Region: region, Classification: cls, Points: len(pts)})
		},
	}

	cmd.Flags().StringArrayVar(&points, "point", nil, "extra point as lon,lat (repeatable)")
	cmd.Flags().Float64Var(&minSpan, "min-span", bounds.DefaultMinSpan, "minimum span in degrees")
	cmd.Flags().Float64Var(&maxSpan, "max-span", bounds.DefaultMaxSpan, "maximum span in degrees")
	return cmd
}

// parsePoint parses "lon,lat"
func parsePoint(s string) (models.GeoPoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return models.GeoPoint{}, fmt.Errorf("point %q: want lon,lat", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("point %q: %w", s, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("point %q: %w", s, err)
	}
	p := models.GeoPoint{Lon: lon, Lat: lat}
	if !geo.ValidPoint(p) {
		return models.GeoPoint{}, fmt.Errorf("point %q is out of range", s)
	}
	return p, nil
}
