package main

import (
	"fmt"

	"github.com/kass/matchmap/pkg/postgis"
	"github.com/kass/matchmap/pkg/rtree"
	"github.com/spf13/cobra"
)

func (a *app) newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the venue coordinate catalog",
	}
	cmd.AddCommand(a.newCatalogExportCmd(), a.newCatalogSyncCmd(), a.newCatalogPushCmd())
	return cmd
}

func (a *app) newCatalogExportCmd() *cobra.Command {
	var (
		out  string
		name string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active venue catalog to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}
			if err := r.Catalog().SaveToFile(out, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d venues to %s\n", r.CatalogSize(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "venues.gob", "output file")
	cmd.Flags().StringVar(&name, "name", "matchmap", "catalog name")
	return cmd
}

func storeFlags(cmd *cobra.Command, dsn, table *string) {
	cmd.Flags().StringVar(dsn, "dsn", "", "PostgreSQL connection string, overrides catalog.dsn")
	cmd.Flags().StringVar(table, "table", "", "venue table, overrides catalog.table")
}

func (a *app) openStore(cmd *cobra.Command, dsn, table string) (*postgis.VenueStore, error) {
	if dsn == "" {
		dsn = a.cfg.Catalog.DSN
	}
	if table == "" {
		table = a.cfg.Catalog.Table
	}
	if dsn == "" {
		return nil, fmt.Errorf("no database configured, set --dsn or catalog.dsn")
	}
	return postgis.Open(cmd.Context(), dsn, postgis.WithTable(table), postgis.WithLogger(a.logger))
}

func (a *app) newCatalogSyncCmd() *cobra.Command {
	var (
		dsn, table string
		out        string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Load venues from PostGIS into a catalog file usable with --catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd, dsn, table)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, skipped, err := store.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			index, err := rtree.NewGeoIndexFromEntries(entries)
			if err != nil {
				return fmt.Errorf("index venues: %w", err)
			}
			if err := index.SaveToFile(out, name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Synced %d venues to %s (%d skipped)\n", index.Count(), out, skipped)
			return nil
		},
	}

	storeFlags(cmd, &dsn, &table)
	cmd.Flags().StringVarP(&out, "out", "o", "venues.gob", "output file")
	cmd.Flags().StringVar(&name, "name", "postgis", "catalog name")
	return cmd
}

func (a *app) newCatalogPushCmd() *cobra.Command {
	var dsn, table string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Write the active venue catalog to PostGIS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd, dsn, table)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.InitSchema(cmd.Context()); err != nil {
				return err
			}

			entries := r.Catalog().Entries()
			records := make([]postgis.VenueRecord, len(entries))
			for i, e := range entries {
				records[i] = postgis.VenueRecord{ID: e.ID, Name: e.ID, Timezone: e.Value, Location: *e.Location}
			}
			n, err := store.UpsertVenues(cmd.Context(), records)
			if err != nil {
				return err
			}

			total, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d venues (%d in table)\n", n, total)
			return nil
		},
	}

	storeFlags(cmd, &dsn, &table)
	return cmd
}
