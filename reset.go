package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/acme-reservations/cliparse"
	"github.com/danielhkuo/acme-reservations/db"
	"github.com/danielhkuo/acme-reservations/store"
)

func newResetCmd(cfg *cliparse.Config) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate all tables (destroys every row)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			conn, err := db.Open(ctx, *cfg)
			if err != nil {
				return fmt.Errorf("database connection failed: %w", err)
			}
			defer conn.Close()

			if err := db.Reset(ctx, conn); err != nil {
				return err
			}
			if !seed {
				return nil
			}

			result, err := store.New(conn).Seed(ctx)
			if err != nil {
				return err
			}
			return printSeed(cmd.OutOrStdout(), result, cfg.Port)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Load demo customers, restaurants and reservations")
	return cmd
}

// printSeed shows the seeded rows and curl commands against them
func printSeed(w io.Writer, result store.SeedResult, port int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	for _, section := range []struct {
		title string
		rows  interface{}
	}{
		{"customers", result.Customers},
		{"restaurants", result.Restaurants},
		{"reservations", result.Reservations},
	} {
		fmt.Fprintf(w, "%s:\n", section.title)
		if err := enc.Encode(section.rows); err != nil {
			return err
		}
	}

	lauren, kim := result.Customers[0], result.Customers[2]
	joes := result.Restaurants[1]
	kimsReservation := result.Reservations[1]

	fmt.Fprintln(w, "some curl commands to test:")
	fmt.Fprintf(w, "curl -X DELETE localhost:%d/api/customer/%s/reservation/%s\n", port, kim.ID, kimsReservation.ID)
	fmt.Fprintf(w, "curl -X POST localhost:%d/api/customer/%s/reservation -d '{\"restaurant_id\": \"%s\", \"reservation_date\": \"2024-06-12\", \"party_count\": 3}' -H 'Content-Type: application/json'\n",
		port, lauren.ID, joes.ID)
	fmt.Fprintf(w, "curl localhost:%d/api/customer\n", port)
	fmt.Fprintf(w, "curl localhost:%d/api/restaurant\n", port)
	fmt.Fprintf(w, "curl localhost:%d/api/reservation\n", port)

	return nil
}
