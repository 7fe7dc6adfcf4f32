package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"medcatalog/internal/console"
)

type remoteFlags struct {
	server   string
	password string
}

func (f *remoteFlags) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.server, "server", "http://localhost:3000", "base URL of a running server")
	cmd.PersistentFlags().StringVar(&f.password, "password", os.Getenv("ADMIN_PASSWORD"), "admin password (defaults to $ADMIN_PASSWORD)")
}

func (f *remoteFlags) state() *console.State {
	return console.NewState(console.NewClient(f.server, f.password))
}

func newListingsCmd() *cobra.Command {
	var rf remoteFlags
	cmd := &cobra.Command{Use: "listings", Short: "Manage facility listings on a running server"}
	rf.bind(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List listings, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := rf.state()
			if err := st.RefreshListings(); err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tLOCATION\tPRICE\tUPDATED")
			for _, l := range st.Listings() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", l.ID, l.Title, l.Category, l.Location, l.Price, l.UpdatedAt)
			}
			return w.Flush()
		},
	})

	var (
		title, location, category, price, description string
		highlights                                    []string
	)
	payload := func() map[string]any {
		return map[string]any{
			"title": title, "location": location, "category": category,
			"price": price, "description": description, "highlights": highlights,
		}
	}
	fieldFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&title, "title", "", "facility name")
		c.Flags().StringVar(&location, "location", "", "location")
		c.Flags().StringVar(&category, "category", "", "category (general, dental, rehab, ...)")
		c.Flags().StringVar(&price, "price", "", "price text")
		c.Flags().StringVar(&description, "description", "", "description")
		c.Flags().StringSliceVar(&highlights, "highlight", nil, "highlight (repeatable)")
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := rf.state().CreateListing(payload())
			if err != nil {
				return err
			}
			return printJSON(cmd, l)
		},
	}
	fieldFlags(add)
	cmd.AddCommand(add)

	set := &cobra.Command{
		Use:   "set <id>",
		Short: "Replace the writable fields of a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := rf.state().UpdateListing(args[0], payload())
			if err != nil {
				return err
			}
			return printJSON(cmd, l)
		},
	}
	fieldFlags(set)
	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rf.state().DeleteListing(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func newConsultationsCmd() *cobra.Command {
	var rf remoteFlags
	cmd := &cobra.Command{Use: "consultations", Short: "Work the consultation queue on a running server"}
	rf.bind(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List consultations with queue stats",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := rf.state()
			if err := st.RefreshConsultations(); err != nil {
				return err
			}
			s := st.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total %d  pending %d  completed %d\n\n", s.Total, s.Pending, s.Completed)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tNAME\tEMAIL\tPHONE\tCREATED")
			for _, c := range st.Consultations() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Status, c.Name, c.Email, c.Phone, c.CreatedAt)
			}
			return w.Flush()
		},
	})

	var notes string
	status := &cobra.Command{
		Use:   "status <id> <pending|contacted|completed|cancelled>",
		Short: "Move a consultation through the workflow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := map[string]any{"status": strings.ToLower(args[1])}
			if cmd.Flags().Changed("notes") {
				patch["notes"] = notes
			}
			c, err := rf.state().UpdateConsultation(args[0], patch)
			if err != nil {
				return err
			}
			return printJSON(cmd, c)
		},
	}
	status.Flags().StringVar(&notes, "notes", "", "replace the internal notes")
	cmd.AddCommand(status)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a consultation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rf.state().DeleteConsultation(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
