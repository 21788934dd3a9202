package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spirekit/spire-client/pkg/spire"
)

// NewNotesCommand creates the CRM notes command group.
func NewNotesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note"},
		Short:   "Manage CRM notes",
		Long:    "List, inspect, create, and delete CRM notes",
	}

	cmd.AddCommand(newNotesListCommand())
	cmd.AddCommand(newNotesGetCommand())
	cmd.AddCommand(newNotesCreateCommand())
	cmd.AddCommand(newNotesDeleteCommand())

	return cmd
}

func newNotesListCommand() *cobra.Command {
	var (
		filters []string
		sorts   []string
		query   string
		limit   int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotesListCommand(filters, sorts, query, limit, all)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field=value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort field, prefix with - for descending (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum records to fetch")
	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")

	return cmd
}

func runNotesListCommand(filters, sorts []string, query string, limit int, all bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	opts, err := ParseListFlags(filters, sorts, query, limit, all)
	if err != nil {
		return err
	}

	handles, err := client.Notes().List(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]*spire.Note, 0, len(handles))
	for _, handle := range handles {
		notes = append(notes, handle.Record())
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(notes)
	case OutputFormatYAML:
		return StandardYAMLRenderer(notes)
	default:
		return renderNoteTable(notes)
	}
}

func renderNoteTable(notes []*spire.Note) error {
	if len(notes) == 0 {
		_, _ = os.Stdout.WriteString("No notes found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Link Table", "Link No", "Subject", "Due Date", "Created By")

	for _, note := range notes {
		_ = table.Append(
			intValue(note.ID),
			stringValue(note.LinkTable),
			stringValue(note.LinkNo),
			stringValue(note.Subject),
			stringValue(note.DueDate),
			stringValue(note.CreatedBy),
		)
	}

	_ = table.Render()

	return nil
}

func newNotesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			handle, err := client.Notes().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get note: %w", err)
			}

			if viper.GetString("output") == OutputFormatYAML {
				return StandardYAMLRenderer(handle.Record())
			}

			return StandardJSONRenderer(handle.Record())
		},
	}
}

func newNotesCreateCommand() *cobra.Command {
	var (
		linkTable string
		linkNo    string
		subject   string
		body      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			note := &spire.Note{
				LinkTable: spire.String(linkTable),
				LinkNo:    spire.String(linkNo),
				Subject:   spire.String(subject),
				Body:      spire.String(body),
			}

			handle, err := client.Notes().Create(context.Background(), note)
			if err != nil {
				return fmt.Errorf("failed to create note: %w", err)
			}

			fmt.Printf("Created note %s\n", intValue(handle.Record().ID))

			return nil
		},
	}

	cmd.Flags().StringVar(&linkTable, "link-table", "", "table the note attaches to")
	cmd.Flags().StringVar(&linkNo, "link-no", "", "record number the note attaches to")
	cmd.Flags().StringVar(&subject, "subject", "", "note subject")
	cmd.Flags().StringVar(&body, "body", "", "note body")
	_ = cmd.MarkFlagRequired("link-table")
	_ = cmd.MarkFlagRequired("link-no")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newNotesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			handle, err := client.Notes().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get note: %w", err)
			}

			deleted, err := handle.Delete(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete note: %w", err)
			}

			if !deleted {
				fmt.Printf("Note %d was not deleted\n", id)

				return nil
			}

			fmt.Printf("Note %d deleted\n", id)

			return nil
		},
	}
}
