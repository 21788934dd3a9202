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

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage sales invoices",
		Long:    "List, inspect, and reverse posted sales invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesReverseCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		filters []string
		sorts   []string
		query   string
		limit   int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoicesListCommand(filters, sorts, query, limit, all)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field=value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort field, prefix with - for descending (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum records to fetch")
	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")

	return cmd
}

func runInvoicesListCommand(filters, sorts []string, query string, limit int, all bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	opts, err := ParseListFlags(filters, sorts, query, limit, all)
	if err != nil {
		return err
	}

	handles, err := client.Invoices().List(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("failed to list invoices: %w", err)
	}

	invoices := make([]*spire.Invoice, 0, len(handles))
	for _, handle := range handles {
		invoices = append(invoices, handle.Record())
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(invoices)
	case OutputFormatYAML:
		return StandardYAMLRenderer(invoices)
	default:
		return renderInvoiceTable(invoices)
	}
}

func renderInvoiceTable(invoices []*spire.Invoice) error {
	if len(invoices) == 0 {
		_, _ = os.Stdout.WriteString("No invoices found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Invoice No", "Order No", "Customer", "Date", "Total")

	for _, invoice := range invoices {
		customer := NotAvailable
		if invoice.Customer != nil {
			customer = stringValue(invoice.Customer.Name)
		}

		_ = table.Append(
			intValue(invoice.ID),
			stringValue(invoice.InvoiceNo),
			stringValue(invoice.OrderNo),
			customer,
			stringValue(invoice.InvoiceDate),
			stringValue(invoice.Total),
		)
	}

	_ = table.Render()

	return nil
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get an invoice",
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

			handle, err := client.Invoices().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			if viper.GetString("output") == OutputFormatYAML {
				return StandardYAMLRenderer(handle.Record())
			}

			return StandardJSONRenderer(handle.Record())
		},
	}
}

func newInvoicesReverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse ID",
		Short: "Reverse an invoice into a new sales order",
		Long:  "Create a sales order with negated quantities and freight that reverses the invoice",
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

			handle, err := client.Invoices().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			order, err := handle.Reverse(ctx)
			if err != nil {
				return fmt.Errorf("failed to reverse invoice: %w", err)
			}

			fmt.Printf("Created reversing sales order %s (id %s)\n",
				stringValue(order.Record().OrderNo), intValue(order.Record().ID))

			return nil
		},
	}
}
