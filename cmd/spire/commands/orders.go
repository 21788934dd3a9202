package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spirekit/spire-client/pkg/spire"
)

// NewOrdersCommand creates the sales orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order", "so"},
		Short:   "Manage sales orders",
		Long:    "List, inspect, process, invoice, and delete sales orders",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersProcessCommand())
	cmd.AddCommand(newOrdersInvoiceCommand())
	cmd.AddCommand(newOrdersDeleteCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var (
		filters []string
		sorts   []string
		query   string
		limit   int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sales orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrdersListCommand(filters, sorts, query, limit, all)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field=value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort field, prefix with - for descending (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum records to fetch")
	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")

	return cmd
}

func runOrdersListCommand(filters, sorts []string, query string, limit int, all bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	opts, err := ParseListFlags(filters, sorts, query, limit, all)
	if err != nil {
		return err
	}

	handles, err := client.Orders().List(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("failed to list sales orders: %w", err)
	}

	orders := make([]*spire.SalesOrder, 0, len(handles))
	for _, handle := range handles {
		orders = append(orders, handle.Record())
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(orders)
	case OutputFormatYAML:
		return StandardYAMLRenderer(orders)
	default:
		return renderOrderTable(orders)
	}
}

func renderOrderTable(orders []*spire.SalesOrder) error {
	if len(orders) == 0 {
		_, _ = os.Stdout.WriteString("No sales orders found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Order No", "Customer", "Status", "Type", "Date", "Total")

	for _, order := range orders {
		customer := NotAvailable
		if order.Customer != nil {
			customer = stringValue(order.Customer.Name)
		}

		_ = table.Append(
			intValue(order.ID),
			stringValue(order.OrderNo),
			customer,
			stringValue(order.Status),
			stringValue(order.Type),
			stringValue(order.OrderDate),
			stringValue(order.Total),
		)
	}

	_ = table.Render()

	return nil
}

func parseRecordID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrRecordIDRequired
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("parsing record id %q: %w", args[0], err)
	}

	return id, nil
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a sales order",
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

			handle, err := client.Orders().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get sales order: %w", err)
			}

			if viper.GetString("output") == OutputFormatYAML {
				return StandardYAMLRenderer(handle.Record())
			}

			return StandardJSONRenderer(handle.Record())
		},
	}
}

func newOrdersProcessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "process ID",
		Short: "Process a sales order",
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

			handle, err := client.Orders().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get sales order: %w", err)
			}

			if _, err := handle.Process(ctx); err != nil {
				return fmt.Errorf("failed to process sales order: %w", err)
			}

			fmt.Printf("Sales order %d processed\n", id)

			return nil
		},
	}
}

func newOrdersInvoiceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "invoice ID",
		Short: "Invoice a sales order",
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

			handle, err := client.Orders().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get sales order: %w", err)
			}

			invoice, err := handle.Invoice(ctx)
			if err != nil {
				return fmt.Errorf("failed to invoice sales order: %w", err)
			}

			fmt.Printf("Created invoice %s (id %s)\n",
				stringValue(invoice.Record().InvoiceNo), intValue(invoice.Record().ID))

			return nil
		},
	}
}

func newOrdersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a sales order",
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

			handle, err := client.Orders().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get sales order: %w", err)
			}

			deleted, err := handle.Delete(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete sales order: %w", err)
			}

			if !deleted {
				fmt.Printf("Sales order %d was not deleted\n", id)

				return nil
			}

			fmt.Printf("Sales order %d deleted\n", id)

			return nil
		},
	}
}
