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

// NewPurchaseOrdersCommand creates the purchase orders command group.
func NewPurchaseOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "po",
		Aliases: []string{"purchase-orders", "purchasing"},
		Short:   "Manage purchase orders",
		Long:    "List, inspect, issue, and receive purchase orders",
	}

	cmd.AddCommand(newPOListCommand())
	cmd.AddCommand(newPOGetCommand())
	cmd.AddCommand(newPOIssueCommand())
	cmd.AddCommand(newPOReceiveCommand())
	cmd.AddCommand(newPOHistoryCommand())

	return cmd
}

func newPOListCommand() *cobra.Command {
	var (
		filters []string
		sorts   []string
		query   string
		limit   int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List purchase orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPOListCommand(filters, sorts, query, limit, all)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field=value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort field, prefix with - for descending (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum records to fetch")
	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")

	return cmd
}

func runPOListCommand(filters, sorts []string, query string, limit int, all bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	opts, err := ParseListFlags(filters, sorts, query, limit, all)
	if err != nil {
		return err
	}

	handles, err := client.PurchaseOrders().List(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("failed to list purchase orders: %w", err)
	}

	orders := make([]*spire.PurchaseOrder, 0, len(handles))
	for _, handle := range handles {
		orders = append(orders, handle.Record())
	}

	return outputPurchaseOrders(orders)
}

func outputPurchaseOrders(orders []*spire.PurchaseOrder) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(orders)
	case OutputFormatYAML:
		return StandardYAMLRenderer(orders)
	default:
		return renderPurchaseOrderTable(orders)
	}
}

func renderPurchaseOrderTable(orders []*spire.PurchaseOrder) error {
	if len(orders) == 0 {
		_, _ = os.Stdout.WriteString("No purchase orders found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Vendor", "Status", "Date", "Total")

	for _, order := range orders {
		vendor := NotAvailable
		if order.Vendor != nil {
			vendor = stringValue(order.Vendor.Name)
		}

		_ = table.Append(
			intValue(order.ID),
			stringValue(order.Number),
			vendor,
			stringValue(order.Status),
			stringValue(order.Date),
			stringValue(order.Total),
		)
	}

	_ = table.Render()

	return nil
}

func newPOGetCommand() *cobra.Command {
	var byNumber string

	cmd := &cobra.Command{
		Use:   "get [ID]",
		Short: "Get a purchase order by id or number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var handle *spire.PurchaseOrderHandle

			if byNumber != "" {
				handle, err = client.PurchaseOrders().GetByNumber(ctx, byNumber)
			} else {
				var id int

				id, err = parseRecordID(args)
				if err != nil {
					return err
				}

				handle, err = client.PurchaseOrders().Get(ctx, id)
			}

			if err != nil {
				return fmt.Errorf("failed to get purchase order: %w", err)
			}

			if viper.GetString("output") == OutputFormatYAML {
				return StandardYAMLRenderer(handle.Record())
			}

			return StandardJSONRenderer(handle.Record())
		},
	}

	cmd.Flags().StringVar(&byNumber, "number", "", "look up by purchase order number instead of id")

	return cmd
}

func newPOIssueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "issue ID",
		Short: "Issue a purchase order",
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

			handle, err := client.PurchaseOrders().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get purchase order: %w", err)
			}

			if _, err := handle.Issue(ctx); err != nil {
				return fmt.Errorf("failed to issue purchase order: %w", err)
			}

			fmt.Printf("Purchase order %d issued\n", id)

			return nil
		},
	}
}

func newPOReceiveCommand() *cobra.Command {
	var receiveAll bool

	cmd := &cobra.Command{
		Use:   "receive ID",
		Short: "Receive a purchase order",
		Long:  "Post the receive transition; with --all, every line's receive quantity is first set to its ordered quantity",
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

			handle, err := client.PurchaseOrders().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get purchase order: %w", err)
			}

			if _, err := handle.Receive(ctx, receiveAll); err != nil {
				return fmt.Errorf("failed to receive purchase order: %w", err)
			}

			fmt.Printf("Purchase order %d received\n", id)

			return nil
		},
	}

	cmd.Flags().BoolVar(&receiveAll, "all", false, "receive every line in full")

	return cmd
}

func newPOHistoryCommand() *cobra.Command {
	var (
		filters []string
		sorts   []string
		query   string
		limit   int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List purchasing history",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts, err := ParseListFlags(filters, sorts, query, limit, all)
			if err != nil {
				return err
			}

			orders, err := client.PurchaseOrders().History(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list purchasing history: %w", err)
			}

			return outputPurchaseOrders(orders)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field=value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort field, prefix with - for descending (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum records to fetch")
	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")

	return cmd
}
