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

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cust"},
		Short:   "Manage customers",
		Long:    "List and inspect customer master records",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		filters []string
		sorts   []string
		query   string
		limit   int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomersListCommand(filters, sorts, query, limit, all)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field=value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort field, prefix with - for descending (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum records to fetch")
	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")

	return cmd
}

func runCustomersListCommand(filters, sorts []string, query string, limit int, all bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	opts, err := ParseListFlags(filters, sorts, query, limit, all)
	if err != nil {
		return err
	}

	handles, err := client.Customers().List(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*spire.Customer, 0, len(handles))
	for _, handle := range handles {
		customers = append(customers, handle.Record())
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(customers)
	case OutputFormatYAML:
		return StandardYAMLRenderer(customers)
	default:
		return renderCustomerTable(customers)
	}
}

func renderCustomerTable(customers []*spire.Customer) error {
	if len(customers) == 0 {
		_, _ = os.Stdout.WriteString("No customers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Customer No", "Name", "Status", "Credit Limit", "Balance")

	for _, customer := range customers {
		_ = table.Append(
			intValue(customer.ID),
			stringValue(customer.CustomerNo),
			stringValue(customer.Name),
			stringValue(customer.Status),
			stringValue(customer.CreditLimit),
			stringValue(customer.CreditBalance),
		)
	}

	_ = table.Render()

	return nil
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a customer",
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

			handle, err := client.Customers().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			if viper.GetString("output") == OutputFormatYAML {
				return StandardYAMLRenderer(handle.Record())
			}

			return StandardJSONRenderer(handle.Record())
		},
	}
}
