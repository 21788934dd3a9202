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

// NewItemsCommand creates the inventory items command group.
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item", "inventory"},
		Short:   "Manage inventory items",
		Long:    "List and inspect inventory items and their units of measure",
	}

	cmd.AddCommand(newItemsListCommand())
	cmd.AddCommand(newItemsGetCommand())
	cmd.AddCommand(newItemsUOMsCommand())

	return cmd
}

func newItemsListCommand() *cobra.Command {
	var (
		filters []string
		sorts   []string
		query   string
		limit   int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItemsListCommand(filters, sorts, query, limit, all)
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as field=value (repeatable)")
	cmd.Flags().StringArrayVar(&sorts, "sort", nil, "sort field, prefix with - for descending (repeatable)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum records to fetch")
	cmd.Flags().BoolVar(&all, "all", false, "fetch all pages")

	return cmd
}

func runItemsListCommand(filters, sorts []string, query string, limit int, all bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	opts, err := ParseListFlags(filters, sorts, query, limit, all)
	if err != nil {
		return err
	}

	handles, err := client.Inventory().List(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("failed to list inventory items: %w", err)
	}

	items := make([]*spire.InventoryItem, 0, len(handles))
	for _, handle := range handles {
		items = append(items, handle.Record())
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(items)
	case OutputFormatYAML:
		return StandardYAMLRenderer(items)
	default:
		return renderItemTable(items)
	}
}

func renderItemTable(items []*spire.InventoryItem) error {
	if len(items) == 0 {
		_, _ = os.Stdout.WriteString("No inventory items found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Whse", "Part No", "Description", "On Hand", "Available")

	for _, item := range items {
		_ = table.Append(
			intValue(item.ID),
			stringValue(item.Whse),
			stringValue(item.PartNo),
			stringValue(item.Description),
			stringValue(item.OnHandQty),
			stringValue(item.AvailableQty),
		)
	}

	_ = table.Render()

	return nil
}

func newItemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get an inventory item",
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

			handle, err := client.Inventory().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get inventory item: %w", err)
			}

			if viper.GetString("output") == OutputFormatYAML {
				return StandardYAMLRenderer(handle.Record())
			}

			return StandardJSONRenderer(handle.Record())
		},
	}
}

func newItemsUOMsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uoms ID",
		Short: "List an item's units of measure",
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

			handle, err := client.Inventory().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get inventory item: %w", err)
			}

			uomHandles, err := handle.UOMs(ctx)
			if err != nil {
				return fmt.Errorf("failed to list units of measure: %w", err)
			}

			uoms := make([]*spire.UnitOfMeasure, 0, len(uomHandles))
			for _, uomHandle := range uomHandles {
				uoms = append(uoms, uomHandle.Record())
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(uoms)
			case OutputFormatYAML:
				return StandardYAMLRenderer(uoms)
			default:
				return renderUOMTable(uoms)
			}
		},
	}
}

func renderUOMTable(uoms []*spire.UnitOfMeasure) error {
	if len(uoms) == 0 {
		_, _ = os.Stdout.WriteString("No units of measure found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Code", "Description", "Factor", "Buy", "Sell")

	for _, uom := range uoms {
		buy := NotAvailable
		if uom.BuyUOM != nil {
			buy = fmt.Sprintf("%t", *uom.BuyUOM)
		}

		sell := NotAvailable
		if uom.SellUOM != nil {
			sell = fmt.Sprintf("%t", *uom.SellUOM)
		}

		_ = table.Append(
			intValue(uom.ID),
			stringValue(uom.Code),
			stringValue(uom.Description),
			stringValue(uom.QuantityFactor),
			buy,
			sell,
		)
	}

	_ = table.Render()

	return nil
}
