// Package spireclient provides the primary entry point for constructing a
// Spire ERP API client that implements the spire.Client interface.
//
// It layers configuration, HTTP transport, and basic authentication on top of
// the resource interfaces and record types defined in the spire package. Most
// applications should import spireclient to build a client, then use the
// returned spire.Client to access resource-specific clients, for example
// Orders(), Customers(), PurchaseOrders(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/spirekit/spire-client/pkg/spire"
//	  "github.com/spirekit/spire-client/pkg/spireclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := spireclient.NewWithPassword(
//	    "example.spirelan.com:10880", "inspire", "user", "pass")
//	  if err != nil { log.Fatal(err) }
//
//	  orders, err := cli.Orders().List(ctx, &spire.ListOptions{Limit: 10})
//	  if err != nil { log.Fatal(err) }
//	  _ = orders
//	}
//
// Every request authenticates with HTTP basic auth against one company
// database; a bare host gets "https://" automatically. Optional features
// (retries, debug logging, the entity cache) are switched on through fields
// of spire.Config.
package spireclient
