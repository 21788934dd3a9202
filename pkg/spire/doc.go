// Package spire provides types, interfaces, and helpers for working with the
// Spire ERP REST API.
//
// # Overview
//
// The spire package defines the record types (e.g., SalesOrder, Invoice,
// Customer, InventoryItem, PurchaseOrder), the resource client interfaces
// (e.g., OrdersClient, PurchaseOrdersClient), and the record handles that
// bind a fetched record to a transport so domain operations can be invoked on
// it directly. A concrete implementation is provided by the spireclient
// package, which wires configuration, transport, and authentication. Most
// consumers should import spireclient to construct a client and then work
// through the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := spireclient.New(&spire.Config{
//	    Host:     "example.spirelan.com:10880",
//	    Company:  "inspire",
//	    Username: "admin",
//	    Password: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  orders, err := cli.Orders().List(ctx, &spire.ListOptions{Limit: 50})
//	  if err != nil { log.Fatal(err) }
//	  _ = orders
//	}
//
// # Queries and pagination
//
// Use ListOptions to express search, filtering, sorting, and pagination.
// List calls page through results server-side and return fully decoded
// records; set All to collect every page, or Limit to cap the total.
//
//	orders, err := cli.Orders().List(ctx, &spire.ListOptions{
//	  Filter: map[string]interface{}{"status": "O"},
//	  Sort:   map[string]string{"orderDate": spire.SortDescending},
//	  All:    true,
//	})
//
// # Record handles
//
// Each fetched record comes back wrapped in a handle (SalesOrderHandle,
// PurchaseOrderHandle, ...) that keeps the decoded record and the transport
// together. Mutate the record through Record(), then call Update to persist;
// domain transitions such as Invoice, Process, Issue, and Receive live on the
// same handle.
//
// # Errors
//
// Read failures are *RequestError, write failures *CreateRequestError, and
// schema mismatches *SchemaValidationError. Helpers such as IsNotFound,
// IsUnauthorized, and IsBusinessState make it easy to branch on common cases.
//
// # Interceptors and caching
//
// The package includes request/response interceptors (logging, metrics, rate
// limiting, custom headers) and a pluggable Cache abstraction with in-memory
// and NATS JetStream KV backends. The spireclient package composes these for
// a sensible default client.
package spire
