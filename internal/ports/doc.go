// Package ports defines the interfaces between layers.
// TodoService is implemented by the application layer and called by inbound
// adapters (HTTP handlers, the CLI client). TodoRepository is implemented by the
// Postgres adapter and called only by the application layer.
package ports
