// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the
// entry point and outbound renderers. Health ports are implemented by any
// component that can report on its own state.
package ports
