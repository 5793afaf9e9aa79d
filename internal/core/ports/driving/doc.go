// Package driving defines interfaces that external actors (the CLI) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Generation services take an already loaded *domain.Content so that one
// pipeline run reads the registries once.
//
// Implementations of these interfaces live in internal/core/services.
package driving
