// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContentSource: Loads and validates the content registries
//   - SiteStore: Reads the SPA template and writes generated files
//   - ConfigStore: Application configuration
//   - BuildLedger: Records pipeline runs for the build command
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
