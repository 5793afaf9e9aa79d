// Package domain defines the core entities of the site generator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Content: The loaded content registries (services, locations, posts, stories)
//   - StaticRoute: A single pre-renderable page derived from the registries
//   - SearchIndexItem: One deduplicated entry of the client-side search index
//   - QualityIssue: A content-quality finding (error or warning)
//   - BuildRun: A recorded generation run and the files it produced
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
