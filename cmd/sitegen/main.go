// Command sitegen generates the static SEO artefacts of the Exquisite
// Dentistry site.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/exquisite-dentistry/sitegen/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
