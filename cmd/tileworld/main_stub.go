//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of tileworld requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/tileworld` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless generation statistics use ./cmd/terrain-sweep.")
	os.Exit(2)
}
