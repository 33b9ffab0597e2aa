// Command factoryctl generates wallet keys, signs purchase grants and issues bearer tokens
// for the asset-factory API.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("factoryctl failed", "error", err)
		os.Exit(1)
	}
}
