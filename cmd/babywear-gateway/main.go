package main

import (
	"flag"
	"os"

	"github.com/kj-nakamura/baby-wear-translator/gatewayservice"
)

func main() {
	backend := flag.String("backend", "", "Override BACKEND_API_URL")
	port := flag.Int("port", 0, "Override PORT")
	flag.Parse()

	if err := gatewayservice.Run(gatewayservice.Overrides{BackendAPIURL: *backend, HTTPPort: *port}); err != nil {
		os.Exit(1)
	}
}
