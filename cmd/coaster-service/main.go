package main

import (
	"os"

	"github.com/coasterforge/coasterforge-backend/conceptservice"
)

func main() {
	if err := conceptservice.Run(); err != nil {
		os.Exit(1)
	}
}
