package main

import (
	"os"

	"github.com/GoStorefront/GoStorefront/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
