package main

import (
	"os"

	"github.com/stixsettings/stixsettings/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
