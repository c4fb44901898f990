package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/disktools/smartreport/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		var ec cmd.ExitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
