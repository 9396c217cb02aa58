package main

import (
	"os"

	"github.com/itsShrizon/kyc-verification-service/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
