// Command quizrunner runs timed practice quizzes from an Excel workbook.
package main

import (
	"os"

	"quizrunner/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
