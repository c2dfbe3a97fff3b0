// cmd/chromalign/main.go
package main

import (
	"chromalign/internal/appshell"
	"chromalign/internal/cli"
)

func main() {
	appshell.Main(cli.Run)
}
