package shell

import (
	_ "embed"
	"strings"
)

//go:embed helptext/usage.txt
var usageText string

func usage() string {
	return strings.TrimRight(usageText, "\n")
}
