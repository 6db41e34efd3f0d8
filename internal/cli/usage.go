package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `{{.Name}} - checks presence of various command line tools

USAGE
  {{.Name}} tool [tool]...

OPTIONS
  -v, --version   Show version and exit
  -h, --help      Show this help text

OUTPUT
  ✓ <tool> <version>          tool found, version detected
  ✓ <tool>                    tool found, no version detected
  ✗ <tool> command not found  tool not on PATH

EXIT CODES
  0   Every tool was found (also for -v and -h)
  N   Number of tools not found, capped at 255
  1   Also returned for no arguments or an unknown option

EXAMPLES
  {{.Name}} git curl node
  {{.Name}} -v
  {{.Name}} --help
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
