// displayconf loads window display settings and turns them into window
// builder attributes.
//
// Usage:
//
//	displayconf print [--defaults]   - Print the effective config
//	displayconf init [--force]       - Write the default config file
//	displayconf edit                 - Edit the config in a form
//	displayconf validate             - Check the config file
//	displayconf explain <key>        - Show a value and where it came from
//	displayconf monitors             - List attached monitors
//	displayconf builder [--json]     - Print the window attributes
//	displayconf mcp serve            - Start the MCP server on stdio
//
// Global flags (also read from DISPLAYCONF_* environment variables):
//
//	--config <path>     - Config file (default: ~/.config/displayconf/display.yaml)
//	--display <name>    - X display to query (default: $DISPLAY)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--strict            - Reject unknown keys in the config file
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
