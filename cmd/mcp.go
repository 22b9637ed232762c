package cmd

import (
	"github.com/spf13/cobra"
)

const DefaultAPIAddress = "http://localhost:8181"

var apiAddress string

func init() {
	rootCmd.AddCommand(mcpCommand)
	mcpCommand.PersistentFlags().StringVar(&apiAddress, "api-address", DefaultAPIAddress, "address of a running status gateway")
}

var mcpCommand = &cobra.Command{
	Use:   "mcp",
	Short: "Query a running status gateway",
	Long:  "This command can be used to query MCP status and configuration from a running gateway by command line.",
}
