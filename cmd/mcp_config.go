package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sphinxcode/archon-status/pkg/cli"
)

func init() {
	mcpConfigCmd.Flags().BoolP("json", "j", false, "Print MCP configuration as JSON")

	mcpCommand.AddCommand(&mcpConfigCmd)
}

var mcpConfigCmd = cobra.Command{
	Use:   "config",
	Short: "Show effective MCP connection configuration",
	Long:  "This command shows the connection configuration the gateway reports to upstream callers (host, port, transport, deployment mode and model choice).",

	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient := cli.NewAPIClient(apiAddress)

		resp := apiClient.MCPConfig()
		if resp.Err() != nil {
			return fmt.Errorf("failed to get MCP configuration: %w", resp.Err())
		}

		if printJson, _ := cmd.Flags().GetBool("json"); printJson {
			if err := resp.Print(); err != nil {
				return fmt.Errorf("failed to print output: %w", err)
			}
			return nil
		}

		fmt.Println(styleStatusDetails.Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Left, styleStatusLeftColumn.Render("host:"), wrapNotSet(resp.Body.Host)),
			lipgloss.JoinHorizontal(lipgloss.Left, styleStatusLeftColumn.Render("port:"), styleHighlight.Render(fmt.Sprintf("%d", resp.Body.Port))),
			lipgloss.JoinHorizontal(lipgloss.Left, styleStatusLeftColumn.Render("transport:"), wrapNotSet(resp.Body.Transport)),
			lipgloss.JoinHorizontal(lipgloss.Left, styleStatusLeftColumn.Render("deployment:"), wrapNotSet(resp.Body.Deployment)),
			lipgloss.JoinHorizontal(lipgloss.Left, styleStatusLeftColumn.Render("proxy url:"), wrapNotSet(resp.Body.ProxyURL)),
			lipgloss.JoinHorizontal(lipgloss.Left, styleStatusLeftColumn.Render("model choice:"), wrapNotSet(resp.Body.ModelChoice)),
		)))

		return nil
	},
}
