package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sphinxcode/archon-status/pkg/cli"
	"github.com/sphinxcode/archon-status/pkg/status"
)

func init() {
	mcpStatusCmd.Flags().BoolP("json", "j", false, "Print MCP status as JSON")
	mcpStatusCmd.Flags().Bool("exit-with-status", false, "Exit with status code 0 if the MCP service is running, 1 if not")

	mcpCommand.AddCommand(&mcpStatusCmd)
}

var mcpStatusCmd = cobra.Command{
	Use:   "status",
	Short: "Show MCP service status",
	Long:  "This command shows the status of the MCP service as resolved by the gateway (HTTP probe in remote mode, container inspection in local mode).",

	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient := cli.NewAPIClient(apiAddress)

		resp := apiClient.MCPStatus()
		if resp.Err() != nil {
			return fmt.Errorf("failed to get MCP status: %w", resp.Err())
		}

		exitWithStatus, _ := cmd.Flags().GetBool("exit-with-status")

		if printJson, _ := cmd.Flags().GetBool("json"); printJson {
			if err := resp.Print(); err != nil {
				return fmt.Errorf("failed to print output: %w", err)
			}
		} else {
			fmt.Println(styleStatusMainLine.Render(mcpStatusLine(resp.Body)))
			fmt.Println(styleStatusDetails.Render(lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.JoinHorizontal(lipgloss.Left, styleStatusLeftColumn.Render("container status:"), wrapNotSet(resp.Body.ContainerStatus)),
				lipgloss.JoinHorizontal(lipgloss.Left, styleStatusLeftColumn.Render("uptime:"), wrapNotSet(formatUptime(resp.Body.Uptime))),
				lipgloss.JoinHorizontal(lipgloss.Left, styleStatusLeftColumn.Render("message:"), wrapNotSet(firstNonEmpty(resp.Body.Message, resp.Body.Error))),
			)))
		}

		if resp.Body.Status != status.StateRunning && exitWithStatus {
			os.Exit(1)
		}

		return nil
	},
}

func mcpStatusLine(record status.Record) string {
	switch record.Status {
	case status.StateRunning:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleRunning.Render("▶︎"), " ",
			styleHighlight.Render("archon-mcp"), " (",
			styleRunning.Render("running"), ")",
		)
	case status.StateStopped:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleStopped.Render("◼︎"), " ",
			styleHighlight.Render("archon-mcp"), " (",
			styleStopped.Render("stopped"), ")",
		)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleFailed.Render("◼︎"), " ",
			styleHighlight.Render("archon-mcp"), " (",
			styleFailed.Render(string(record.Status)), ")",
		)
	}
}

func formatUptime(uptime *float64) string {
	if uptime == nil {
		return ""
	}
	return fmt.Sprintf("%.0fs", *uptime)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
