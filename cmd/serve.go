// serve.go implements the "sid serve" command, the MCP stdio server.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saffron-lang/sid/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Expose the ingredient database to MCP clients (Claude Desktop and
similar). Tools: sid_validate, sid_get, sid_search, sid_stats. Resources:
sid://ingredients/{id}.

Stdout carries JSON-RPC; logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		dir, maxFileSize, err := loadDataset()
		if err != nil {
			return err
		}
		return mcp.Serve(dir, maxFileSize)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
