package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/admin-nexus/internal/client"
	"github.com/admin-nexus/internal/page"

	"github.com/spf13/cobra"
)

var (
	apiURL      string
	apiToken    string
	assumeYes   bool
	pageNumber  int
	perPage     int
	searchTerm  string
	filterPairs map[string]string
	outputJSON  bool

	rootCmd = &cobra.Command{
		Use:   "admin",
		Short: "Admin console for the Nexus API",
		Long: `admin drives the Nexus REST API the way the web console does: it loads a
resource collection, applies search and filters, paginates, and performs
create, update, delete, bulk delete and export operations.`,
		SilenceUsage: true,
	}
)

func init() {
	defaultURL := os.Getenv("NEXUS_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3001"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "API base URL")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", os.Getenv("NEXUS_API_TOKEN"), "Bearer token")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Skip delete confirmation")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print JSON instead of a table")

	api := func() *client.API { return client.NewAPI(client.New(apiURL, client.WithToken(apiToken))) }
	rootCmd.AddCommand(resourceCommands(api)...)
	rootCmd.AddCommand(actionCommands(api)...)
}

// confirm 交互确认，--yes 时直接通过
func confirm(prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printToast(t page.Toast) {
	prefix := "ok"
	if t.Destructive {
		prefix = "error"
	}
	fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", prefix, t.Title, t.Description)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
