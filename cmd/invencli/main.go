// Command invencli is the terminal client for the invencost backend. It
// keeps the session in ~/.invencost/session.json and talks to the server
// named by --server or the INVENCOST_SERVER env var.
package main

import (
	"fmt"
	"os"

	"invencost/internal/client"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	api       *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "invencli",
	Short: "Cliente de terminal para el inventario y costes de recetas",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if env := os.Getenv("INVENCOST_SERVER"); env != "" && !cmd.Flags().Changed("server") {
			serverURL = env
		}
		api = client.New(serverURL, client.NewFileStore(client.DefaultSessionPath()))
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "URL del servidor")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, profileCmd, passwdCmd)
	rootCmd.AddCommand(ingredientsCmd, productsCmd, dashboardCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
