package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delford/twophase-cube/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Serve starts an HTTP server exposing the solver: POST /api/solve
to start a solve, GET /api/solve/{id} to poll its progress or result,
POST /api/solve/{id}/cancel to cancel it, and GET /api/health.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")

		db, err := openDB()
		if err != nil {
			fmt.Printf("Warning: solve history disabled: %v\n", err)
		} else {
			defer db.Close()
		}

		fmt.Printf("Starting web server at http://%s:%s\n", host, port)

		server := web.NewServer(db)
		if err := server.Start(host + ":" + port); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
}
