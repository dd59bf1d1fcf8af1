package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ingestd/catalogsync/pkg/logger"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage remote media servers",
}

var serverAddCmd = &cobra.Command{
	Use:   "add NAME BASE_URL TOKEN",
	Short: "Register a remote media server",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		id, err := cat.AddServer(context.Background(), args[0], args[1], args[2])
		if err != nil {
			log.Fatal("failed to add server", zap.Error(err))
		}
		fmt.Printf("server %d added: %s (%s)\n", id, args[0], args[1])
	},
}

var serverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered servers",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		servers, err := cat.ListServers(context.Background())
		if err != nil {
			log.Fatal("failed to list servers", zap.Error(err))
		}
		for _, s := range servers {
			def := ""
			if s.IsDefault {
				def = " (default)"
			}
			fmt.Printf("%d\t%s\t%s%s\n", s.ID, s.Name, s.BaseURL, def)
		}
	},
}

var serverDeleteCmd = &cobra.Command{
	Use:   "delete SERVER_ID",
	Short: "Delete a server and everything under it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		id := mustParseID(log, args[0])
		if err := cat.DeleteServer(context.Background(), id); err != nil {
			log.Fatal("failed to delete server", zap.Error(err))
		}
		fmt.Printf("server %d deleted\n", id)
	},
}

var serverSetDefaultCmd = &cobra.Command{
	Use:   "set-default SERVER_ID",
	Short: "Mark a server as the default (flagged in server list)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		id := mustParseID(log, args[0])
		if err := cat.SetDefaultServer(context.Background(), id); err != nil {
			log.Fatal("failed to set default server", zap.Error(err))
		}
		fmt.Printf("server %d is now the default\n", id)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(serverAddCmd, serverListCmd, serverDeleteCmd, serverSetDefaultCmd)
}
