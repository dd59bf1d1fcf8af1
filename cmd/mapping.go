package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ingestd/catalogsync/pkg/logger"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Manage remote-to-local path mappings",
}

var mappingAddCmd = &cobra.Command{
	Use:   "add SERVER_ID LIBRARY_ID REMOTE_PATH LOCAL_PATH",
	Short: "Add a path remapping rule",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		serverID := mustParseID(log, args[0])
		libraryID := mustParseID(log, args[1])
		id, err := cat.AddPathMapping(context.Background(), serverID, libraryID, args[2], args[3])
		if err != nil {
			log.Fatal("failed to add path mapping", zap.Error(err))
		}
		fmt.Printf("mapping %d added: %s -> %s\n", id, args[2], args[3])
	},
}

var mappingListCmd = &cobra.Command{
	Use:   "list SERVER_ID LIBRARY_ID",
	Short: "List path mappings for a library",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		serverID := mustParseID(log, args[0])
		libraryID := mustParseID(log, args[1])
		mappings, err := cat.ListPathMappings(context.Background(), serverID, libraryID)
		if err != nil {
			log.Fatal("failed to list path mappings", zap.Error(err))
		}
		for _, m := range mappings {
			fmt.Printf("%d\t%s\t%s\n", m.ID, m.PlexPath, m.LocalPath)
		}
	},
}

var mappingDeleteCmd = &cobra.Command{
	Use:   "delete SERVER_ID LIBRARY_ID MAPPING_ID",
	Short: "Delete a path remapping rule",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		serverID := mustParseID(log, args[0])
		libraryID := mustParseID(log, args[1])
		id := mustParseID(log, args[2])
		ok, err := cat.DeletePathMapping(context.Background(), serverID, libraryID, id)
		if err != nil {
			log.Fatal("failed to delete path mapping", zap.Error(err))
		}
		if !ok {
			log.Fatalf("mapping %d not found", id)
		}
		fmt.Printf("mapping %d deleted\n", id)
	},
}

func init() {
	rootCmd.AddCommand(mappingCmd)
	mappingCmd.AddCommand(mappingAddCmd, mappingListCmd, mappingDeleteCmd)
}
