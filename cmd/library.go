package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ingestd/catalogsync/pkg/logger"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage and discover libraries on a server",
}

var libraryServerID int64

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List libraries, optionally scoped to one server",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		var serverFilter *int64
		if libraryServerID != 0 {
			serverFilter = &libraryServerID
		}

		libraries, err := cat.ListLibraries(context.Background(), serverFilter)
		if err != nil {
			log.Fatal("failed to list libraries", zap.Error(err))
		}
		for _, l := range libraries {
			enabled := "enabled"
			if !l.SyncEnabled {
				enabled = "disabled"
			}
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n", l.ID, l.ExternalKey, l.Title, l.Kind, enabled)
		}
	},
}

var libraryDiscoverCmd = &cobra.Command{
	Use:   "discover SERVER_ID",
	Short: "Discover a server's library sections and upsert them",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		serverID := mustParseID(log, args[0])
		libraries, err := cat.DiscoverLibraries(context.Background(), serverID)
		if err != nil {
			log.Fatal("failed to discover libraries", zap.Error(err))
		}
		for _, l := range libraries {
			fmt.Printf("%d\t%s\t%s\t%s\n", l.ID, l.ExternalKey, l.Title, l.Kind)
		}
	},
}

var libraryToggleCmd = &cobra.Command{
	Use:   "toggle LIBRARY_ID (enable|disable)",
	Short: "Enable or disable a library for sync",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cat, err := buildCatalog()
		if err != nil {
			log.Fatal("failed to build catalog", zap.Error(err))
		}

		libraryID := mustParseID(log, args[0])
		var enabled bool
		switch args[1] {
		case "enable":
			enabled = true
		case "disable":
			enabled = false
		default:
			log.Fatalf("second argument must be 'enable' or 'disable', got %q", args[1])
		}

		if err := cat.SetLibrarySyncEnabled(context.Background(), libraryID, enabled); err != nil {
			log.Fatal("failed to toggle library", zap.Error(err))
		}
		state := "disabled"
		if enabled {
			state = "enabled"
		}
		fmt.Printf("library %d %s\n", libraryID, state)
	},
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd, libraryDiscoverCmd, libraryToggleCmd)
	libraryListCmd.Flags().Int64Var(&libraryServerID, "server-id", 0, "restrict the listing to one server")
}
