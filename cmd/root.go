package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "catalogsync",
	Short: "catalogsync cli",
	Long:  `catalogsync discovers, validates, and catalogs media from a remote server into a local SQLite store.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

// initConfig sets viper configurations and default values.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("CATALOGSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("source.scheme", "http")
	viper.SetDefault("source.timeout", "20s")

	viper.SetDefault("storage.filePath", "catalogsync.db")

	viper.SetDefault("validate.probeBinary", "ffprobe")
	viper.SetDefault("validate.probeTimeout", "30s")
	viper.SetDefault("validate.maxConcurrency", 4)
	viper.SetDefault("validate.caseInsensitiveFS", false)

	viper.SetDefault("sync.batchSize", 50)
	viper.SetDefault("sync.progressInterval", 100)
}
