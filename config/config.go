package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Source   Source   `json:"source" yaml:"source" mapstructure:"source"`
	Storage  Storage  `json:"storage" yaml:"storage" mapstructure:"storage"`
	Validate Validate `json:"validate" yaml:"validate" mapstructure:"validate"`
	Sync     Sync     `json:"sync" yaml:"sync" mapstructure:"sync"`
}

// Source configures the default connection used when no server is given explicitly on the CLI.
type Source struct {
	Scheme  string        `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host    string        `json:"host" yaml:"host" mapstructure:"host"`
	Token   string        `json:"token" yaml:"token" mapstructure:"token"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Validate configures the media-probe stage of the Validator.
type Validate struct {
	ProbeBinary     string        `json:"probeBinary" yaml:"probeBinary" mapstructure:"probeBinary"`
	ProbeTimeout    time.Duration `json:"probeTimeout" yaml:"probeTimeout" mapstructure:"probeTimeout"`
	MaxConcurrency  int           `json:"maxConcurrency" yaml:"maxConcurrency" mapstructure:"maxConcurrency"`
	CaseInsensitive bool          `json:"caseInsensitiveFS" yaml:"caseInsensitiveFS" mapstructure:"caseInsensitiveFS"`
}

// Sync configures default orchestrator behavior when not overridden by CLI flags.
type Sync struct {
	BatchSize        int `json:"batchSize" yaml:"batchSize" mapstructure:"batchSize"`
	ProgressInterval int `json:"progressInterval" yaml:"progressInterval" mapstructure:"progressInterval"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
