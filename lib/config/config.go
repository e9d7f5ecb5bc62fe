package config

import (
	"os"
	"path/filepath"

	"github.com/davidbarton/ring/lib/util"
	"github.com/go-i2p/logger"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const KEYCHECK_BASE_DIR = ".keycheck"

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.keycheck/
		viper.AddConfigPath(BuildKeycheckDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Load defaults
	setDefaults()

	// handle config file creating it if needed
	handleConfigFile()
}

func setDefaults() {
	defaults := Defaults()

	// Policy defaults
	viper.SetDefault("policy.context", defaults.Policy.Context)
	viper.SetDefault("policy.min_modulus_bits", defaults.Policy.MinModulusBits)
	viper.SetDefault("policy.max_modulus_bits", defaults.Policy.MaxModulusBits)
}

// NewPolicyFromViper creates a new Policy from current viper settings
func NewPolicyFromViper() Policy {
	return Policy{
		Context:        viper.GetString("policy.context"),
		MinModulusBits: viper.GetInt("policy.min_modulus_bits"),
		MaxModulusBits: viper.GetInt("policy.max_modulus_bits"),
	}
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current config file
	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildKeycheckDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func BuildKeycheckDirPath() string {
	return filepath.Join(util.UserHome(), KEYCHECK_BASE_DIR)
}
