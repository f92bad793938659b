// Package config loads application configuration that supplies defaults for
// command line flags. A global file in the user's home directory is merged
// with a local file in the working directory; explicit flags always win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/code2md/internal/utils"
)

const (
	// GlobalConfigDirectoryName is the directory under the user home that holds the global configuration.
	GlobalConfigDirectoryName = ".code2md"
	// GlobalConfigFileName is the file name of the global configuration.
	GlobalConfigFileName = "config.yaml"
	// LocalConfigFileName is the file name of the per-project configuration.
	LocalConfigFileName = ".code2md.yaml"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds configurable defaults for document generation.
type ApplicationConfiguration struct {
	Generate GenerateConfiguration `mapstructure:"generate"`
}

// GenerateConfiguration defines defaults for the generate command.
type GenerateConfiguration struct {
	Types           []string           `mapstructure:"types"`
	Extensions      []string           `mapstructure:"extensions"`
	Excludes        []string           `mapstructure:"excludes"`
	Output          string             `mapstructure:"output"`
	Name            string             `mapstructure:"name"`
	Tree            *bool              `mapstructure:"tree"`
	DefaultExcludes *bool              `mapstructure:"default_excludes"`
	Tokens          TokenConfiguration `mapstructure:"tokens"`
	Clipboard       *bool              `mapstructure:"clipboard"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, GlobalConfigDirectoryName, GlobalConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfiguration, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfiguration)
	}

	merged.Generate.Excludes = utils.DeduplicatePatterns(merged.Generate.Excludes)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolutePath, absoluteError := filepath.Abs(explicitPath)
			if absoluteError != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, absoluteError)
			}
			return absolutePath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, LocalConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	pathInformation, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if pathInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	result.Generate = result.Generate.merge(override.Generate)
	return result
}

func (configuration GenerateConfiguration) merge(override GenerateConfiguration) GenerateConfiguration {
	result := configuration
	if len(override.Types) > 0 {
		result.Types = append([]string(nil), override.Types...)
	}
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if len(override.Excludes) > 0 {
		result.Excludes = append(result.Excludes, override.Excludes...)
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Name != "" {
		result.Name = override.Name
	}
	if override.Tree != nil {
		result.Tree = cloneBool(override.Tree)
	}
	if override.DefaultExcludes != nil {
		result.DefaultExcludes = cloneBool(override.DefaultExcludes)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func (configuration TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := configuration
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
