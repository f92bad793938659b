// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/code2md/internal/collector"
	"github.com/temirov/code2md/internal/config"
	"github.com/temirov/code2md/internal/content"
	"github.com/temirov/code2md/internal/markdown"
	"github.com/temirov/code2md/internal/matcher"
	"github.com/temirov/code2md/internal/output"
	"github.com/temirov/code2md/internal/registry"
	"github.com/temirov/code2md/internal/services/clipboard"
	"github.com/temirov/code2md/internal/tokenizer"
	"github.com/temirov/code2md/internal/utils"
)

const (
	typeFlagName              = "type"
	extensionFlagName         = "ext"
	excludeFlagName           = "exclude"
	outputFlagName            = "output"
	nameFlagName              = "name"
	noTreeFlagName            = "no-tree"
	noDefaultExcludesFlagName = "no-default-excludes"
	verboseFlagName           = "verbose"
	tokensFlagName            = "tokens"
	modelFlagName             = "model"
	copyFlagName              = "copy"
	configFlagName            = "config"
	versionFlagName           = "version"

	typeFlagDescription              = "project type group(s), comma separated (e.g. python,vue,config)"
	extensionFlagDescription         = "additional file extensions (e.g. .env .graphql)"
	excludeFlagDescription           = "additional exclude glob patterns"
	outputFlagDescription            = "output file path ('-' writes to stdout)"
	nameFlagDescription              = "project name used in the document header"
	noTreeFlagDescription            = "omit the directory structure section"
	noDefaultExcludesFlagDescription = "disable the built-in exclude patterns"
	verboseFlagDescription           = "verbose output"
	tokensFlagDescription            = "report the token count of the generated document"
	modelFlagDescription             = "tokenizer model used for token counting"
	copyFlagDescription              = "copy the generated document to the clipboard"
	configFlagDescription            = "explicit configuration file path"
	versionFlagDescription           = "display application version"

	versionTemplate          = "code2md version: %s\n"
	defaultDirectory         = "."
	defaultTokenizerModel    = "gpt-4o"
	defaultOutputSuffix      = "_code.md"
	fallbackProjectName      = "project"
	missingSelectionMessage  = "at least one of --type or --ext is required; run 'code2md list-types' for available types"
	workingDirectoryFormat   = "unable to determine working directory: %w"
	clipboardCopyErrorFormat = "copying document to clipboard: %w"

	rootUse              = "code2md [directory]"
	rootShortDescription = "export project code into a structured Markdown document"
	rootLongDescription  = `code2md collects the relevant source files of a project and exports them
into a single Markdown document with a table of contents, a directory tree,
and syntax-highlighted content blocks.`
	rootUsageExample = `  # Export a Python project
  code2md ./my-project --type python

  # Mixed stack with a custom output file
  code2md ./fullstack-app --type vue,python --output project.md

  # Extra extensions and exclusions
  code2md ./app --type react --ext .env .graphql --exclude "tests/**"

  # List the available project type groups
  code2md list-types`

	listTypesUse              = "list-types"
	listTypesShortDescription = "list the available project type groups"
)

// generateOptions stores the raw flag values of the root command.
type generateOptions struct {
	projectTypes      []string
	extraExtensions   []string
	excludePatterns   []string
	outputPath        string
	projectName       string
	disableTree       bool
	noDefaultExcludes bool
	verbose           bool
	tokensEnabled     bool
	tokenizerModel    string
	copyToClipboard   bool
	configFilePath    string
}

// Execute runs the code2md application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command. The root command itself
// performs document generation; list-types is the only subcommand.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var options generateOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			directory := defaultDirectory
			if len(arguments) > 0 {
				directory = arguments[0]
			}
			return runGenerate(command, directory, options)
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().StringSliceVarP(&options.projectTypes, typeFlagName, "t", nil, typeFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.extraExtensions, extensionFlagName, "e", nil, extensionFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.excludePatterns, excludeFlagName, "x", nil, excludeFlagDescription)
	rootCommand.Flags().StringVarP(&options.outputPath, outputFlagName, "o", "", outputFlagDescription)
	rootCommand.Flags().StringVarP(&options.projectName, nameFlagName, "n", "", nameFlagDescription)
	rootCommand.Flags().BoolVar(&options.disableTree, noTreeFlagName, false, noTreeFlagDescription)
	rootCommand.Flags().BoolVar(&options.noDefaultExcludes, noDefaultExcludesFlagName, false, noDefaultExcludesFlagDescription)
	rootCommand.Flags().BoolVarP(&options.verbose, verboseFlagName, "v", false, verboseFlagDescription)
	rootCommand.Flags().BoolVar(&options.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&options.tokenizerModel, modelFlagName, defaultTokenizerModel, modelFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().StringVar(&options.configFilePath, configFlagName, "", configFlagDescription)

	rootCommand.AddCommand(createListTypesCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createListTypesCommand returns the list-types subcommand.
func createListTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   listTypesUse,
		Short: listTypesShortDescription,
		Args:  cobra.NoArgs,
		Run: func(command *cobra.Command, arguments []string) {
			typeRegistry := registry.NewDefaultRegistry()
			fmt.Println()
			fmt.Println("Available project types:")
			fmt.Println()
			for _, projectType := range typeRegistry.ProjectTypes() {
				fmt.Printf("  %-12s %s\n", projectType.Name, projectType.Description)
				fmt.Printf("  %-12s extensions: %s\n", "", strings.Join(projectType.Extensions, ", "))
				fmt.Println()
			}
		},
	}
}

// runGenerate executes the full pipeline: configuration resolution, file
// discovery, document assembly, and delivery.
func runGenerate(command *cobra.Command, directory string, options generateOptions) error {
	applicationLogger, loggerError := utils.NewApplicationLogger(options.verbose)
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	defer func() { _ = applicationLogger.Sync() }()

	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryFormat, workingDirectoryError)
	}

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configFilePath,
	})
	if configurationError != nil {
		return configurationError
	}

	resolvedOptions := resolveOptions(command, options, applicationConfiguration.Generate)
	typeRegistry := registry.NewDefaultRegistry()

	extensionSet, extensionError := resolveExtensionSet(typeRegistry, resolvedOptions)
	if extensionError != nil {
		return extensionError
	}

	excludePatterns := resolveExcludePatterns(typeRegistry, resolvedOptions, applicationConfiguration.Generate)
	patternMatcher, patternError := matcher.NewPatternMatcher(excludePatterns)
	if patternError != nil {
		return patternError
	}

	applicationLogger.Debug("collecting files",
		zap.String("directory", directory),
		zap.Int("extensions", len(extensionSet)),
		zap.Int("excludePatterns", len(excludePatterns)),
	)

	fileCollector := &collector.Collector{Extensions: extensionSet, Excludes: patternMatcher}
	collected, collectError := fileCollector.Collect(directory)
	if collectError != nil {
		return collectError
	}

	applicationLogger.Info(fmt.Sprintf("found %d %s", len(collected.Files), pluralizeFiles(len(collected.Files))))
	if resolvedOptions.verbose {
		for _, filePath := range collected.Files {
			applicationLogger.Debug("  - " + utils.RelativePathOrSelf(filePath, collected.BasePath))
		}
	}

	projectLabel := resolvedOptions.projectName
	if projectLabel == "" {
		projectLabel = filepath.Base(collected.BasePath)
	}
	if projectLabel == "" || projectLabel == string(filepath.Separator) {
		projectLabel = fallbackProjectName
	}

	documentAssembler := &markdown.Assembler{
		Syntax:   typeRegistry,
		Contents: &content.Reader{},
	}
	documentText := documentAssembler.Assemble(collected, markdown.Options{
		ProjectLabel: projectLabel,
		IncludeTree:  !resolvedOptions.disableTree,
	})

	outputPath := resolvedOptions.outputPath
	if outputPath == "" {
		outputPath = filepath.Join(directory, utils.SanitizeFileName(projectLabel)+defaultOutputSuffix)
	}

	bytesWritten, writeError := output.WriteDocument(outputPath, documentText)
	if writeError != nil {
		return writeError
	}

	if resolvedOptions.copyToClipboard {
		if copyError := clipboard.NewService().Copy(documentText); copyError != nil {
			return fmt.Errorf(clipboardCopyErrorFormat, copyError)
		}
	}

	summaryFields := []zap.Field{
		zap.String("output", outputPath),
		zap.String("size", utils.FormatFileSize(bytesWritten)),
		zap.Int("files", len(collected.Files)),
	}
	if resolvedOptions.tokensEnabled {
		tokenCounter, resolvedModel, counterError := tokenizer.NewCounter(tokenizer.Config{Model: resolvedOptions.tokenizerModel})
		if counterError != nil {
			return counterError
		}
		tokenCount, countError := tokenCounter.CountString(documentText)
		if countError != nil {
			return countError
		}
		summaryFields = append(summaryFields, zap.Int("tokens", tokenCount), zap.String("model", resolvedModel))
	}
	applicationLogger.Info("export complete", summaryFields...)
	return nil
}

// resolveOptions overlays configuration defaults beneath explicit flags.
// A flag that was not set on the command line falls back to the configured
// default; everything else keeps the flag value.
func resolveOptions(command *cobra.Command, options generateOptions, defaults config.GenerateConfiguration) generateOptions {
	resolved := options
	flagSet := command.Flags()

	if !flagSet.Changed(typeFlagName) && len(defaults.Types) > 0 {
		resolved.projectTypes = defaults.Types
	}
	if !flagSet.Changed(extensionFlagName) && len(defaults.Extensions) > 0 {
		resolved.extraExtensions = defaults.Extensions
	}
	if !flagSet.Changed(outputFlagName) && defaults.Output != "" {
		resolved.outputPath = defaults.Output
	}
	if !flagSet.Changed(nameFlagName) && defaults.Name != "" {
		resolved.projectName = defaults.Name
	}
	if !flagSet.Changed(noTreeFlagName) && defaults.Tree != nil {
		resolved.disableTree = !*defaults.Tree
	}
	if !flagSet.Changed(noDefaultExcludesFlagName) && defaults.DefaultExcludes != nil {
		resolved.noDefaultExcludes = !*defaults.DefaultExcludes
	}
	if !flagSet.Changed(tokensFlagName) && defaults.Tokens.Enabled != nil {
		resolved.tokensEnabled = *defaults.Tokens.Enabled
	}
	if !flagSet.Changed(modelFlagName) && defaults.Tokens.Model != "" {
		resolved.tokenizerModel = defaults.Tokens.Model
	}
	if !flagSet.Changed(copyFlagName) && defaults.Clipboard != nil {
		resolved.copyToClipboard = *defaults.Clipboard
	}
	return resolved
}

// resolveExtensionSet builds the extension allow-list from the requested
// project type groups and the additional extensions. At least one source must
// contribute, otherwise the selection is rejected before traversal.
func resolveExtensionSet(typeRegistry *registry.Registry, options generateOptions) (map[string]struct{}, error) {
	if len(options.projectTypes) == 0 && len(options.extraExtensions) == 0 {
		return nil, fmt.Errorf(missingSelectionMessage)
	}

	extensionSet, collectError := typeRegistry.CollectExtensions(options.projectTypes)
	if collectError != nil {
		return nil, collectError
	}
	for _, extension := range options.extraExtensions {
		normalizedExtension := utils.NormalizeExtension(extension)
		if normalizedExtension != "" {
			extensionSet[normalizedExtension] = struct{}{}
		}
	}
	return extensionSet, nil
}

// resolveExcludePatterns combines the built-in exclude list (unless disabled),
// configured excludes, and flag excludes, deduplicated in that order.
func resolveExcludePatterns(typeRegistry *registry.Registry, options generateOptions, defaults config.GenerateConfiguration) []string {
	var excludePatterns []string
	if !options.noDefaultExcludes {
		excludePatterns = append(excludePatterns, typeRegistry.DefaultExcludes()...)
	}
	excludePatterns = append(excludePatterns, defaults.Excludes...)
	excludePatterns = append(excludePatterns, options.excludePatterns...)
	return utils.DeduplicatePatterns(excludePatterns)
}

// pluralizeFiles returns the unit word for a file count.
func pluralizeFiles(count int) string {
	if count == 1 {
		return "file"
	}
	return "files"
}
