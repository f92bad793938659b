// Package registry defines the read-only tables that drive file discovery and
// syntax tagging: named project-type groups, the default exclude list, and the
// extension to highlighting-language mapping. A Registry is constructed once
// at process start and handed to the collector and the document assembler so
// the core packages stay free of hidden global state.
package registry

import (
	"fmt"
	"strings"

	"github.com/temirov/code2md/internal/utils"
)

// ProjectType describes a named group of file extensions usable as shorthand configuration.
type ProjectType struct {
	Name          string
	Description   string
	Extensions    []string
	DefaultSyntax string
}

// UnknownProjectTypeError reports a requested project-type group without a definition.
type UnknownProjectTypeError struct {
	Name string
}

// Error describes the unknown group and names the offending input.
func (unknownTypeError *UnknownProjectTypeError) Error() string {
	return fmt.Sprintf("unknown project type %q; run 'code2md list-types' for available types", unknownTypeError.Name)
}

// projectTypes lists every available project-type group.
var projectTypes = []ProjectType{
	{Name: "python", Description: "Python projects", Extensions: []string{".py", ".pyi", ".pyw"}, DefaultSyntax: "python"},
	{Name: "arduino", Description: "Arduino/C++ projects", Extensions: []string{".ino", ".cpp", ".c", ".h", ".hpp"}, DefaultSyntax: "cpp"},
	{Name: "vue", Description: "Vue.js projects", Extensions: []string{".vue", ".js", ".ts", ".jsx", ".tsx", ".json", ".css", ".scss", ".sass", ".less"}, DefaultSyntax: "vue"},
	{Name: "react", Description: "React.js projects", Extensions: []string{".jsx", ".tsx", ".js", ".ts", ".json", ".css", ".scss", ".sass", ".less"}, DefaultSyntax: "jsx"},
	{Name: "web", Description: "Web projects (HTML/CSS/JS)", Extensions: []string{".html", ".htm", ".css", ".scss", ".sass", ".less", ".js", ".ts"}, DefaultSyntax: "html"},
	{Name: "php", Description: "PHP projects", Extensions: []string{".php", ".phtml", ".php3", ".php4", ".php5", ".phps"}, DefaultSyntax: "php"},
	{Name: "node", Description: "Node.js projects", Extensions: []string{".js", ".ts", ".mjs", ".cjs", ".json"}, DefaultSyntax: "javascript"},
	{Name: "flutter", Description: "Flutter/Dart projects", Extensions: []string{".dart", ".yaml", ".json"}, DefaultSyntax: "dart"},
	{Name: "rust", Description: "Rust projects", Extensions: []string{".rs", ".toml"}, DefaultSyntax: "rust"},
	{Name: "go", Description: "Go projects", Extensions: []string{".go", ".mod", ".sum"}, DefaultSyntax: "go"},
	{Name: "java", Description: "Java projects", Extensions: []string{".java", ".xml", ".gradle", ".properties"}, DefaultSyntax: "java"},
	{Name: "csharp", Description: "C# projects", Extensions: []string{".cs", ".csproj", ".sln", ".xaml"}, DefaultSyntax: "csharp"},
	{Name: "config", Description: "Configuration files", Extensions: []string{".json", ".yaml", ".yml", ".toml", ".ini", ".cfg", ".conf", ".env"}, DefaultSyntax: "yaml"},
	{Name: "docs", Description: "Documentation files", Extensions: []string{".md", ".rst", ".txt", ".adoc"}, DefaultSyntax: "markdown"},
}

// defaultExcludes lists directory and file patterns skipped unless defaults are disabled.
var defaultExcludes = []string{
	// dependency caches
	"node_modules",
	"vendor",
	"packages",
	".pub-cache",
	// python
	"__pycache__",
	".pytest_cache",
	".mypy_cache",
	".ruff_cache",
	"venv",
	".venv",
	"env",
	".env",
	"*.egg-info",
	// build output
	"dist",
	"build",
	"out",
	"target",
	"bin",
	"obj",
	// IDE and editors
	".idea",
	".vscode",
	".vs",
	"*.swp",
	"*.swo",
	// version control
	".git",
	".svn",
	".hg",
	// operating system
	".DS_Store",
	"Thumbs.db",
	// logs and temporary files
	"*.log",
	"logs",
	"tmp",
	"temp",
	".tmp",
	// coverage and test caches
	"coverage",
	".coverage",
	"htmlcov",
	".tox",
	".nox",
}

// syntaxByExtension maps a dot-prefixed lower-case extension to its highlighting language.
var syntaxByExtension = map[string]string{
	".py":         "python",
	".pyi":        "python",
	".pyw":        "python",
	".js":         "javascript",
	".mjs":        "javascript",
	".cjs":        "javascript",
	".ts":         "typescript",
	".jsx":        "jsx",
	".tsx":        "tsx",
	".vue":        "vue",
	".html":       "html",
	".htm":        "html",
	".css":        "css",
	".scss":       "scss",
	".sass":       "sass",
	".less":       "less",
	".json":       "json",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".xml":        "xml",
	".md":         "markdown",
	".rst":        "rst",
	".php":        "php",
	".phtml":      "php",
	".c":          "c",
	".h":          "c",
	".cpp":        "cpp",
	".hpp":        "cpp",
	".ino":        "cpp",
	".rs":         "rust",
	".go":         "go",
	".dart":       "dart",
	".java":       "java",
	".kt":         "kotlin",
	".cs":         "csharp",
	".rb":         "ruby",
	".sh":         "bash",
	".bash":       "bash",
	".zsh":        "zsh",
	".fish":       "fish",
	".ps1":        "powershell",
	".sql":        "sql",
	".graphql":    "graphql",
	".dockerfile": "dockerfile",
	".ini":        "ini",
	".cfg":        "ini",
	".conf":       "ini",
	".env":        "dotenv",
	".gitignore":  "gitignore",
	".gradle":     "gradle",
	".properties": "properties",
	".sum":        "text",
	".mod":        "go",
	".csproj":     "xml",
	".sln":        "text",
	".xaml":       "xml",
	".adoc":       "asciidoc",
	".txt":        "text",
}

// Registry exposes the project-type, exclude, and syntax tables as read-only data.
type Registry struct {
	projectTypes    []ProjectType
	defaultExcludes []string
	syntaxMap       map[string]string
}

// NewDefaultRegistry constructs the registry backed by the built-in tables.
func NewDefaultRegistry() *Registry {
	return &Registry{
		projectTypes:    projectTypes,
		defaultExcludes: defaultExcludes,
		syntaxMap:       syntaxByExtension,
	}
}

// ProjectTypes returns every available project-type group.
func (typeRegistry *Registry) ProjectTypes() []ProjectType {
	return typeRegistry.projectTypes
}

// DefaultExcludes returns the built-in exclude patterns.
func (typeRegistry *Registry) DefaultExcludes() []string {
	return typeRegistry.defaultExcludes
}

// FindProjectType returns the project type with the given name, matched case-insensitively.
func (typeRegistry *Registry) FindProjectType(name string) (ProjectType, bool) {
	loweredName := strings.ToLower(name)
	for _, projectType := range typeRegistry.projectTypes {
		if projectType.Name == loweredName {
			return projectType, true
		}
	}
	return ProjectType{}, false
}

// CollectExtensions gathers the extension set for the requested project-type
// group names. An unknown name fails with UnknownProjectTypeError before any
// traversal work begins.
func (typeRegistry *Registry) CollectExtensions(typeNames []string) (map[string]struct{}, error) {
	extensionSet := make(map[string]struct{})
	for _, typeName := range typeNames {
		projectType, found := typeRegistry.FindProjectType(typeName)
		if !found {
			return nil, &UnknownProjectTypeError{Name: typeName}
		}
		for _, extension := range projectType.Extensions {
			extensionSet[utils.NormalizeExtension(extension)] = struct{}{}
		}
	}
	return extensionSet, nil
}

// SyntaxForFile resolves the highlighting language for a file name. Special
// names without a meaningful extension are checked first, then the final
// dot-delimited suffix is looked up in the extension table. An empty string
// means no highlighting.
func (typeRegistry *Registry) SyntaxForFile(filename string) string {
	loweredName := strings.ToLower(filename)

	switch {
	case loweredName == "dockerfile":
		return "dockerfile"
	case loweredName == "makefile":
		return "makefile"
	case strings.HasPrefix(loweredName, ".env"):
		return "dotenv"
	case loweredName == ".gitignore":
		return "gitignore"
	}

	dotIndex := strings.LastIndex(loweredName, ".")
	if dotIndex < 0 {
		return ""
	}
	if syntaxTag, found := typeRegistry.syntaxMap[loweredName[dotIndex:]]; found {
		return syntaxTag
	}
	return ""
}
