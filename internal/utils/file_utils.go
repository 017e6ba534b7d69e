package utils

import (
	"path"
	"strings"
)

var languageByExtension = map[string]string{
	"go":    "go",
	"js":    "javascript",
	"mjs":   "javascript",
	"cjs":   "javascript",
	"ts":    "typescript",
	"jsx":   "react",
	"tsx":   "tsx",
	"py":    "python",
	"java":  "java",
	"c":     "c",
	"cpp":   "cpp",
	"cc":    "cpp",
	"cxx":   "cpp",
	"h":     "c",
	"hpp":   "cpp",
	"cs":    "csharp",
	"php":   "php",
	"rb":    "ruby",
	"rs":    "rust",
	"swift": "swift",
	"kt":    "kotlin",
	"scala": "scala",
	"sh":    "bash",
	"bash":  "bash",
	"zsh":   "bash",
	"fish":  "fish",
	"ps1":   "powershell",
	"sql":   "sql",
	"html":  "html",
	"htm":   "html",
	"css":   "css",
	"scss":  "scss",
	"sass":  "sass",
	"less":  "less",
	"xml":   "xml",
	"json":  "json",
	"yaml":  "yaml",
	"yml":   "yaml",
	"toml":  "toml",
	"ini":   "ini",
	"conf":  "ini",
	"cfg":   "ini",
	"md":    "markdown",
	"mk":    "makefile",
	"proto": "protobuf",
	"tf":    "terraform",
}

var languageByBasename = map[string]string{
	"dockerfile":  "docker",
	"makefile":    "makefile",
	"gnumakefile": "makefile",
	"go.mod":      "go",
}

// DetectLanguageFromFilePath maps a file path to a lexer name, looking at
// well-known base names first and the extension second. It returns "" when
// nothing matches.
func DetectLanguageFromFilePath(filePath string) string {
	base := strings.ToLower(path.Base(strings.ReplaceAll(filePath, `\`, "/")))
	if language, ok := languageByBasename[base]; ok {
		return language
	}

	dot := strings.LastIndex(base, ".")
	if dot < 0 {
		return ""
	}
	return languageByExtension[base[dot+1:]]
}
