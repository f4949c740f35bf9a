// Package mdfmt formats markdown documents: it tags unlabeled code fences
// with a detected language and collapses excessive blank lines.
package mdfmt

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Languages is the closed set of tags the detector can return.
var Languages = []string{"json", "python", "javascript", "bash", "sql", "text"}

var (
	rePythonDef    = regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(`)
	rePythonImport = regexp.MustCompile(`(?m)^\s*(?:import|from)\s+\w+`)
	rePythonPrint  = regexp.MustCompile(`(?m)^\s*print\s*\(`)
	reJSDecl       = regexp.MustCompile(`\b(?:function\s+\w+\s*\(|const\s+\w+\s*=)`)
	reJSExpr       = regexp.MustCompile(`=>|console\.(?:log|error)`)
	reShebang      = regexp.MustCompile(`(?m)^#!.*\b(?:bash|sh)\b`)
	reShellWord    = regexp.MustCompile(`\b(?:if|then|fi|for|in|do|done)\b`)
	reSQLKeyword   = regexp.MustCompile(`(?i)\b(?:SELECT|INSERT|UPDATE|DELETE|CREATE)\s+`)
)

// DetectLanguage returns a best-guess language tag for a code snippet.
// The rules are checked in a fixed order and the first match wins; the
// order is deliberate (a JSON-looking body that fails to parse must still
// get a chance at the later rules). Ambiguous snippets will be
// misclassified and that is accepted behavior.
func DetectLanguage(code string) string {
	s := strings.TrimSpace(code)

	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		if json.Valid([]byte(s)) {
			return "json"
		}
	}

	if rePythonDef.MatchString(s) || rePythonImport.MatchString(s) || rePythonPrint.MatchString(s) {
		return "python"
	}

	if reJSDecl.MatchString(s) || reJSExpr.MatchString(s) {
		return "javascript"
	}

	if reShebang.MatchString(s) || reShellWord.MatchString(s) {
		return "bash"
	}

	if reSQLKeyword.MatchString(s) {
		return "sql"
	}

	return "text"
}
