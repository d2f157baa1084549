package tsc

import (
	"path"
	"strings"

	"github.com/src-d/enry/v2"
)

// ScriptKind tells the compiler which dialect a source file is written in.
// Values match the engine's ScriptKind enumeration.
type ScriptKind int

// Script kinds.
const (
	ScriptKindUnknown ScriptKind = 0
	ScriptKindJS      ScriptKind = 1
	ScriptKindJSX     ScriptKind = 2
	ScriptKindTS      ScriptKind = 3
	ScriptKindTSX     ScriptKind = 4
)

func (k ScriptKind) String() string {
	switch k {
	case ScriptKindJS:
		return "JS"
	case ScriptKindJSX:
		return "JSX"
	case ScriptKindTS:
		return "TS"
	case ScriptKindTSX:
		return "TSX"
	default:
		return "Unknown"
	}
}

// DetectScriptKind classifies a file from its name and content. JSX dialects
// are recognized by extension; anything enry does not call JavaScript is
// treated as TypeScript.
func DetectScriptKind(name string, content []byte) ScriptKind {
	base := path.Base(name)

	switch strings.ToLower(path.Ext(base)) {
	case ".tsx":
		return ScriptKindTSX
	case ".jsx":
		return ScriptKindJSX
	}

	switch enry.GetLanguage(base, content) {
	case "JavaScript":
		return ScriptKindJS
	case "TSX":
		return ScriptKindTSX
	default:
		return ScriptKindTS
	}
}

// ParseScriptKind maps a user-facing language name to a script kind.
func ParseScriptKind(lang string) (ScriptKind, bool) {
	switch strings.ToLower(lang) {
	case "ts", "typescript":
		return ScriptKindTS, true
	case "tsx":
		return ScriptKindTSX, true
	case "js", "javascript":
		return ScriptKindJS, true
	case "jsx":
		return ScriptKindJSX, true
	case "":
		return ScriptKindUnknown, true
	default:
		return ScriptKindUnknown, false
	}
}
