package tsc

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// SyntaxKind is the symbolic kind of a node or token.
type SyntaxKind int

// KindFromCode resolves an engine discriminant. An unknown code means the
// table and the loaded compiler disagree on versions.
func KindFromCode(code int) (SyntaxKind, error) {
	if code < 0 || code >= int(kindCount) {
		return KindUnknown, fmt.Errorf("%w: %d (table generated for TypeScript %s)", ErrUnrecognizedKind, code, TypeScriptVersion)
	}

	return SyntaxKind(code), nil
}

// KindByName returns the kind with the given symbolic name.
func KindByName(name string) (SyntaxKind, bool) {
	kind, ok := kindsByName()[name]

	return kind, ok
}

var kindsByName = sync.OnceValue(func() map[string]SyntaxKind {
	byName := make(map[string]SyntaxKind, len(kindNames))
	for code, name := range kindNames {
		byName[name] = SyntaxKind(code)
	}

	return byName
})

// Code returns the engine discriminant.
func (k SyntaxKind) Code() int { return int(k) }

func (k SyntaxKind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("SyntaxKind(%d)", int(k))
	}

	return kindNames[k]
}

// MarshalText encodes the kind by its symbolic name.
func (k SyntaxKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a symbolic kind name.
func (k *SyntaxKind) UnmarshalText(text []byte) error {
	kind, ok := KindByName(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnrecognizedKind, text)
	}

	*k = kind

	return nil
}

// IsLiteral reports whether the kind's symbolic name denotes a literal.
func (k SyntaxKind) IsLiteral() bool {
	return strings.Contains(k.String(), "Literal")
}

// IsTrivia reports whether the kind is whitespace, a newline, or a comment.
func (k SyntaxKind) IsTrivia() bool {
	return k >= KindSingleLineCommentTrivia && k <= KindConflictMarkerTrivia
}

// IsComment reports whether the kind is a single- or multi-line comment.
func (k SyntaxKind) IsComment() bool {
	return k == KindSingleLineCommentTrivia || k == KindMultiLineCommentTrivia
}

// IsKeyword reports whether the kind is a reserved or contextual keyword.
func (k SyntaxKind) IsKeyword() bool {
	return k >= KindBreakKeyword && k <= KindOfKeyword
}

// IsToken reports whether the kind is produced by the scanner rather than the parser.
func (k SyntaxKind) IsToken() bool {
	return k >= KindUnknown && k <= KindOfKeyword
}

// KindLookup resolves a symbolic name through the engine's own enumeration.
type KindLookup func(name string) (code int, ok bool)

// VerifyKindTable checks every entry of the table against the engine.
func VerifyKindTable(lookup KindLookup) error {
	var errs []error

	for code, name := range kindNames {
		engineCode, ok := lookup(name)

		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%w: %s missing from engine", ErrUnrecognizedKind, name))
		case engineCode != code:
			errs = append(errs, fmt.Errorf("%w: %s is %d in engine, %d in table", ErrUnrecognizedKind, name, engineCode, code))
		}
	}

	return errors.Join(errs...)
}
