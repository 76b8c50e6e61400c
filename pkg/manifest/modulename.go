package manifest

import (
	"strings"
	"unicode"
)

// javaKeywords are reserved words that cannot appear as a module name
// segment, plus the boolean and null literals.
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extends": true,
	"final": true, "finally": true, "float": true, "for": true,
	"goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true,
	"native": true, "new": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "short": true,
	"static": true, "strictfp": true, "super": true, "switch": true,
	"synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true,
	"while": true, "true": true, "false": true, "null": true,
}

// IsValidModuleName reports whether name is a valid Java module name: one or
// more dot-separated Java identifiers, none of which is a reserved word.
func IsValidModuleName(name string) bool {
	if name == "" {
		return false
	}
	for _, segment := range strings.Split(name, ".") {
		if !isJavaIdentifier(segment) || javaKeywords[segment] {
			return false
		}
	}
	return true
}

func isJavaIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentifierStart(r) {
				return false
			}
			continue
		}
		if !isIdentifierStart(r) && !unicode.IsDigit(r) &&
			!unicode.Is(unicode.Mn, r) && !unicode.Is(unicode.Mc, r) {
			return false
		}
	}
	return true
}

// isIdentifierStart follows Character.isJavaIdentifierStart: letters, letter
// numbers, currency symbols ($, €, ...) and connector punctuation (_).
func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Sc, r) || unicode.Is(unicode.Pc, r)
}
