package application

import (
	"strconv"
	"strings"
)

// ValueKind enumerates the types a frontmatter value can carry.
type ValueKind int

const (
	StringValue ValueKind = iota
	BoolValue
	IntValue
	ListValue
)

// Value is the loosely-typed result of parsing one frontmatter entry. It
// exists only between the parser and the normalizer; domain types never see
// it.
type Value struct {
	kind ValueKind
	str  string
	b    bool
	n    int
	list []string
}

func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the value and whether it is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == StringValue }

// AsBool returns the value and whether it is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == BoolValue }

// AsInt returns the value and whether it is an integer.
func (v Value) AsInt() (int, bool) { return v.n, v.kind == IntValue }

// AsList returns the value and whether it is a string list.
func (v Value) AsList() ([]string, bool) { return v.list, v.kind == ListValue }

// Frontmatter is the parsed header of one source document.
type Frontmatter map[string]Value

// Str looks up key and returns its string value, if present and a string.
func (fm Frontmatter) Str(key string) (string, bool) {
	v, ok := fm[key]
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Boolean looks up key and returns its boolean value, if present and a bool.
func (fm Frontmatter) Boolean(key string) (bool, bool) {
	v, ok := fm[key]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// Integer looks up key and returns its integer value, if present and an int.
func (fm Frontmatter) Integer(key string) (int, bool) {
	v, ok := fm[key]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Strings looks up key and returns its list value, if present and a list.
func (fm Frontmatter) Strings(key string) ([]string, bool) {
	v, ok := fm[key]
	if !ok {
		return nil, false
	}
	return v.AsList()
}

// ParseFrontmatter splits raw document text into its frontmatter header and
// body. A header exists only when the first line is exactly "---" and a
// later line closes the block; anything else degrades to an empty header
// with the whole input as body. Malformed header lines are skipped, never
// reported. That leniency is intentional: one sloppy line must not cost the
// document its metadata.
func ParseFrontmatter(raw string) (Frontmatter, string) {
	fm := Frontmatter{}
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || trimCR(lines[0]) != "---" {
		return fm, raw
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if trimCR(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		// Unclosed header; treat the opening line as ordinary body text.
		return fm, raw
	}

	for _, line := range lines[1:end] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, rest, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fm[key] = parseValue(strings.TrimSpace(rest))
	}

	return fm, strings.Join(lines[end+1:], "\n")
}

// parseValue applies the coercion rules for a single header value: bracketed
// values become string lists, then quotes are stripped, then the exact tokens
// true/false become booleans, then all-digit values become integers.
// Everything else stays a string.
func parseValue(raw string) Value {
	if len(raw) >= 2 && strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		return Value{kind: ListValue, list: parseList(raw)}
	}

	s := stripQuotes(raw)
	switch s {
	case "true":
		return Value{kind: BoolValue, b: true}
	case "false":
		return Value{kind: BoolValue, b: false}
	}

	if s != "" && isDigits(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return Value{kind: IntValue, n: n}
		}
	}

	return Value{kind: StringValue, str: s}
}

// parseList splits a bracketed value into its elements. Elements are trimmed
// and unquoted; elements that end up empty are dropped.
func parseList(raw string) []string {
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return []string{}
	}

	parts := strings.Split(inner, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := stripQuotes(strings.TrimSpace(part))
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// stripQuotes removes one matching pair of surrounding single or double
// quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}
