// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package dataset

import (
	"strconv"
	"strings"
	"unicode"
)

// normalizeName canonicalizes a free-text name field: lowercase, trim,
// then Title Case each word. "nicolas CAGE " and "Nicolas Cage" normalize
// to the same value, which is what the dedupe and genre grouping rely on.
func normalizeName(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// firstGenre reduces a comma-separated genre list to its first tag,
// normalized. "action, thriller, drama" becomes "Action".
func firstGenre(s string) string {
	if idx := strings.IndexByte(s, ','); idx >= 0 {
		s = s[:idx]
	}
	return normalizeName(s)
}

// parseVotes parses a vote count that may carry comma thousands
// separators ("1,234,567"). Returns nil when unparseable.
func parseVotes(s string) *int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// parseFloatField leniently coerces a numeric column. Unparseable values
// become nil and the row is kept.
func parseFloatField(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseIntField leniently coerces an integer column, tolerating values
// written as floats ("123.0").
func parseIntField(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int64(f)
	return &n
}

// parseYear coerces the Year column; a year of 0 marks the row invalid.
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Some exports write years as floats.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// containsActor reports whether the cast list mentions the actor,
// case-insensitively.
func containsActor(cast, actor string) bool {
	return strings.Contains(strings.ToLower(cast), strings.ToLower(actor))
}
