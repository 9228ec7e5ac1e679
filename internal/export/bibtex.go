// Package export renders extracted publication listings as BibTeX.
package export

import (
	"fmt"
	"strings"

	"github.com/scholarcli/scholar/internal/profile"
)

// ToBibTeX converts one publication to a BibTeX entry with the given
// citation key.
func ToBibTeX(pub profile.Publication, key string) string {
	entryType := determineEntryType(pub)
	var b strings.Builder

	fmt.Fprintf(&b, "@%s{%s,\n", entryType, key)

	if pub.Authors != "" {
		fmt.Fprintf(&b, "  author = {%s},\n", formatAuthors(pub.Authors))
	}
	fmt.Fprintf(&b, "  title = {%s},\n", escapeLatex(pub.Title))

	if pub.Journal != "" {
		fieldName := "journal"
		if entryType == "inproceedings" {
			fieldName = "booktitle"
		}
		fmt.Fprintf(&b, "  %s = {%s},\n", fieldName, escapeLatex(pub.Journal))
	}

	if pub.Year != nil {
		fmt.Fprintf(&b, "  year = {%d},\n", *pub.Year)
	}
	if pub.CitedBy > 0 {
		fmt.Fprintf(&b, "  note = {Cited by %d},\n", pub.CitedBy)
	}

	b.WriteString("}\n")
	return b.String()
}

// ToBibTeXList converts a profile's publications to a BibTeX document.
// Citation keys derive from the first author, year, and title; clashing
// keys get letter suffixes so every entry stays addressable.
func ToBibTeXList(p *profile.ResearcherProfile) string {
	seen := make(map[string]bool)
	entries := make([]string, 0, len(p.Publications))

	for _, pub := range p.Publications {
		key := citationKey(pub)
		if seen[key] {
			// Probe suffixed candidates too: a suffixed key can clash
			// with another entry's natural key.
			for i := 0; ; i++ {
				candidate := fmt.Sprintf("%s%c", key, 'a'+i)
				if !seen[candidate] {
					key = candidate
					break
				}
			}
		}
		seen[key] = true
		entries = append(entries, ToBibTeX(pub, key))
	}

	return strings.Join(entries, "\n")
}

// citationKey builds a key like "doe2020neural" from the first author's
// last token, the year, and the first significant title word.
func citationKey(pub profile.Publication) string {
	var parts []string

	if first := firstAuthor(pub.Authors); first != "" {
		tokens := strings.Fields(first)
		parts = append(parts, keyToken(tokens[len(tokens)-1]))
	}
	if pub.Year != nil {
		parts = append(parts, fmt.Sprintf("%d", *pub.Year))
	}
	for _, word := range strings.Fields(pub.Title) {
		if token := keyToken(word); len(token) > 3 {
			parts = append(parts, token)
			break
		}
	}

	key := strings.Join(parts, "")
	if key == "" {
		key = "untitled"
	}
	return key
}

// firstAuthor returns the first name in a comma-joined author string.
func firstAuthor(authors string) string {
	name, _, _ := strings.Cut(authors, ",")
	return strings.TrimSpace(name)
}

// keyToken lower-cases a word and strips everything but letters and
// digits, keeping citation keys safe for any BibTeX consumer.
func keyToken(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, s)
}

// determineEntryType returns the BibTeX entry type for a publication.
func determineEntryType(pub profile.Publication) string {
	venue := strings.ToLower(pub.Journal)

	if strings.Contains(venue, "proceedings") ||
		strings.Contains(venue, "conference") ||
		strings.Contains(venue, "workshop") ||
		strings.Contains(venue, "symposium") {
		return "inproceedings"
	}

	return "article"
}

// formatAuthors rewrites a comma-joined author string in BibTeX style:
// "J Doe, A Smith" becomes "J Doe and A Smith". Truncation ellipses
// from the listing are dropped.
func formatAuthors(authors string) string {
	parts := strings.Split(authors, ",")
	formatted := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" || name == "..." || name == "…" {
			continue
		}
		formatted = append(formatted, escapeLatex(name))
	}
	return strings.Join(formatted, " and ")
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// & must come first so later escapes don't double up
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
