package gateway

import (
	"regexp"
	"strings"
)

type ArticleDraft struct {
	Title    string
	Slug     string
	Category string
	Excerpt  string
	Content  string
}

var sectionLabel = regexp.MustCompile(`(?i)^\s*(?:#+\s*)?\**\s*(TITLE|SLUG|CATEGORY|EXCERPT|CONTENT)\s*\**\s*:\s*\**\s*(.*)$`)

// ParseArticleDraft reads the TITLE/SLUG/CATEGORY/EXCERPT/CONTENT sections of a
// generated article. Missing or empty sections get defaults derived from
// keyword or from the raw text itself.
func ParseArticleDraft(raw, keyword string) ArticleDraft {
	sections := map[string]*strings.Builder{}
	var current *strings.Builder

	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if m := sectionLabel.FindStringSubmatch(line); m != nil {
			name := strings.ToUpper(m[1])
			if _, seen := sections[name]; !seen {
				current = &strings.Builder{}
				sections[name] = current
				current.WriteString(m[2])
				continue
			}
		}
		if current != nil {
			current.WriteString("\n")
			current.WriteString(line)
		}
	}

	get := func(name string) string {
		if b, ok := sections[name]; ok {
			return strings.TrimSpace(b.String())
		}
		return ""
	}
	firstLine := func(s string) string {
		s, _, _ = strings.Cut(s, "\n")
		return strings.TrimSpace(strings.Trim(s, "*[]\""))
	}

	d := ArticleDraft{
		Title:    firstLine(get("TITLE")),
		Slug:     Slugify(firstLine(get("SLUG"))),
		Category: firstLine(get("CATEGORY")),
		Excerpt:  get("EXCERPT"),
		Content:  get("CONTENT"),
	}

	if d.Title == "" {
		d.Title = "Bài viết về " + keyword
	}
	if d.Slug == "" {
		d.Slug = Slugify(keyword)
	}
	if d.Category == "" {
		d.Category = "Technology"
	}
	if d.Excerpt == "" {
		d.Excerpt = digest(raw, 200)
	}
	if d.Content == "" {
		d.Content = strings.TrimSpace(raw)
	}
	return d
}

var vietnameseFold = strings.NewReplacer(
	"đ", "d", "Đ", "d",
)

// Slugify lowercases s, folds Vietnamese diacritics and joins words with dashes.
func Slugify(s string) string {
	s = vietnameseFold.Replace(strings.ToLower(strings.TrimSpace(s)))

	var b strings.Builder
	dash := false
	for _, r := range s {
		r = foldRune(r)
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

var foldTable = map[rune]rune{}

func init() {
	groups := map[rune]string{
		'a': "àáạảãâầấậẩẫăằắặẳẵ",
		'e': "èéẹẻẽêềếệểễ",
		'i': "ìíịỉĩ",
		'o': "òóọỏõôồốộổỗơờớợởỡ",
		'u': "ùúụủũưừứựửữ",
		'y': "ỳýỵỷỹ",
	}
	for base, variants := range groups {
		for _, r := range variants {
			foldTable[r] = base
		}
	}
}

func foldRune(r rune) rune {
	if f, ok := foldTable[r]; ok {
		return f
	}
	return r
}
