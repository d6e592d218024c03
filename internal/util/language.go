package util

import "strings"

// CodeLanguages lists the code block language identifiers that get a
// highlight class. Order matters only for documentation; LanguageClass picks
// the longest identifier that prefixes the token.
var CodeLanguages = []string{
	"asciidoc",
	"autohotkey",
	"bash",
	"coffeescript",
	"cpp",
	"cs",
	"css",
	"diff",
	"fix",
	"glsl",
	"ini",
	"json",
	"md",
	"ml",
	"prolog",
	"py",
	"tex",
	"xl",
	"xml",
	"js",
	"html",
}

// NoHighlight is the class used for code blocks without a known language.
const NoHighlight = "nohighlight"

// MatchLanguage returns the allow-listed identifier that prefixes token,
// compared case-insensitively. When several identifiers match ("cs" and
// "css"), the longest wins. It returns "" when nothing matches.
func MatchLanguage(token string) string {
	lower := strings.ToLower(strings.TrimSpace(token))
	if lower == "" {
		return ""
	}
	best := ""
	for _, lang := range CodeLanguages {
		if strings.HasPrefix(lower, lang) && len(lang) > len(best) {
			best = lang
		}
	}
	return best
}

// LanguageClass returns the CSS class for a code block language identifier.
func LanguageClass(lang string) string {
	if lang == "" {
		return NoHighlight
	}
	return "language-" + lang
}
