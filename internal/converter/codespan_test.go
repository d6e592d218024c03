package converter

import (
	"strings"
	"testing"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		reference bool
		want      string
		spans     []CodeSpan
	}{
		{
			name:  "fenced with language",
			input: "```py\nprint(1)\n```",
			want:  `<div class="pre pre--multiline language-py">%s1</div>`,
			spans: []CodeSpan{{Ordinal: 1, Content: "print(1)", LanguageClass: "language-py"}},
		},
		{
			name:  "fenced keeps indentation",
			input: "```\nif x:\n  y\n```",
			want:  `<div class="pre pre--multiline nohighlight">%s1</div>`,
			spans: []CodeSpan{{Ordinal: 1, Content: "if x:<br>&nbsp;&nbsp;y", LanguageClass: "nohighlight"}},
		},
		{
			name:  "single line fence is all code",
			input: "```js```",
			want:  `<div class="pre pre--multiline nohighlight">%s1</div>`,
			spans: []CodeSpan{{Ordinal: 1, Content: "js", LanguageClass: "nohighlight"}},
		},
		{
			name:  "double backticks may hold one",
			input: "``a`b``",
			want:  `<code class="inline">%s1</code>`,
			spans: []CodeSpan{{Ordinal: 1, Content: "a`b", Inline: true}},
		},
		{
			name:  "two single spans",
			input: "`x` and `y`",
			want:  `<span class="pre pre-inline">%s1</span> and <span class="pre pre-inline">%s2</span>`,
			spans: []CodeSpan{
				{Ordinal: 1, Content: "x", Inline: true},
				{Ordinal: 2, Content: "y", Inline: true},
			},
		},
		{
			name:      "reference wraps fences inline",
			input:     "```js\nx()\n```",
			reference: true,
			want:      `<span class="pre pre-inline">%s1</span>`,
			spans:     []CodeSpan{{Ordinal: 1, Content: "x()", LanguageClass: "language-js"}},
		},
		{
			name:  "unterminated backtick",
			input: "a ` b\nc",
			want:  "a ` b\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(tt.input, Options{})
			tr.ExtractCode(tt.reference)
			if got := tr.Content(); got != tt.want {
				t.Errorf("ExtractCode() = %q, want %q", got, tt.want)
			}
			spans := tr.CodeSpans()
			if len(spans) != len(tt.spans) {
				t.Fatalf("CodeSpans() len = %d, want %d", len(spans), len(tt.spans))
			}
			for i := range spans {
				if spans[i] != tt.spans[i] {
					t.Errorf("CodeSpans()[%d] = %+v, want %+v", i, spans[i], tt.spans[i])
				}
			}
		})
	}
}

// TestExtractCode_Opaque 测试代码内容不受后续 markdown 处理影响
func TestExtractCode_Opaque(t *testing.T) {
	inputs := []string{
		"`**not bold**`",
		"``__u__ ~~s~~``",
		"```\n# not a heading\n- not a list\n```",
		"`||x||` `*y*`",
	}
	for _, input := range inputs {
		tr := New(input, Options{})
		tr.ExtractCode(false)
		tr.Markdown(false)
		tr.RestoreCode()
		for _, span := range tr.CodeSpans() {
			if !strings.Contains(tr.Content(), span.Content) {
				t.Errorf("input %q: output %q lost code %q", input, tr.Content(), span.Content)
			}
		}
	}
}
