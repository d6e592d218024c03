package converter

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const topListStyle = " padding-left: 20px; margin: 0 !important;"

func TestListsToHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "flat bullets",
			input: "- a\n- b",
			want: []string{
				`<ul class="markup" style="list-style-type: disc;` + topListStyle + `">`,
				`<li class="markup">a</li>`,
				`<li class="markup">b</li>`,
				`</ul>`,
			},
		},
		{
			name:  "nested bullets",
			input: "- a\n  - b\n- c",
			want: []string{
				`<ul class="markup" style="list-style-type: disc;` + topListStyle + `">`,
				`<li class="markup">a</li>`,
				`<ul class="markup" style="list-style-type: circle;">`,
				`<li class="markup">b</li>`,
				`</ul>`,
				`<li class="markup">c</li>`,
				`</ul>`,
			},
		},
		{
			name:  "ordered with start",
			input: "3. x\n4. y",
			want: []string{
				`<ol class="markup" style="list-style-type: decimal;` + topListStyle + `" start="3">`,
				`<li class="markup">x</li>`,
				`<li class="markup">y</li>`,
				`</ol>`,
			},
		},
		{
			name:  "kind switch at same level",
			input: "- a\n1. b",
			want: []string{
				`<ul class="markup" style="list-style-type: disc;` + topListStyle + `">`,
				`<li class="markup">a</li>`,
				`</ul>`,
				`<ol class="markup" style="list-style-type: decimal;` + topListStyle + `">`,
				`<li class="markup">b</li>`,
				`</ol>`,
			},
		},
		{
			name:  "text closes lists",
			input: "* a\n    * b\ntext",
			want: []string{
				`<ul class="markup" style="list-style-type: disc;` + topListStyle + `">`,
				`<li class="markup">a</li>`,
				`<ul class="markup" style="list-style-type: circle;">`,
				`<li class="markup">b</li>`,
				`</ul>`,
				`</ul>`,
				`text`,
			},
		},
		{
			name:  "dedent below first level",
			input: "  - a\n- b",
			want: []string{
				`<ul class="markup" style="list-style-type: disc;` + topListStyle + `">`,
				`<li class="markup">a</li>`,
				`</ul>`,
				`<ul class="markup" style="list-style-type: disc;` + topListStyle + `">`,
				`<li class="markup">b</li>`,
				`</ul>`,
			},
		},
		{
			name:  "dash without space is text",
			input: "-a",
			want:  []string{"-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New("", Options{})
			got := tr.ListsToHTML(tt.input)
			if want := strings.Join(tt.want, "\n"); got != want {
				t.Errorf("ListsToHTML() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

// tagBalance 用 html tokenizer 检查 ul/ol/li 是否成对且正确嵌套
func tagBalance(t *testing.T, fragment string) {
	t.Helper()
	z := html.NewTokenizer(strings.NewReader(fragment))
	var stack []string
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				t.Fatalf("tokenize: %v", z.Err())
			}
			if len(stack) != 0 {
				t.Errorf("unclosed tags %v in %q", stack, fragment)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "ul", "ol", "li":
				stack = append(stack, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "ul", "ol", "li":
				if len(stack) == 0 || stack[len(stack)-1] != string(name) {
					t.Fatalf("unexpected </%s> with open %v in %q", name, stack, fragment)
				}
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// TestListsToHTML_Balanced 测试任意缩进组合下标签都成对出现
func TestListsToHTML_Balanced(t *testing.T) {
	inputs := []string{
		"- a\n  - b\n    - c\n      - d\n- e",
		"- a\n      - deep\n  - mid\n- top",
		"1. a\n   - b\n   2. c\n- d",
		"  - a\n- b\n    1. c\ntext\n- d",
		"- a\n\n- b",
		"* a\n  * b\n  1. c\n    - d\n2. e",
	}
	for _, input := range inputs {
		tr := New("", Options{})
		tagBalance(t, tr.ListsToHTML(input))
	}
}

func TestListsToMarkdown(t *testing.T) {
	tr := New("", Options{})
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"flat", tr.ListsToHTML("- a\n- b"), "- a\n- b"},
		{"nested", tr.ListsToHTML("- a\n  - b\n- c"), "- a\n  - b\n- c"},
		{"ordered comes back as dashes", tr.ListsToHTML("1. a\n2. b"), "- a\n- b"},
		{"br separated", `<ul class="markup"><br><li class="markup">a</li><br></ul>`, "- a"},
		{"no list", "just text<br>more", "just text<br>more"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ListsToMarkdown(tt.input); got != tt.want {
				t.Errorf("ListsToMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}
