package chatlog

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// TestRender_BoldAndCode 测试粗体与代码同时出现
func TestRender_BoldAndCode(t *testing.T) {
	html, err := RenderMessage(context.Background(), "**bold** and `code`")
	if err != nil {
		t.Fatalf("RenderMessage() error = %v", err)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("RenderMessage() = %q, should contain <strong>bold</strong>", html)
	}
	if !strings.Contains(html, `<span class="pre pre-inline">code</span>`) {
		t.Errorf("RenderMessage() = %q, should wrap code", html)
	}
	outside := strings.Replace(html, `<span class="pre pre-inline">code</span>`, "", 1)
	if strings.Contains(outside, "**") || strings.Contains(outside, "`") {
		t.Errorf("RenderMessage() = %q, markers left outside the code element", html)
	}
}

// TestRender_URLWithPeriod 测试句末 URL 的句号在链接之外
func TestRender_URLWithPeriod(t *testing.T) {
	html, err := RenderMessage(context.Background(), "Docs live at https://example.com/docs.")
	if err != nil {
		t.Fatalf("RenderMessage() error = %v", err)
	}
	want := `Docs live at <a href="https://example.com/docs" style="color: #00a8fc;">https://example.com/docs</a>.`
	if html != want {
		t.Errorf("RenderMessage() = %q, want %q", html, want)
	}
}

func TestRender_EscapesRawHTML(t *testing.T) {
	html, err := RenderMessage(context.Background(), "<script>alert('x')</script> & **b**")
	if err != nil {
		t.Fatalf("RenderMessage() error = %v", err)
	}
	want := "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt; &amp; <strong>b</strong>"
	if html != want {
		t.Errorf("RenderMessage() = %q, want %q", html, want)
	}
}

func TestRender_Flows(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		flow  Flow
		input string
		want  string
	}{
		{FlowMessage, "# Hi", `<h1 style="font-weight: 700; font-size: 1.5rem; margin: 0.25em 0; line-height: 1.25;">Hi</h1>`},
		{FlowReference, "# Hi\n**there**", "Hi <strong>there</strong>"},
		{FlowEmoji, "**x**", "**x**"},
		{FlowLinkEmbed, "[t](https://example.com)", `<a href="https://example.com" style="color: #00a8fc;">t</a>`},
		{FlowEmbed, "~~old~~", `<span class="markdown-strikethrough">old</span>`},
		{FlowSpecialEmbed, "`https://example.com`", `<span class="pre pre-inline"><a href="https://example.com" style="color: #00a8fc;">https://example.com</a></span>`},
	}
	for _, tt := range tests {
		t.Run(tt.flow.String(), func(t *testing.T) {
			got, err := Render(ctx, tt.flow, EscapeText(tt.input), WithEmojiResolver(PassthroughResolver))
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(context.Background(), Flow(42), "x"); !errors.Is(err, ErrUnknownFlow) {
		t.Errorf("Render() error = %v, want ErrUnknownFlow", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, FlowMessage, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

// TestRender_Options 测试渲染选项
func TestRender_Options(t *testing.T) {
	ctx := context.Background()

	cfg := DefaultConfig().Clone()
	cfg.LinkColor = "#ff0000"
	html, err := Render(ctx, FlowMessage, "https://example.com", WithConfig(cfg))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(html, `style="color: #ff0000;"`) {
		t.Errorf("Render() = %q, should use the configured link color", html)
	}

	html, err = Render(ctx, FlowMessage, EscapeText("see GIF-PLACEHOLDER-0"),
		WithPlaceholders(map[string]string{"GIF-PLACEHOLDER-0": `<img src="a.gif">`}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if html != `see <img src="a.gif">` {
		t.Errorf("Render() = %q, want the placeholder replaced", html)
	}

	shout := EmojiResolverFunc(func(ctx context.Context, text string) (string, error) {
		return strings.ToUpper(text), nil
	})
	html, err = Render(ctx, FlowEmoji, "quiet", WithEmojiResolver(shout))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if html != "QUIET" {
		t.Errorf("Render() = %q, want QUIET", html)
	}
}

func TestFlow_String(t *testing.T) {
	for _, f := range []Flow{FlowMessage, FlowEmbed, FlowSpecialEmbed, FlowReference, FlowEmoji, FlowLinkEmbed} {
		parsed, err := ParseFlow(f.String())
		if err != nil || parsed != f {
			t.Errorf("ParseFlow(%q) = %v, %v", f.String(), parsed, err)
		}
	}
	if Flow(-1).String() != "unknown" {
		t.Errorf("Flow(-1).String() = %q", Flow(-1).String())
	}
	if _, err := ParseFlow("nope"); !errors.Is(err, ErrUnknownFlow) {
		t.Errorf("ParseFlow() error = %v, want ErrUnknownFlow", err)
	}
}

// TestToMarkdown_RoundTrip 测试渲染再还原
func TestToMarkdown_RoundTrip(t *testing.T) {
	inputs := []string{
		"**bold** *italic* __under__ ~~strike~~",
		"# Title\nbody ||hidden||",
		"> quoted\n> twice",
		"-# fine print",
		"100% done",
	}
	for _, input := range inputs {
		html, err := RenderMessage(context.Background(), input)
		if err != nil {
			t.Fatalf("RenderMessage() error = %v", err)
		}
		if got := ToMarkdown(html); got != input {
			t.Errorf("ToMarkdown(RenderMessage(%q)) = %q", input, got)
		}
	}
}

func TestRenderCommonMark(t *testing.T) {
	html, err := RenderCommonMark("Welcome to **#general**, see https://example.com")
	if err != nil {
		t.Fatalf("RenderCommonMark() error = %v", err)
	}
	for _, want := range []string{"<strong>#general</strong>", `<a href="https://example.com">`} {
		if !strings.Contains(html, want) {
			t.Errorf("RenderCommonMark() = %q, should contain %q", html, want)
		}
	}
}
