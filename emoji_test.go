package chatlog

import (
	"context"
	"testing"
)

const testTwemoji = "https://twemoji.example/svg"

func TestTwemojiResolver(t *testing.T) {
	r := NewTwemojiResolver(testTwemoji + "/")
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii untouched", "plain :) text", "plain :) text"},
		{"cjk untouched", "你好", "你好"},
		{
			"single emoji",
			"hi 😀",
			`hi <img class="emoji emoji--small" src="` + testTwemoji + `/1f600.svg" alt="😀">`,
		},
		{
			"variation selector dropped",
			"❤️",
			`<img class="emoji emoji--small" src="` + testTwemoji + `/2764.svg" alt="❤️">`,
		},
		{
			"zwj sequence keeps fe0f",
			"🏳️‍🌈",
			`<img class="emoji emoji--small" src="` + testTwemoji + `/1f3f3-fe0f-200d-1f308.svg" alt="🏳️‍🌈">`,
		},
		{
			"flag",
			"🇯🇵",
			`<img class="emoji emoji--small" src="` + testTwemoji + `/1f1ef-1f1f5.svg" alt="🇯🇵">`,
		},
		{
			"keycap",
			"#️⃣",
			`<img class="emoji emoji--small" src="` + testTwemoji + `/23-20e3.svg" alt="#️⃣">`,
		},
		{"technical symbol untouched", "⌀ 5mm", "⌀ 5mm"},
		{"text-default symbol untouched", "© 2024 ⬅ back", "© 2024 ⬅ back"},
		{
			"text-default symbol with fe0f",
			"©️",
			`<img class="emoji emoji--small" src="` + testTwemoji + `/a9.svg" alt="©️">`,
		},
		{
			"emoji presentation in technical block",
			"⌚⭐",
			`<img class="emoji emoji--small" src="` + testTwemoji + `/231a.svg" alt="⌚">` +
				`<img class="emoji emoji--small" src="` + testTwemoji + `/2b50.svg" alt="⭐">`,
		},
		{
			"skin tone",
			"👍🏽!",
			`<img class="emoji emoji--small" src="` + testTwemoji + `/1f44d-1f3fd.svg" alt="👍🏽">!`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestTwemojiResolver_InMessage 测试默认 resolver 接入消息渲染
func TestTwemojiResolver_InMessage(t *testing.T) {
	cfg := DefaultConfig().Clone()
	cfg.TwemojiBase = testTwemoji
	html, err := RenderMessage(context.Background(), "**wow** 🎉 <:party:42>", WithConfig(cfg))
	if err != nil {
		t.Fatalf("RenderMessage() error = %v", err)
	}
	want := `<strong>wow</strong> <img class="emoji emoji--small" src="` + testTwemoji + `/1f389.svg" alt="🎉"> ` +
		`<img class="emoji emoji--small" src="https://cdn.discordapp.com/emojis/42.png" alt=":party:">`
	if html != want {
		t.Errorf("RenderMessage() = %q, want %q", html, want)
	}
}

func TestTwemojiResolver_DefaultBase(t *testing.T) {
	r := NewTwemojiResolver("")
	got, err := r.Resolve(context.Background(), "⭐")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := `<img class="emoji emoji--small" src="` + DefaultConfig().TwemojiBase + `/2b50.svg" alt="⭐">`
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}
