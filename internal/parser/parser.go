package parser

import (
	"bytes"
	"fmt"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// StandardOptions goldmark 扩展配置，用于频道简介等非消息文本
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, linkify, tasklists)
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
			highlighting.WithFormatOptions(),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// md 复用的 goldmark 实例；未开启 WithUnsafe，原始 HTML 不会透传
var md = goldmark.New(StandardOptions...)

// Render 将 CommonMark 文本渲染为 HTML
func Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render commonmark: %w", err)
	}
	return buf.String(), nil
}
