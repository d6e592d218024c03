package chatlog

import "github.com/riverfjs/chatlog-go/internal/parser"

// RenderCommonMark renders standard CommonMark with GitHub extensions and
// highlighted code blocks. It is meant for text that is not written in the
// chat dialect, such as channel topics and README-style guild descriptions.
// Raw HTML in src is omitted.
func RenderCommonMark(src string) (string, error) {
	return parser.Render(src)
}
