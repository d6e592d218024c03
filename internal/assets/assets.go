package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxImageSize 单张图片的最大下载字节数
const maxImageSize = 8 << 20

// ErrNotImage 下载的数据不是可识别的图片
var ErrNotImage = errors.New("downloaded data is not a valid image")

// Fetcher 下载远程图片并转换为 data URI
type Fetcher struct {
	client *http.Client
}

// NewFetcher 创建 Fetcher，client 为 nil 时使用带超时的默认客户端
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{
			Timeout: 10 * time.Second,
		}
	}
	return &Fetcher{client: client}
}

// DataURI 下载 url 指向的图片并编码为 data: URI
func (f *Fetcher) DataURI(ctx context.Context, url string) (string, error) {
	data, err := DownloadImage(ctx, url, f.client)
	if err != nil {
		return "", err
	}
	if !IsImage(data) {
		return "", fmt.Errorf("%s: %w", url, ErrNotImage)
	}
	mime := http.DetectContentType(data.Bytes())
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data.Bytes())), nil
}

// DownloadImage 下载图片
func DownloadImage(ctx context.Context, url string, client *http.Client) (*bytes.Buffer, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(resp.Body, maxImageSize)); err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return &buf, nil
}

// IsImage 通过魔术字节检查数据是否为 PNG、JPEG、GIF 或 WebP 图片
func IsImage(data *bytes.Buffer) bool {
	if data.Len() < 8 {
		return false
	}

	header := data.Bytes()
	if len(header) > 12 {
		header = header[:12]
	}

	// PNG: 89 50 4E 47 0D 0A 1A 0A
	if header[0] == 0x89 && header[1] == 0x50 && header[2] == 0x4E && header[3] == 0x47 {
		return true
	}

	// JPEG: FF D8 FF
	if header[0] == 0xFF && header[1] == 0xD8 && header[2] == 0xFF {
		return true
	}

	// WebP: 52 49 46 46 ... 57 45 42 50
	if len(header) >= 12 && string(header[0:4]) == "RIFF" && string(header[8:12]) == "WEBP" {
		return true
	}

	// GIF: 47 49 46 38
	if header[0] == 0x47 && header[1] == 0x49 && header[2] == 0x46 && header[3] == 0x38 {
		return true
	}

	return false
}
