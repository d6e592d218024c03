package chatlog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/riverfjs/chatlog-go/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig
type Styles = types.Styles

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Use DefaultConfig().Clone() before modifying it.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// LoadConfig reads a YAML render configuration. Keys that are absent keep
// their default values.
func LoadConfig(r io.Reader) (*RenderConfig, error) {
	cfg := types.DefaultRenderConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode render config: %w", err)
	}
	if cfg.Styles == nil {
		cfg.Styles = types.DefaultStyles()
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML render configuration from path.
func LoadConfigFile(path string) (*RenderConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open render config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
