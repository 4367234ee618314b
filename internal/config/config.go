// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lorikeet/reef/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`
	Editor  EditorConfig  `toml:"editor"`
	Browser BrowserConfig `toml:"browser"`
	Preview PreviewConfig `toml:"preview"`
	Theme   ThemeConfig   `toml:"theme"`
}

// EditorConfig holds embedded-editor settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	SystemClipboard bool `toml:"system_clipboard"`
}

// BrowserConfig holds file-browser settings.
type BrowserConfig struct {
	ShowHidden    bool   `toml:"show_hidden"`
	SortKey       string `toml:"sort_key"` // name, size, modified, type
	ListScrollOff int    `toml:"list_scroll_off"`
}

// PreviewConfig holds the per-provider truncation limits.
type PreviewConfig struct {
	TextLines     int `toml:"text_lines"`
	TextLineWidth int `toml:"text_line_width"`
	CodeLines     int `toml:"code_lines"`
	DocumentPages int `toml:"document_pages"`
	ImageCols     int `toml:"image_cols"`
	ImageRows     int `toml:"image_rows"`
}

// ThemeConfig names the theme file to load.
type ThemeConfig struct {
	File string `toml:"file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			SystemClipboard: DefaultSystemClipboard,
		},
		Browser: BrowserConfig{
			ShowHidden:    false,
			SortKey:       "name",
			ListScrollOff: DefaultListScrollOff,
		},
		Preview: PreviewConfig{
			TextLines:     DefaultPreviewTextLines,
			TextLineWidth: DefaultPreviewTextWidth,
			CodeLines:     DefaultPreviewCodeLines,
			DocumentPages: DefaultPreviewDocPages,
			ImageCols:     DefaultPreviewImageCols,
			ImageRows:     DefaultPreviewImageRows,
		},
	}
}

// loadFromFile merges a TOML file over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("config file '%s': unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Browser.ListScrollOff < 0 {
		c.Browser.ListScrollOff = defaults.Browser.ListScrollOff
	}
	switch c.Browser.SortKey {
	case "name", "size", "modified", "type":
	default:
		c.Browser.SortKey = defaults.Browser.SortKey
	}
	if c.Preview.TextLines <= 0 {
		c.Preview.TextLines = defaults.Preview.TextLines
	}
	if c.Preview.TextLineWidth <= 0 {
		c.Preview.TextLineWidth = defaults.Preview.TextLineWidth
	}
	if c.Preview.CodeLines <= 0 {
		c.Preview.CodeLines = defaults.Preview.CodeLines
	}
	if c.Preview.DocumentPages <= 0 {
		c.Preview.DocumentPages = defaults.Preview.DocumentPages
	}
	if c.Preview.ImageCols <= 0 {
		c.Preview.ImageCols = defaults.Preview.ImageCols
	}
	if c.Preview.ImageRows <= 0 {
		c.Preview.ImageRows = defaults.Preview.ImageRows
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig layers defaults, the config file and flag overrides, then
// validates. Call once from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
		}
	}
	if effectivePath != "" {
		if err := loadFromFile(effectivePath, cfg); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, nil
}
