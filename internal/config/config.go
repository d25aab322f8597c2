// Package config loads planviz configuration from TOML.
//
// Defaults live in code; ~/.planviz/config.toml overrides them when present,
// and an explicit --config path overrides that.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/planviz/planviz/internal/csvio"
)

const (
	// GlobalConfigDir is the name of the global config directory in home.
	GlobalConfigDir = ".planviz"

	// GlobalConfigFileName is the name of the global config file.
	GlobalConfigFileName = "config.toml"
)

// Config is the full planviz configuration.
type Config struct {
	CSV       CSVConfig       `toml:"csv"`
	Gantt     GanttConfig     `toml:"gantt"`
	Milestone MilestoneConfig `toml:"milestone"`
	WBS       WBSConfig       `toml:"wbs"`
	Server    ServerConfig    `toml:"server"`
}

// CSVConfig controls table parsing.
type CSVConfig struct {
	Delimiter    string `toml:"delimiter"`
	DateFormat   string `toml:"date_format"`
	ProjectStart string `toml:"project_start"`
}

// GanttConfig styles the Gantt chart.
type GanttConfig struct {
	Width           float64 `toml:"width"`
	RowHeight       float64 `toml:"row_height"`
	BarHeight       float64 `toml:"bar_height"` // fraction of the row height
	BackgroundAlpha float64 `toml:"background_alpha"`
	MilestoneBG     string  `toml:"milestone_bg"`
	ArrowColor      string  `toml:"arrow_color"`
	ArrowWidth      float64 `toml:"arrow_width"`
	FontSize        float64 `toml:"font_size"`
}

// MilestoneConfig styles the milestone timeline.
type MilestoneConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	MarkerColor   string  `toml:"marker_color"`
	MarkerSize    float64 `toml:"marker_size"`
	LineColor     string  `toml:"line_color"`
	FontSize      float64 `toml:"font_size"`
	TitleFontSize float64 `toml:"title_font_size"`
	LevelSequence []int   `toml:"level_sequence"`
	MaxLabelChars int     `toml:"max_label_chars"`
	MaxLabelLines int     `toml:"max_label_lines"`
}

// WBSConfig styles the work-breakdown-structure diagram.
type WBSConfig struct {
	BoxWidth    float64 `toml:"box_width"`
	BoxHeight   float64 `toml:"box_height"`
	ColumnGap   float64 `toml:"column_gap"`
	LevelGap    float64 `toml:"level_gap"`
	IndentGap   float64 `toml:"indent_gap"`
	Indent      float64 `toml:"indent"`
	SpineOffset float64 `toml:"spine_offset"`
	FontSize    float64 `toml:"font_size"`
	LineColor   string  `toml:"line_color"`
}

// ServerConfig controls the preview server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CSV: CSVConfig{
			Delimiter:    ",",
			ProjectStart: "2026-01-01",
		},
		Gantt: GanttConfig{
			Width:           1600,
			RowHeight:       30,
			BarHeight:       0.6,
			BackgroundAlpha: 0.16,
			MilestoneBG:     "#d3d3d3",
			ArrowColor:      "#000000",
			ArrowWidth:      1,
			FontSize:        11,
		},
		Milestone: MilestoneConfig{
			Width:         1400,
			Height:        460,
			MarkerColor:   "#000000",
			MarkerSize:    9,
			LineColor:     "#666666",
			FontSize:      11,
			TitleFontSize: 17,
			LevelSequence: []int{3, -3, 2, -2, 1, -1},
			MaxLabelChars: 26,
			MaxLabelLines: 3,
		},
		WBS: WBSConfig{
			BoxWidth:    220,
			BoxHeight:   64,
			ColumnGap:   60,
			LevelGap:    26,
			IndentGap:   30,
			Indent:      40,
			SpineOffset: 14,
			FontSize:    12,
			LineColor:   "#1b4332",
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 7433,
		},
	}
}

// Load reads configuration from path, overlaying the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}
	return cfg, nil
}

// LoadGlobal loads ~/.planviz/config.toml, or the defaults if it is absent.
func LoadGlobal() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadGlobalFromDir(homeDir)
}

// LoadGlobalFromDir loads global config using the specified directory as home.
// This is useful for testing.
func LoadGlobalFromDir(homeDir string) (*Config, error) {
	path := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// CSVOptions converts the CSV section into csvio parse options.
func (c *Config) CSVOptions() csvio.Options {
	opts := csvio.Options{DateFormat: c.CSV.DateFormat}
	if c.CSV.Delimiter != "" {
		opts.Delimiter = []rune(c.CSV.Delimiter)[0]
	}
	if c.CSV.ProjectStart != "" {
		if t, err := time.Parse("2006-01-02", c.CSV.ProjectStart); err == nil {
			opts.ProjectStart = t
		}
	}
	return opts
}

// Address returns the host:port the preview server should listen on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
