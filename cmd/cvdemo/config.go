package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"collectionview"
)

// Config controls the demo's data set and layout geometry. Every field has
// a sensible default; a TOML file overrides selectively.
type Config struct {
	Data DataConfig `toml:"data"`
	Grid GridConfig `toml:"grid"`
	List ListConfig `toml:"list"`
}

type DataConfig struct {
	Sections        int `toml:"sections"`
	ItemsPerSection int `toml:"items_per_section"`

	// LockEvery marks every n-th item non-selectable, to exercise
	// selection skipping. Zero disables locking.
	LockEvery int `toml:"lock_every"`
}

type GridConfig struct {
	ItemWidth    int `toml:"item_width"`
	ItemHeight   int `toml:"item_height"`
	SpacingX     int `toml:"spacing_x"`
	SpacingY     int `toml:"spacing_y"`
	Inset        int `toml:"inset"`
	HeaderHeight int `toml:"header_height"`
	FooterHeight int `toml:"footer_height"`
}

type ListConfig struct {
	RowHeight    int `toml:"row_height"`
	HeaderHeight int `toml:"header_height"`
	FooterHeight int `toml:"footer_height"`
}

func DefaultConfig() Config {
	return Config{
		Data: DataConfig{Sections: 3, ItemsPerSection: 24, LockEvery: 7},
		Grid: GridConfig{
			ItemWidth:    14,
			ItemHeight:   3,
			SpacingX:     1,
			SpacingY:     1,
			Inset:        1,
			HeaderHeight: 1,
		},
		List: ListConfig{RowHeight: 1, HeaderHeight: 1},
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Data.Sections < 1 || cfg.Data.ItemsPerSection < 0 {
		return Config{}, fmt.Errorf("config %s: data section counts must be positive", path)
	}
	return cfg, nil
}

func (c Config) GridLayout() *collectionview.GridLayout {
	g := collectionview.NewGridLayout(collectionview.Size{
		Width:  c.Grid.ItemWidth,
		Height: c.Grid.ItemHeight,
	})
	g.Spacing = collectionview.Size{Width: c.Grid.SpacingX, Height: c.Grid.SpacingY}
	g.SectionInset = collectionview.EdgeAll(c.Grid.Inset)
	g.HeaderHeight = c.Grid.HeaderHeight
	g.FooterHeight = c.Grid.FooterHeight
	return g
}

func (c Config) ListLayout() *collectionview.ListLayout {
	l := collectionview.NewListLayout(c.List.RowHeight)
	l.HeaderHeight = c.List.HeaderHeight
	l.FooterHeight = c.List.FooterHeight
	return l
}
