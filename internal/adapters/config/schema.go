package config

import (
	"gopkg.in/yaml.v3"
)

// Lessfile represents the structure of the lessco.yaml configuration file.
type Lessfile struct {
	SiteRoot         string        `yaml:"siteRoot"`
	AdminRoot        string        `yaml:"adminRoot"`
	TmpPath          string        `yaml:"tmpPath"`
	SiteBase         string        `yaml:"siteBase"`
	AdminBase        string        `yaml:"adminBase"`
	SiteURL          string        `yaml:"siteURL"`
	Mode             ModeValue     `yaml:"mode"`
	Site             ClientDTO     `yaml:"site"`
	Admin            ClientDTO     `yaml:"admin"`
	Force            bool          `yaml:"force"`
	PreserveComments bool          `yaml:"preserveComments"`
	Compress         bool          `yaml:"compress"`
	ClientSide       ClientSideDTO `yaml:"clientSide"`
	Engine           EngineDTO     `yaml:"engine"`
}

// ClientDTO holds the per-client file overrides.
type ClientDTO struct {
	LessFile string `yaml:"lessFile"`
	CSSFile  string `yaml:"cssFile"`
}

// ClientSideDTO configures in-browser compilation.
type ClientSideDTO struct {
	Enabled  bool           `yaml:"enabled"`
	MediaDir string         `yaml:"mediaDir"`
	Options  map[string]any `yaml:"options"`
}

// EngineDTO configures the lessc binary.
type EngineDTO struct {
	Binary string   `yaml:"binary"`
	Args   []string `yaml:"args"`
}

// ModeValue keeps the raw scalar of the mode key so both names and the
// numeric form are accepted.
type ModeValue struct {
	Raw string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *ModeValue) UnmarshalYAML(node *yaml.Node) error {
	m.Raw = node.Value
	return nil
}
