package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quill/pkg/core"
)

// ConfigFileName is the optional per-workspace configuration file.
const ConfigFileName = ".quill.yaml"

// FileConfig mirrors the on-disk configuration. Every field is
// optional; unset fields leave the programmatic Config untouched.
type FileConfig struct {
	PreferredLineEnding string `yaml:"preferred_line_ending"`
	AutoGuessEncoding   *bool  `yaml:"auto_guess_encoding"`
	KeyFile             string `yaml:"key_file"`
	AssetSuffix         string `yaml:"asset_suffix"`
	MaxFileSize         int64  `yaml:"max_file_size"`
	ReadOnly            *bool  `yaml:"read_only"`
}

// LoadFileConfig reads dir/.quill.yaml. A missing file is not an
// error; it returns (nil, nil).
func LoadFileConfig(dir string) (*FileConfig, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	switch fc.PreferredLineEnding {
	case "", string(core.LineEndingLF), string(core.LineEndingCRLF):
	default:
		return nil, fmt.Errorf("%s: invalid preferred_line_ending %q", path, fc.PreferredLineEnding)
	}

	return &fc, nil
}

// Apply merges the file configuration into cfg. File values override
// defaults, except KeyFile, where an explicit programmatic value wins.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc == nil {
		return
	}
	if fc.PreferredLineEnding != "" {
		cfg.PreferredLineEnding = core.LineEnding(fc.PreferredLineEnding)
	}
	if fc.AutoGuessEncoding != nil {
		cfg.AutoGuessEncoding = *fc.AutoGuessEncoding
	}
	if fc.KeyFile != "" && cfg.KeyFile == "" {
		cfg.KeyFile = fc.KeyFile
	}
	if fc.AssetSuffix != "" {
		cfg.AssetSuffix = fc.AssetSuffix
	}
	if fc.MaxFileSize > 0 {
		cfg.MaxFileSize = fc.MaxFileSize
	}
	if fc.ReadOnly != nil {
		cfg.ReadOnly = *fc.ReadOnly
	}
}
