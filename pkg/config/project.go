package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	perrors "github.com/ozacod/helperprep/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultProjectFile is read from the working directory when --config is not given
const DefaultProjectFile = "helperprep.yaml"

// Built-in defaults for the LowData helper
const (
	DefaultHelperID  = "com.lowdata.helper"
	DefaultAppID     = "com.tonalphoto.tech.LowData"
	DefaultAppName   = "LowData"
	DefaultTeamID    = "85QL287QYW"
	DefaultDeveloper = "Konrad Michels"
	DefaultSource    = "LowDataHelper/main.swift"
	DefaultBuildDir  = "build"
	DefaultCompiler  = "swiftc"
	DefaultSigner    = "codesign"
)

var helperIDRe = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

// Project describes the helper being prepared
type Project struct {
	HelperID        string `yaml:"helper_id"`
	AppID           string `yaml:"app_id"`
	AppName         string `yaml:"app_name"`
	TeamID          string `yaml:"team_id"`
	Developer       string `yaml:"developer"`
	SigningIdentity string `yaml:"signing_identity"`
	Source          string `yaml:"source"`
	BuildDir        string `yaml:"build_dir"`
	Compiler        string `yaml:"compiler"`
	Signer          string `yaml:"signer"`
}

func builtin() *Project {
	return &Project{
		HelperID:  DefaultHelperID,
		AppID:     DefaultAppID,
		AppName:   DefaultAppName,
		TeamID:    DefaultTeamID,
		Developer: DefaultDeveloper,
		Source:    DefaultSource,
		BuildDir:  DefaultBuildDir,
		Compiler:  DefaultCompiler,
		Signer:    DefaultSigner,
	}
}

// Default returns the built-in project settings
func Default() *Project {
	p := builtin()
	p.setDefaults()
	return p
}

// Load resolves the project configuration: built-in defaults, then the
// global config, then the project file at path. When required is false a
// missing project file is not an error.
func Load(path string, required bool) (*Project, error) {
	p := builtin()

	global, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	global.apply(p)

	if path == "" {
		path = DefaultProjectFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !required:
	case os.IsNotExist(err):
		return nil, perrors.NewConfigError("config", fmt.Sprintf("%s not found", path), "pass an existing file to --config or omit the flag")
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	p.setDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// setDefaults derives the signing identity when it was not given explicitly
func (p *Project) setDefaults() {
	if p.SigningIdentity == "" && p.Developer != "" && p.TeamID != "" {
		p.SigningIdentity = fmt.Sprintf("Developer ID Application: %s (%s)", p.Developer, p.TeamID)
	}
}

// Validate checks that every field is usable before any step runs
func (p *Project) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"helper_id", p.HelperID},
		{"app_name", p.AppName},
		{"signing_identity", p.SigningIdentity},
		{"source", p.Source},
		{"build_dir", p.BuildDir},
		{"compiler", p.Compiler},
		{"signer", p.Signer},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return perrors.NewConfigError(r.field, "must not be empty", "")
		}
	}

	if !helperIDRe.MatchString(p.HelperID) {
		return perrors.NewConfigError("helper_id", fmt.Sprintf("%q is not a reverse-DNS identifier", p.HelperID), "use a value like com.example.helper")
	}

	if filepath.IsAbs(p.BuildDir) {
		return perrors.NewConfigError("build_dir", "must be relative to the working directory", "")
	}
	clean := filepath.Clean(p.BuildDir)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return perrors.NewConfigError("build_dir", fmt.Sprintf("%q escapes the working directory", p.BuildDir), "use a subdirectory such as build")
	}

	return nil
}

// ArtifactPath returns where the compiled helper is written
func (p *Project) ArtifactPath() string {
	return filepath.Join(p.BuildDir, p.HelperID)
}

// BundlePath returns the helper's location inside the app bundle
func (p *Project) BundlePath() string {
	return p.AppName + ".app/Contents/Library/LaunchServices/" + p.HelperID
}
