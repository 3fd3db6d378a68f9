package config

import (
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/ozacod/helperprep/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty dir and switches into a fresh working dir.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))

	work := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	require.NoError(t, os.Chdir(work))

	return home
}

func writeGlobal(t *testing.T, content string) {
	t.Helper()
	path, err := GetConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, "com.lowdata.helper", p.HelperID)
	assert.Equal(t, "com.tonalphoto.tech.LowData", p.AppID)
	assert.Equal(t, "Developer ID Application: Konrad Michels (85QL287QYW)", p.SigningIdentity)
	assert.Equal(t, "LowDataHelper/main.swift", p.Source)
	assert.Equal(t, "build", p.BuildDir)
	assert.Equal(t, "swiftc", p.Compiler)
	assert.Equal(t, "codesign", p.Signer)
	assert.NoError(t, p.Validate())
}

func TestLoadWithoutFiles(t *testing.T) {
	isolate(t)

	p, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadProjectFile(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(DefaultProjectFile, []byte(`
helper_id: com.example.helper
build_dir: out/helper
team_id: ABCDE12345
`), 0644))

	p, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, "com.example.helper", p.HelperID)
	assert.Equal(t, "out/helper", p.BuildDir)
	assert.Equal(t, "Developer ID Application: Konrad Michels (ABCDE12345)", p.SigningIdentity)
	assert.Equal(t, "swiftc", p.Compiler, "unset fields keep their defaults")
	assert.Equal(t, filepath.Join("out/helper", "com.example.helper"), p.ArtifactPath())
}

func TestLoadGlobalThenProject(t *testing.T) {
	isolate(t)

	writeGlobal(t, "developer: Jane Doe\nteam_id: TEAM000001\n")

	p, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, "Developer ID Application: Jane Doe (TEAM000001)", p.SigningIdentity)

	require.NoError(t, os.WriteFile("custom.yaml", []byte(`signing_identity: "Apple Development: Jane Doe (XYZ)"`), 0644))
	p, err = Load("custom.yaml", true)
	require.NoError(t, err)
	assert.Equal(t, "Apple Development: Jane Doe (XYZ)", p.SigningIdentity)
}

func TestLoadRequiredFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load("missing.yaml", true)
	require.Error(t, err)
	assert.True(t, perrors.IsConfigError(err))
	assert.Contains(t, err.Error(), "missing.yaml not found")
}

func TestLoadInvalidYAML(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(DefaultProjectFile, []byte("helper_id: [unclosed"), 0644))

	_, err := Load("", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadInvalidGlobal(t *testing.T) {
	isolate(t)

	writeGlobal(t, "team_id: [")

	_, err := Load("", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Project)
		field  string
	}{
		{"Helper id without dots", func(p *Project) { p.HelperID = "helper" }, "helper_id"},
		{"Helper id with slash", func(p *Project) { p.HelperID = "com.example/../x" }, "helper_id"},
		{"Empty signer", func(p *Project) { p.Signer = "" }, "signer"},
		{"Blank identity", func(p *Project) { p.SigningIdentity = "  " }, "signing_identity"},
		{"Absolute build dir", func(p *Project) { p.BuildDir = "/tmp/build" }, "build_dir"},
		{"Parent build dir", func(p *Project) { p.BuildDir = "../build" }, "build_dir"},
		{"Current dir as build dir", func(p *Project) { p.BuildDir = "." }, "build_dir"},
		{"Escaping build dir", func(p *Project) { p.BuildDir = "build/../../x" }, "build_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)

			err := p.Validate()
			require.Error(t, err)

			var cfgErr *perrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestValidateAcceptsNestedBuildDir(t *testing.T) {
	p := Default()
	p.BuildDir = "build/../out"
	assert.NoError(t, p.Validate())
}

func TestBundlePath(t *testing.T) {
	p := Default()
	assert.Equal(t, "LowData.app/Contents/Library/LaunchServices/com.lowdata.helper", p.BundlePath())
}
