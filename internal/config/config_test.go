package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"style-checker/internal/rules"
)

func collect(cfg *Config) []RuleSetting {
	var out []RuleSetting
	for s := range cfg.Options() {
		out = append(out, s)
	}
	return out
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, SourceDefault, cfg.Source)
	assert.Equal(t, []RuleSetting{
		{ID: "lineLength", Threshold: rules.Int(80)},
		{ID: "fileLength", Threshold: rules.Int(250)},
		{ID: "requireHeaderComment", Threshold: rules.Bool(true)},
	}, collect(cfg))
}

func TestDefault_FreshInstances(t *testing.T) {
	a := Default()
	a.Add("extra", rules.Int(1))
	a.Settings[0].Threshold = rules.Int(1)

	b := Default()
	assert.Len(t, b.Settings, 3)
	assert.Equal(t, rules.Int(80), b.Settings[0].Threshold)
}

func TestSetDefault_Resets(t *testing.T) {
	cfg := &Config{Source: SourceFile}
	cfg.Add("custom", rules.Int(3))

	cfg.SetDefault()

	assert.Equal(t, SourceDefault, cfg.Source)
	assert.Len(t, cfg.Settings, 3)
}

func TestOptions_Restartable(t *testing.T) {
	cfg := Default()

	first := collect(cfg)
	second := collect(cfg)
	assert.Equal(t, first, second)

	var ids []string
	for s := range cfg.Options() {
		ids = append(ids, s.ID)
		break
	}
	assert.Equal(t, []string{"lineLength"}, ids)
}

func TestOptions_Empty(t *testing.T) {
	assert.Empty(t, collect(&Config{}))
}

func TestReadFromFile_AlwaysFails(t *testing.T) {
	cfg, err := ReadFromFile("rules.yaml")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Contains(t, err.Error(), "rules.yaml")
}

func TestLoad_NoPath(t *testing.T) {
	var warn bytes.Buffer

	cfg := Load("", &warn)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, warn.String())
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	var warn bytes.Buffer

	cfg := Load("my-rules.yaml", &warn)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "could not read my-rules.yaml. Falling back to default.\n", warn.String())
}
