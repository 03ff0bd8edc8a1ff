package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-c", "--config"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"separate value", []string{"-c", "conf.json", "-a", "localhost"}, []string{"-c", "conf.json"}},
		{"equals form", []string{"--config=alt.json", "-a", "localhost"}, []string{"--config=alt.json"}},
		{"order preserved", []string{"--config=first.json", "-c", "second.json", "-x", "1"}, []string{"--config=first.json", "-c", "second.json"}},
		{"unknown flags dropped", []string{"-x", "1", "--y=2", "positional"}, []string{}},
		{"flag at end without value", []string{"-c"}, []string{"-c"}},
		{"next token is a flag", []string{"-c", "-notvalue"}, []string{"-c"}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, allowed)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "a.json"}, "a.json"},
		{"long", []string{"-config", "b.json", "-a", ":8080"}, "b.json"},
		{"equals", []string{"-config=c.json"}, "c.json"},
		{"absent", []string{"-a", ":8080"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
