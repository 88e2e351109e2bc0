package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution",
			input: "http_port: {{.PORT}}",
			env:   map[string]string{"PORT": "8081"},
			want:  "http_port: 8081",
		},
		{
			name:  "literal ${VAR} is not expanded",
			input: "creator: ${AREA}",
			env:   map[string]string{"AREA": "Cultura"},
			want:  "creator: ${AREA}",
		},
		{
			name:  "missing variable expands to empty",
			input: "creator: {{.MISSING_VAR}}",
			want:  "creator: ",
		},
		{
			name:  "value containing equals sign",
			input: "title_prefix: {{.PREFIX}}",
			env:   map[string]string{"PREFIX": "a=b"},
			want:  "title_prefix: a=b",
		},
		{
			name:  "malformed template passes through",
			input: "creator: {{.AREA",
			want:  "creator: {{.AREA",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestExpandEnvThenParse(t *testing.T) {
	t.Setenv("BRIEFD_CREATOR", "Área de Eventos: Sede Central")
	data := ExpandEnv([]byte("document:\n  creator: \"{{.BRIEFD_CREATOR}}\"\n"))

	var cfg BriefdYAMLConfig
	assert.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "Área de Eventos: Sede Central", cfg.Document.Creator)
}
