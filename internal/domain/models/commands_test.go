package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		variant Variant
		want    CommandType
	}{
		{"1", VariantExtended, CommandRegister},
		{" 2 ", VariantExtended, CommandList},
		{"3", VariantClassic, CommandSearch},
		{"4", VariantClassic, CommandAverages},
		{"5", VariantExtended, CommandSituation},
		{"5", VariantClassic, CommandUnknown},
		{"0", VariantClassic, CommandExit},
		{"", VariantExtended, CommandUnknown},
		{"10", VariantExtended, CommandUnknown},
		{"sair", VariantExtended, CommandUnknown},
	}

	for _, tt := range tests {
		cmd := ParseCommand(tt.line, tt.variant)
		assert.Equal(t, tt.want, cmd.Type, "line %q variant %s", tt.line, tt.variant)
		assert.Equal(t, tt.line, cmd.Raw)
	}
}
