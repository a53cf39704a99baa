package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "plain", input: "Holiday Cut"},
		{name: "surrounding spaces", input: "  Trailer  "},
		{name: "empty", input: "", wantErr: "title cannot be empty"},
		{name: "only spaces", input: "   ", wantErr: "title cannot be empty"},
		{name: "too long", input: strings.Repeat("x", maxTitleLength+1), wantErr: "title is longer than 120 characters"},
		{name: "multibyte at limit", input: strings.Repeat("é", maxTitleLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTitle(tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNewFlow_UsesTheme(t *testing.T) {
	f := NewFlow()
	require.NotNil(t, f.theme)
}
