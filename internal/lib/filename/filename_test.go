package filename_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"crackKeeper/internal/lib/filename"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantName      string
		wantExtension string
	}{
		{
			name:          "Standard Filename",
			input:         "photo.jpg",
			wantName:      "photo",
			wantExtension: ".jpg",
		},
		{
			name:          "Multiple Dots",
			input:         "my.crack.photo.png",
			wantName:      "my.crack.photo",
			wantExtension: ".png",
		},
		{
			name:          "No Extension",
			input:         "readme",
			wantName:      "readme",
			wantExtension: "",
		},
		{
			name:          "Dotfile",
			input:         ".gitignore",
			wantName:      "",
			wantExtension: ".gitignore",
		},
		{
			name:          "Empty String",
			input:         "",
			wantName:      "",
			wantExtension: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := filename.Decompose(tt.input)

			require.Equal(t, tt.wantName, parts.Name)
			require.Equal(t, tt.wantExtension, parts.Extension)
		})
	}
}

func TestDecomposeReassembles(t *testing.T) {
	inputs := []string{
		"photo.jpg",
		"my.crack.photo.png",
		"readme",
		".gitignore",
		"IMG_2024-03-05 10.12.33.heic",
	}

	for _, input := range inputs {
		parts := filename.Decompose(input)
		require.Equal(t, input, parts.Name+parts.Extension)
	}
}
