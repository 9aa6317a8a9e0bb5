package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eugenenazirov/envinfo/internal/mask"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "user and password",
			input:    "user:secret@host:5432/db",
			expected: "user:****@host:5432/db",
		},
		{
			name:     "no at sign",
			input:    "host:5432/db",
			expected: "host:5432/db",
		},
		{
			name:     "no credentials separator",
			input:    "user@host:5432/db",
			expected: "user@host:5432/db",
		},
		{
			name:     "empty password",
			input:    "user:@host",
			expected: "user:****@host",
		},
		{
			name:     "scheme prefix is treated as the user part",
			input:    "postgres://user:secret@db:5432/app",
			expected: "postgres:****@db:5432/app",
		},
		{
			name:     "host part kept verbatim after first at sign",
			input:    "user:p@ss@host",
			expected: "user:****@ss@host",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mask.URL(tt.input))
		})
	}
}

func TestToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "twelve characters", input: "ABCD1234EFGH", expected: "ABCD...EFGH"},
		{name: "short", input: "short", expected: "****"},
		{name: "exactly eight", input: "12345678", expected: "****"},
		{name: "nine", input: "123456789", expected: "1234...6789"},
		{name: "multibyte", input: "ключ-секрет", expected: "ключ...крет"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mask.Token(tt.input))
		})
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, mask.NotConfigured, mask.Display("", false, mask.Token))
	assert.Equal(t, mask.NotConfigured, mask.Display("", true, mask.Token))
	assert.Equal(t, "ABCD...EFGH", mask.Display("ABCD1234EFGH", true, mask.Token))
	assert.Equal(t, "user:****@host", mask.Display("user:pw@host", true, mask.URL))
}

func TestMaskingDoesNotMutateInput(t *testing.T) {
	secret := "user:secret@host"
	_ = mask.URL(secret)
	_ = mask.Token(secret)
	assert.Equal(t, "user:secret@host", secret)
}
