// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		arg0     string
		expected string
	}{
		{name: "Relative path", arg0: "./certinfo", expected: "certinfo"},
		{name: "Just filename", arg0: "certinfo", expected: "certinfo"},
		{name: "Absolute Unix path", arg0: "/usr/local/bin/certinfo", expected: "certinfo"},
		{name: "Windows path", arg0: `C:\Program Files\certinfo\certinfo.exe`, expected: "certinfo"},
		{name: "Mixed separators", arg0: `C:/tools\bin/certinfo.exe`, expected: "certinfo"},
		{name: "Other extension kept", arg0: "/opt/certinfo.bin", expected: "certinfo.bin"},
		{name: "Empty", arg0: "", expected: FallbackName},
		{name: "Trailing separator", arg0: "/usr/bin/", expected: FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, executableName(tt.arg0))
		})
	}
}

func TestGetExecutableName(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = nil
	assert.Equal(t, FallbackName, GetExecutableName())

	os.Args = []string{"/usr/bin/certinfo", "serve"}
	assert.Equal(t, "certinfo", GetExecutableName())
}
