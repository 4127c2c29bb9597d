// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// FallbackName is used when the process was started without argv[0].
const FallbackName = "certinfo"

// GetExecutableName returns the base name of os.Args[0] without a ".exe" suffix.
// Both '/' and '\' are treated as separators, so Windows paths resolve the
// same way on every platform.
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return FallbackName
	}
	return executableName(os.Args[0])
}

func executableName(arg0 string) string {
	name := arg0
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".exe")
	if name == "" {
		return FallbackName
	}
	return name
}
