// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helpers for the command line.
//
// GetExecutableName derives the program name shown in usage strings and
// examples, so the help text stays correct whether certificate-info is
// installed as "certinfo", renamed, or launched by a browser through a
// native messaging manifest with an absolute path:
//
//   - Linux/macOS: "/usr/local/bin/certinfo" → "certinfo"
//   - Windows: "C:\Program Files\certinfo\certinfo.exe" → "certinfo"
//   - Fallback: Empty args → [FallbackName]
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
