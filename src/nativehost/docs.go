// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package nativehost speaks the browser native-messaging protocol on behalf
// of the extension: every message is a 32-bit little-endian length followed
// by that many bytes of UTF-8 JSON.
//
// Incoming messages carry browser events:
//
//	{"type":"navigated","tabId":3,"url":"https://example.com/"}
//	{"type":"activated","tabId":3,"url":"https://example.com/"}
//	{"type":"closed","tabId":3}
//	{"type":"popup","tabId":3}
//
// Outgoing messages carry what to render:
//
//	{"type":"badge","tabId":3,"badge":{"text":"DV","color":"#FF9800"}}
//	{"type":"popup","tabId":3,"popup":{"title":"...","titleColor":"...","message":"..."}}
package nativehost
