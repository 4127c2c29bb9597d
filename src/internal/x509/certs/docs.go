// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs decodes [X.509] certificate files for offline classification.
// It accepts [PEM] bundles, raw DER and DER sequences, and [PKCS7] containers,
// and turns every certificate found into a [certinfo.Record]. The first
// certificate of a file is treated as the leaf.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
