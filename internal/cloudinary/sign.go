// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// SignUpload computes the upload signature over the given parameter set:
// SHA-1 hex of "k1=v1&k2=v2..." with keys sorted ascending and empty values
// skipped, followed by the API secret. The store rejects an upload whose
// submitted parameters are not byte-identical to the signed ones, so callers
// must pass exactly what the browser will send.
func (c *Client) SignUpload(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.config.APISecret))
	return hex.EncodeToString(sum[:])
}
