// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"radhakart/internal/cloudinary"
)

// Upload issues signatures for direct browser-to-store uploads. The API
// secret stays server-side; the browser submits the signed parameter set
// together with the file straight to the media store.
type Upload struct {
	client *cloudinary.Client
}

// NewUpload creates the upload handler group.
func NewUpload(client *cloudinary.Client) *Upload {
	return &Upload{client: client}
}

// signatureResponse is what the browser needs to complete a direct upload.
type signatureResponse struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}

// Signature signs the upload parameter set supplied via query string.
// The signed parameters must match what the browser later submits byte for
// byte, so the context value is percent-decoded here: the query-string
// transport re-encoded it on the way in.
func (h *Upload) Signature(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ts := time.Now().Unix()

	params := map[string]string{
		"timestamp": strconv.FormatInt(ts, 10),
		"type":      "upload",
	}
	if t := q.Get("type"); t != "" {
		params["type"] = t
	}
	if folder := q.Get("folder"); folder != "" {
		params["folder"] = folder
	}
	if publicID := q.Get("publicId"); publicID != "" {
		params["public_id"] = publicID
	}
	if cx := q.Get("context"); cx != "" {
		decoded, err := url.QueryUnescape(cx)
		if err != nil {
			slog.Error("decode upload context failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to sign upload")
			return
		}
		params["context"] = decoded
	}

	writeJSON(w, http.StatusOK, signatureResponse{
		Signature: h.client.SignUpload(params),
		Timestamp: ts,
		APIKey:    h.client.APIKey(),
		CloudName: h.client.CloudName(),
	})
}
