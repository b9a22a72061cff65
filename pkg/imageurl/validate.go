package imageurl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// A Result reports reachability of an image reference.
// Reason is only set when Valid is false.
type Result struct {
	Valid  bool
	Reason string
}

// A Validator checks whether image references actually resolve to image
// content. Validation is informational tooling, never part of the main
// shopping flow, so it reports results instead of returning errors.
type Validator struct {
	client *http.Client
}

func NewValidator(client *http.Client) Validator {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return Validator{client}
}

// Validate determines reachability of ref: a HEAD request requiring a 2xx
// status and image/* content type for HTTP URLs, a decode plus image
// magic-number check for Base64 and data URLs, and "unsupported format"
// for anything else.
func (v Validator) Validate(ctx context.Context, ref string) Result {
	const op = "Validator.Validate"
	log := slog.With("op", op)

	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return v.validateHTTP(ctx, ref, log)
	case strings.HasPrefix(ref, "data:"):
		return validateDataURL(ref)
	default:
		raw, ok := decodeBase64(ref)
		if !ok {
			return Result{Reason: "unsupported format"}
		}
		return validatePayload(raw)
	}
}

// Check adapts Validate to an error-returning contract for preloaders.
func (v Validator) Check(ctx context.Context, ref string) error {
	res := v.Validate(ctx, ref)
	if !res.Valid {
		return &checkError{res.Reason}
	}
	return nil
}

type checkError struct{ reason string }

func (e *checkError) Error() string { return e.reason }

func (v Validator) validateHTTP(ctx context.Context, ref string, log *slog.Logger) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, ref, nil)
	if err != nil {
		return Result{Reason: "invalid URL"}
	}

	resp, err := v.client.Do(req)
	if err != nil {
		log.Debug("image request failed", "url", ref, "err", err)
		return Result{Reason: "unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Reason: "non-2xx status"}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return Result{Reason: "not an image content type"}
	}
	return Result{Valid: true}
}

func validateDataURL(ref string) Result {
	_, payload, ok := strings.Cut(ref, ",")
	if !ok {
		return Result{Reason: "malformed data URL"}
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Result{Reason: "undecodable payload"}
	}
	return validatePayload(raw)
}

// validatePayload requires the decoded bytes to carry a known image
// signature: decodability alone would accept any text blob.
func validatePayload(raw []byte) Result {
	if _, ok := sniffMIME(raw); !ok {
		return Result{Reason: "not an image"}
	}
	return Result{Valid: true}
}
