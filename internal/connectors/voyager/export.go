package voyager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// exportRequestID identifies the save-to-document server action.
const exportRequestID = "com.linkedin.sdui.requests.profile.saveProfileToPdf"

// exportResponse mirrors the slice of the export-trigger payload the
// connector consumes. The download reference, when the profile is
// exportable, sits behind the first completion action.
type exportResponse struct {
	Response struct {
		CompletionAction struct {
			Actions []struct {
				Value struct {
					Content *struct {
						URL struct {
							URL string `json:"url"`
						} `json:"url"`
					} `json:"content"`
				} `json:"value"`
			} `json:"actions"`
		} `json:"completionAction"`
	} `json:"response"`
}

// TriggerExport requests a document export for the profile and returns
// the transient download URL. Profiles the source will not export
// (missing reference, permission denied) fail with
// domain.ErrExportUnavailable.
func (c *Client) TriggerExport(ctx context.Context, id domain.ProfileID) (string, error) {
	body, err := json.Marshal(exportPayload(id))
	if err != nil {
		return "", fmt.Errorf("marshal export payload: %w", err)
	}

	reqURL := c.cfg.BaseURL + "/flagship-web/rsc-action/actions/server-request"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build export request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, req)
	if err != nil {
		return "", fmt.Errorf("trigger export for %s: %w", id, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: export trigger for %s returned status %d",
			domain.ErrExportUnavailable, id, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read export response for %s: %w", id, err)
	}

	ref, err := parseExportReference(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrExportUnavailable, id, err)
	}
	return ref, nil
}

// parseExportReference extracts the download URL from the streamed
// action response. The JSON document follows a "0:" frame prefix.
func parseExportReference(raw []byte) (string, error) {
	_, frame, found := strings.Cut(string(raw), "0:")
	if !found {
		return "", ErrEmptyReference
	}

	var payload exportResponse
	if err := json.Unmarshal([]byte(frame), &payload); err != nil {
		return "", fmt.Errorf("decode export frame: %w", err)
	}

	actions := payload.Response.CompletionAction.Actions
	if len(actions) == 0 || actions[0].Value.Content == nil || actions[0].Value.Content.URL.URL == "" {
		return "", ErrEmptyReference
	}
	return actions[0].Value.Content.URL.URL, nil
}

// Fetch downloads the exported bytes at the transient reference.
// Failures are DownloadError and retryable when transient.
func (c *Client) Fetch(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		if ctx.Err() != nil || IsRateLimited(err) {
			return nil, err
		}
		return nil, &DownloadError{URL: ref, Err: err}
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &DownloadError{URL: ref, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DownloadError{URL: ref, Err: err}
	}
	return data, nil
}

// exportPayload builds the server-request body for one profile.
func exportPayload(id domain.ProfileID) map[string]any {
	requestedArguments := map[string]any{
		"$type":              "proto.sdui.actions.requests.RequestedArguments",
		"payload":            map[string]any{"profileId": id.String()},
		"requestedStateKeys": []any{},
		"requestMetadata":    map[string]any{"$type": "proto.sdui.common.RequestMetadata"},
	}

	return map[string]any{
		"requestId": exportRequestID,
		"serverRequest": map[string]any{
			"$type":              "proto.sdui.actions.core.ServerRequest",
			"requestId":          exportRequestID,
			"requestedArguments": requestedArguments,
		},
		"states": []any{},
		"requestedArguments": map[string]any{
			"$type":              "proto.sdui.actions.requests.RequestedArguments",
			"payload":            map[string]any{"profileId": id.String()},
			"requestedStateKeys": []any{},
			"requestMetadata":    map[string]any{"$type": "proto.sdui.common.RequestMetadata"},
			"states":             []any{},
			"screenId":           "com.linkedin.sdui.flagshipnav.profile.Profile",
		},
	}
}
