package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"shopbot/core/logger"
	"log/slog"
)

// UploadMedia pushes an image to the media library using the media
// credential pair and returns the assigned media id.
func (c *Client) UploadMedia(ctx context.Context, filename string, data io.Reader) (int64, error) {
	start := time.Now()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return 0, fmt.Errorf("catalog: media.upload: build form: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return 0, fmt.Errorf("catalog: media.upload: read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return 0, fmt.Errorf("catalog: media.upload: finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+mediaBase, &buf)
	if err != nil {
		return 0, fmt.Errorf("catalog: media.upload: build request: %w", err)
	}
	req.SetBasicAuth(c.mediaUser, c.mediaPassword)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("catalog: media.upload: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("catalog: media.upload: read response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return 0, newRequestError("media.upload", resp.StatusCode, raw)
	}

	var media struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &media); err != nil {
		return 0, fmt.Errorf("catalog: media.upload: decode response: %w", err)
	}

	logger.Info(ctx, "catalog", "media.uploaded",
		slog.Int64("media_id", media.ID),
		slog.Duration("duration", logger.Took(start)),
	)
	return media.ID, nil
}
