package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"weddingly/internal/domain"
)

// Config holds the Cloudinary account settings for unsigned uploads.
type Config struct {
	CloudName    string
	UploadPreset string
	Folder       string
}

type cloudinaryUploader struct {
	client *http.Client
	cfg    Config
}

// NewCloudinaryUploader returns a MediaUploader that posts files to the
// Cloudinary unsigned upload API. Audio files use the "video" resource type,
// which is how Cloudinary models audio.
func NewCloudinaryUploader(client *http.Client, cfg Config) domain.MediaUploader {
	if client == nil {
		client = http.DefaultClient
	}
	return &cloudinaryUploader{client: client, cfg: cfg}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
}

func (u *cloudinaryUploader) Upload(ctx context.Context, data []byte, filename, mimeType string) (*domain.UploadResult, error) {
	resourceType := "image"
	if strings.HasPrefix(mimeType, "audio/") {
		resourceType = "video"
	}
	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/%s/upload", u.cfg.CloudName, resourceType)

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("file", dataURI); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := form.WriteField("upload_preset", u.cfg.UploadPreset); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if u.cfg.Folder != "" {
		if err := form.WriteField("folder", u.cfg.Folder); err != nil {
			return nil, fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("cloudinary returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode cloudinary response: %w", err)
	}
	return &domain.UploadResult{
		URL:      parsed.SecureURL,
		PublicID: parsed.PublicID,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Format:   parsed.Format,
	}, nil
}
