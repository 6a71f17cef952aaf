package domain

import "context"

// UploadResult is what the media host returns for a stored file. The core
// keeps only the URL string per site field.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Format   string `json:"format,omitempty"`
}

// MediaUploader is the media host port (images and audio). Implementations
// never inspect file contents beyond what the host requires.
type MediaUploader interface {
	Upload(ctx context.Context, data []byte, filename, mimeType string) (*UploadResult, error)
}
