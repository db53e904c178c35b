package images

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const uploadFolder = "soup-shoppe-menu/custom"

// Uploader pushes generated images to Cloudinary and returns the externally
// hosted URL that satisfies the publish gate.
type Uploader struct {
	cloudName string
	apiKey    string
	apiSecret string
	client    *http.Client
}

// NewUploader creates an uploader, or nil when credentials are missing.
func NewUploader(cloudName, apiKey, apiSecret string) *Uploader {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil
	}
	return &Uploader{cloudName: cloudName, apiKey: apiKey, apiSecret: apiSecret, client: http.DefaultClient}
}

// Upload stores image bytes under the item id and returns the secure URL.
// Re-uploading the same id overwrites the previous asset.
func (u *Uploader) Upload(ctx context.Context, itemID string, image []byte) (string, error) {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Signature covers the non-credential parameters, sorted by key.
	signed := fmt.Sprintf("folder=%s&overwrite=true&public_id=%s&timestamp=%s%s",
		uploadFolder, itemID, timestamp, u.apiSecret)
	digest := sha1.Sum([]byte(signed))

	form := url.Values{}
	form.Set("file", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(image))
	form.Set("public_id", itemID)
	form.Set("folder", uploadFolder)
	form.Set("overwrite", "true")
	form.Set("timestamp", timestamp)
	form.Set("api_key", u.apiKey)
	form.Set("signature", hex.EncodeToString(digest[:]))

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		SecureURL string `json:"secure_url"`
		Error     *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode cloudinary response: %w", err)
	}
	if resp.StatusCode >= 400 || result.SecureURL == "" {
		msg := resp.Status
		if result.Error != nil {
			msg = result.Error.Message
		}
		return "", fmt.Errorf("cloudinary error: %s", msg)
	}
	return result.SecureURL, nil
}
