package utils

import (
	"charityhub/config"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// cloudinaryUploadResponse is the subset of the upload API response we use
type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadImage pushes an image to Cloudinary via its signed upload API and
// returns the durable URL. The caller stores the URL opaquely.
func UploadImage(file *multipart.FileHeader) (string, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryApiKey == "" || cfg.CloudinaryApiSecret == "" {
		return "", fmt.Errorf("cloudinary is not configured")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	publicID := uuid.NewString()
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Signature: sha1 over the sorted upload params plus the API secret
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s",
		cfg.CloudinaryFolder, publicID, timestamp, cfg.CloudinaryApiSecret)
	digest := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(digest[:])

	uploadURL := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cfg.CloudinaryCloudName)

	var result cloudinaryUploadResponse
	resp, err := resty.New().
		SetTimeout(30 * time.Second).
		R().
		SetFileReader("file", file.Filename, src).
		SetFormData(map[string]string{
			"api_key":   cfg.CloudinaryApiKey,
			"timestamp": timestamp,
			"folder":    cfg.CloudinaryFolder,
			"public_id": publicID,
			"signature": signature,
		}).
		SetResult(&result).
		SetError(&result).
		Post(uploadURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %v", err)
	}
	if resp.IsError() || result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}
