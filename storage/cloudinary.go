package storage

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Cloudinary configuration via environment variables:
// CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET

// UploadImage pushes one image to Cloudinary via the signed REST upload
// endpoint and returns its durable URL. The folder decides where the asset
// lands (e.g. impilo/profile); publicID must be unique within it.
func UploadImage(data []byte, folder, publicID string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("cloudinary: empty image payload")
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return "", fmt.Errorf("cloudinary: missing CLOUDINARY_* environment variables")
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + cloudName + "/image/upload"

	payload := base64.StdEncoding.EncodeToString(data)

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+payload)
	form.Add("api_key", apiKey)
	form.Add("folder", folder)
	form.Add("public_id", publicID)

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	form.Add("timestamp", timestamp)

	// Signature covers the parameters in alphabetical order, then the secret (SHA1)
	signatureString := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", folder, publicID, timestamp, apiSecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))
	form.Add("signature", signature)

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("cloudinary: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary: upload request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("cloudinary: read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary: upload failed with status %d: %s", res.StatusCode, string(body))
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &cloudRes); err != nil {
		return "", fmt.Errorf("cloudinary: parse response: %w", err)
	}
	if cloudRes.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", cloudRes.Error.Message)
	}

	out := cloudRes.SecureURL
	if out == "" {
		out = cloudRes.URL
	}
	if out == "" {
		return "", fmt.Errorf("cloudinary: no URL in upload response")
	}
	return out, nil
}
