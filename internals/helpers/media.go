// file: internals/helpers/media.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

/* ===============================
   Vehicle media pipeline
   (decode → resize → webp → storage)
=================================*/

const (
	mediaMaxWidth   = 1600
	webpQuality     = 82
	storageUploadTO = 20 * time.Second
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// ConvertImageToWebP decodes a JPEG/PNG upload, caps the width at 1600px
// (catalog hero size) and re-encodes as webp.
func ConvertImageToWebP(fileHeader *multipart.FileHeader) (*bytes.Buffer, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > mediaMaxWidth {
		h := bounds.Dy() * mediaMaxWidth / bounds.Dx()
		scaled := image.NewRGBA(image.Rect(0, 0, mediaMaxWidth, h))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode failed: %w", err)
	}
	return out, nil
}

// UploadVehicleImage converts the upload to webp and pushes it to the
// storage bucket, returning the public URL.
func UploadVehicleImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	buf, err := ConvertImageToWebP(fileHeader)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(fileHeader.Filename, filepathExt(fileHeader.Filename)) + ".webp"
	filename := GenerateUniqueFilename(folder, base)

	if err := uploadToStorage("vehicle-media", filename, "image/webp", buf); err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/vehicle-media/%s",
		os.Getenv("STORAGE_PROJECT_URL"),
		url.PathEscape(filename),
	), nil
}

func filepathExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

func uploadToStorage(bucket, filename, contentType string, data *bytes.Buffer) error {
	storageURL := os.Getenv("STORAGE_PROJECT_URL")
	storageKey := os.Getenv("STORAGE_SERVICE_KEY")
	if storageURL == "" || storageKey == "" {
		return fmt.Errorf("STORAGE_PROJECT_URL or STORAGE_SERVICE_KEY not set")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", storageURL, bucket, filename)
	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+storageKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: storageUploadTO}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage upload status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteVehicleImageByURL resolves a public URL produced by
// UploadVehicleImage back to its object path and removes it. Unknown
// URLs are ignored.
func DeleteVehicleImageByURL(publicURL string) error {
	const marker = "/storage/v1/object/public/vehicle-media/"
	i := strings.Index(publicURL, marker)
	if i < 0 {
		return nil
	}
	path, err := url.PathUnescape(publicURL[i+len(marker):])
	if err != nil || path == "" {
		return nil
	}
	return DeleteFromStorage("vehicle-media", path)
}

// DeleteFromStorage removes a previously uploaded object.
func DeleteFromStorage(bucket, path string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		os.Getenv("STORAGE_PROJECT_URL"), bucket, path)

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv("STORAGE_SERVICE_KEY"))

	client := &http.Client{Timeout: storageUploadTO}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage delete status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
