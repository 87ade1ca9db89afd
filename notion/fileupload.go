package notion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// FileUploadMode selects single-shot or multi-part upload.
type FileUploadMode string

const (
	// FileUploadModeSinglePart sends the whole file in one SendFileUpload
	// call. The API caps single-part uploads at 20 MiB.
	FileUploadModeSinglePart FileUploadMode = "single_part"
	// FileUploadModeMultiPart splits the file into numbered parts and
	// requires a CompleteFileUpload call.
	FileUploadModeMultiPart FileUploadMode = "multi_part"
	// FileUploadModeExternalURL imports the file from a URL server-side.
	FileUploadModeExternalURL FileUploadMode = "external_url"
)

// FileUploadStatus is the lifecycle state of an upload.
type FileUploadStatus string

const (
	FileUploadStatusPending  FileUploadStatus = "pending"
	FileUploadStatusUploaded FileUploadStatus = "uploaded"
	FileUploadStatusExpired  FileUploadStatus = "expired"
	FileUploadStatusFailed   FileUploadStatus = "failed"
)

// FileUpload tracks a multi-step upload. Once Status is uploaded, the ID can
// be referenced from file blocks, files properties, icons, covers, and
// comment attachments.
type FileUpload struct {
	Object           string           `json:"object"`
	ID               string           `json:"id"`
	CreatedTime      time.Time        `json:"created_time"`
	ExpiryTime       *time.Time       `json:"expiry_time,omitempty"`
	Status           FileUploadStatus `json:"status"`
	Filename         string           `json:"filename,omitempty"`
	ContentType      string           `json:"content_type,omitempty"`
	ContentLength    int64            `json:"content_length,omitempty"`
	Mode             FileUploadMode   `json:"mode,omitempty"`
	NumberOfParts    *FileUploadParts `json:"number_of_parts,omitempty"`
	FileImportResult string           `json:"file_import_result,omitempty"`
}

// FileUploadParts tracks multi-part progress.
type FileUploadParts struct {
	Total int `json:"total"`
	Sent  int `json:"sent"`
}

// CreateFileUploadRequest opens an upload intent.
type CreateFileUploadRequest struct {
	Mode          FileUploadMode `json:"mode,omitempty"`
	Filename      string         `json:"filename,omitempty"`
	ContentType   string         `json:"content_type,omitempty"`
	NumberOfParts int            `json:"number_of_parts,omitempty"`
	ExternalURL   string         `json:"external_url,omitempty"`
}

// CreateFileUpload opens an upload intent. Single-part uploads proceed with
// one SendFileUpload call; multi-part uploads send numbered parts and then
// CompleteFileUpload.
func (c *Client) CreateFileUpload(ctx context.Context, req *CreateFileUploadRequest) (*FileUpload, error) {
	var upload FileUpload
	if err := c.post(ctx, "/file_uploads", req, &upload); err != nil {
		return nil, fmt.Errorf("failed to create file upload: %w", err)
	}
	return &upload, nil
}

// SendFileUpload sends file content for an open upload. partNumber is
// ignored for single-part uploads; multi-part uploads number parts from 1.
func (c *Client) SendFileUpload(ctx context.Context, fileUploadID string, content io.Reader, partNumber int) (*FileUpload, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "file")
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read upload content: %w", err)
	}
	if partNumber > 0 {
		if err := writer.WriteField("part_number", strconv.Itoa(partNumber)); err != nil {
			return nil, fmt.Errorf("failed to build multipart body: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	path := "/file_uploads/" + NormalizeID(fileUploadID) + "/send"
	var upload FileUpload
	if err := c.doRaw(ctx, http.MethodPost, path, nil, writer.FormDataContentType(), buf.Bytes(), &upload); err != nil {
		return nil, fmt.Errorf("failed to send file upload: %w", err)
	}
	return &upload, nil
}

// CompleteFileUpload finalizes a multi-part upload after all parts are sent.
func (c *Client) CompleteFileUpload(ctx context.Context, fileUploadID string) (*FileUpload, error) {
	path := "/file_uploads/" + NormalizeID(fileUploadID) + "/complete"
	var upload FileUpload
	if err := c.post(ctx, path, struct{}{}, &upload); err != nil {
		return nil, fmt.Errorf("failed to complete file upload: %w", err)
	}
	return &upload, nil
}

// GetFileUpload retrieves the status of an upload.
func (c *Client) GetFileUpload(ctx context.Context, fileUploadID string) (*FileUpload, error) {
	var upload FileUpload
	if err := c.get(ctx, "/file_uploads/"+NormalizeID(fileUploadID), nil, &upload); err != nil {
		return nil, fmt.Errorf("failed to get file upload: %w", err)
	}
	return &upload, nil
}

// ListFileUploads retrieves one page of the integration's uploads.
func (c *Client) ListFileUploads(ctx context.Context, opts *ListOptions) (*List[FileUpload], error) {
	var uploads List[FileUpload]
	if err := c.get(ctx, "/file_uploads", listQuery(opts), &uploads); err != nil {
		return nil, fmt.Errorf("failed to list file uploads: %w", err)
	}
	return &uploads, nil
}

// UploadFile uploads content as a single-part upload and returns the
// completed upload ready for referencing.
func (c *Client) UploadFile(ctx context.Context, filename, contentType string, content io.Reader) (*FileUpload, error) {
	upload, err := c.CreateFileUpload(ctx, &CreateFileUploadRequest{
		Mode:        FileUploadModeSinglePart,
		Filename:    filename,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}
	return c.SendFileUpload(ctx, upload.ID, content, 0)
}
