package models

// Document is a file attached to a submission. Content is carried inline as
// standard base64; ContentType is the MIME type declared at upload time.
type Document struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	UploadedAt  string `json:"uploadedAt"`
	Data        string `json:"data,omitempty"`
}
