// Package docview decides how an attached document should be presented and
// materializes its inline base64 payload for download.
package docview

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"strings"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

// RenderMode is one of the four ways a document can be presented.
type RenderMode string

const (
	ModeImage   RenderMode = "image"   // inline <img>
	ModePDF     RenderMode = "pdf"     // embedded frame
	ModeText    RenderMode = "text"    // decoded plain text
	ModeGeneric RenderMode = "generic" // unsupported, offer download only
)

var (
	ErrNoDocument  = errors.New("submission has no attached document")
	ErrNoPayload   = errors.New("document has no stored payload")
	ErrUndecodable = errors.New("document payload is not valid base64")
)

// Preview describes one document ready for rendering. Text carries the
// decoded payload only in ModeText.
type Preview struct {
	FileName    string     `json:"fileName"`
	ContentType string     `json:"contentType"`
	Size        int64      `json:"size"`
	Mode        RenderMode `json:"mode"`
	Text        string     `json:"text,omitempty"`
}

// Classify picks the render mode for a document: image/* renders inline,
// application/pdf embeds, text-ish content decodes to plain text, and
// everything else (including text that fails to decode) falls back to the
// generic download-only mode.
func Classify(doc *models.Document) Preview {
	p := Preview{
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		Size:        doc.Size,
		Mode:        ModeGeneric,
	}
	switch {
	case strings.HasPrefix(doc.ContentType, "image/"):
		p.Mode = ModeImage
	case doc.ContentType == "application/pdf":
		p.Mode = ModePDF
	case strings.HasPrefix(doc.ContentType, "text/") || textExtension(doc.FileName):
		if data, err := base64.StdEncoding.DecodeString(doc.Data); err == nil {
			p.Mode = ModeText
			p.Text = string(data)
		}
	}
	return p
}

// Payload decodes the stored base64 content for download. An absent payload
// is an error, never a silent empty body.
func Payload(doc *models.Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	if doc.Data == "" {
		return nil, ErrNoPayload
	}
	data, err := base64.StdEncoding.DecodeString(doc.Data)
	if err != nil {
		return nil, ErrUndecodable
	}
	return data, nil
}

func textExtension(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".csv":
		return true
	}
	return false
}
