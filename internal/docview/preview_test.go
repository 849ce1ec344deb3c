package docview

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfstaffing/manpower-review/internal/models"
)

func doc(fileName, contentType, data string) *models.Document {
	return &models.Document{FileName: fileName, ContentType: contentType, Data: data}
}

func TestClassify(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("name,age\nrahim,24\n"))

	tests := []struct {
		name     string
		doc      *models.Document
		wantMode RenderMode
		wantText string
	}{
		{"png image", doc("photo.png", "image/png", "x"), ModeImage, ""},
		{"jpeg image", doc("scan.jpg", "image/jpeg", "x"), ModeImage, ""},
		{"pdf", doc("visa.pdf", "application/pdf", "x"), ModePDF, ""},
		{"plain text decodes", doc("notes.txt", "text/plain", encoded), ModeText, "name,age\nrahim,24\n"},
		{"csv by extension with generic mime", doc("data.csv", "application/octet-stream", encoded), ModeText, "name,age\nrahim,24\n"},
		{"text that fails to decode falls back to generic", doc("notes.txt", "text/plain", "!!not-base64!!"), ModeGeneric, ""},
		{"unknown type is generic", doc("cv.docx", "application/octet-stream", "x"), ModeGeneric, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Classify(tt.doc)
			assert.Equal(t, tt.wantMode, p.Mode)
			assert.Equal(t, tt.wantText, p.Text)
			assert.Equal(t, tt.doc.FileName, p.FileName)
			assert.Equal(t, tt.doc.ContentType, p.ContentType)
		})
	}
}

func TestPayload(t *testing.T) {
	payload := []byte("%PDF-1.4 fake")
	d := doc("visa.pdf", "application/pdf", base64.StdEncoding.EncodeToString(payload))

	data, err := Payload(d)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestPayloadErrors(t *testing.T) {
	_, err := Payload(nil)
	assert.ErrorIs(t, err, ErrNoDocument)

	_, err = Payload(doc("visa.pdf", "application/pdf", ""))
	assert.ErrorIs(t, err, ErrNoPayload)

	_, err = Payload(doc("visa.pdf", "application/pdf", "!!bad!!"))
	assert.ErrorIs(t, err, ErrUndecodable)
}
