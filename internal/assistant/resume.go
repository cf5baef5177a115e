package assistant

import (
	"bytes"
	"io"
	"strings"

	"vagaspg_backend/pkg/apperrors"

	"github.com/ledongthuc/pdf"
)

// maxResumeChars bounds the text sent to the model.
const maxResumeChars = 20000

// PDFText extracts the plain text of a PDF resume.
func PDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.ErrFileRejected("Could not read the PDF file", false)
	}

	textReader, err := r.GetPlainText()
	if err != nil {
		return "", apperrors.ErrFileRejected("Could not read the PDF file", false)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", apperrors.ErrFileRejected("Could not read the PDF file", false)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", apperrors.FieldError("resume", "the PDF has no readable text")
	}
	if len(text) > maxResumeChars {
		text = text[:maxResumeChars]
	}
	return text, nil
}
