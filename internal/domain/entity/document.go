package entity

import "time"

// DocumentType is the file type of an uploaded document.
type DocumentType string

const (
	DocumentPDF  DocumentType = "PDF"
	DocumentDOCX DocumentType = "DOCX"
	DocumentJPG  DocumentType = "JPG"
	DocumentPNG  DocumentType = "PNG"
)

// IsValid checks if the DocumentType is a valid value.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentPDF, DocumentDOCX, DocumentJPG, DocumentPNG:
		return true
	default:
		return false
	}
}

// Document is uploaded file metadata. RelatedToID points at a property or a
// deal; the union is untyped and resolved at lookup time.
type Document struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         DocumentType `json:"type"`
	SizeKB       int          `json:"sizeKB"`
	UploadDate   time.Time    `json:"uploadDate"`
	UploadedByID string       `json:"uploadedById"`
	RelatedToID  string       `json:"relatedToId"`
}
