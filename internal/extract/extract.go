// Package extract pulls plain text out of user-selected documents.
// Libraries used: github.com/ledongthuc/pdf (PDF); DOCX is unpacked directly
// from the OOXML zip container.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupported is returned for document types the extractor cannot handle.
var ErrUnsupported = errors.New("unsupported document type")

// SupportedExtensions lists the file extensions Text accepts.
var SupportedExtensions = []string{".docx", ".pdf", ".txt", ".md"}

// Text extracts plain text from the document at path. An unreadable or
// malformed document is an error; there is no partial extraction.
func Text(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".docx":
		text, err := fromDOCX(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		return text, nil
	case ".pdf":
		text, err := fromPDF(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		return text, nil
	case ".txt", ".md":
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func fromDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return stripDocumentXML(rc)
}

// stripDocumentXML collects the character data of word/document.xml,
// inserting line breaks at paragraph and break boundaries.
func stripDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed document XML: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if (t.Name.Local == "p" || t.Name.Local == "br") && buf.Len() > 0 {
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}
