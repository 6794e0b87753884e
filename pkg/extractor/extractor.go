// Package extractor reads whole-document text from regulation source files.
package extractor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// Markdown is read directly; binary formats go through a parser first.
var (
	uploadExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
	importExtension  = ".md"
)

// IsUploadSupported reports whether ext (with leading dot, any case) is
// accepted by the upload path.
func IsUploadSupported(ext string) bool {
	return uploadExtensions[strings.ToLower(ext)]
}

// IsImportSupported reports whether ext is accepted by the batch import path.
func IsImportSupported(ext string) bool {
	return strings.ToLower(ext) == importExtension
}

// UploadExtensions returns the accepted upload extensions for error messages.
func UploadExtensions() []string {
	return []string{".pdf", ".doc", ".docx"}
}

// Extract returns the full text content of the file at path, dispatching on
// the file extension.
func Extract(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case ext == ".md":
		return extractMarkdown(path)
	case ext == ".pdf":
		return extractPDF(path)
	case ext == ".doc" || ext == ".docx":
		return extractWord(path)
	default:
		return "", fmt.Errorf("no extractor for extension %q", ext)
	}
}

func extractMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read markdown: %w", err)
	}
	return string(data), nil
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

func extractWord(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open word document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat word document: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse word document: %w", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			sb.WriteString(p.String())
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
