// Package extract pulls plain text out of resume files. PDF extraction uses
// github.com/ledongthuc/pdf; DOCX is unzipped and stripped of its XML; legacy
// DOC falls back to salvaging printable runs from the binary stream.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a file yields no usable text.
var ErrNoText = errors.New("no text extracted")

// Text extracts plain text from an in-memory payload based on the declared
// file name's extension.
func Text(ctx context.Context, data []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	case ".doc":
		return extractDOC(data)
	default:
		return "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(fileName))
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	text := stripDocxXML(string(raw))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return strings.TrimSpace(raw)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// extractDOC salvages printable character runs from the legacy binary format.
// It is lossy but good enough for the heuristic tier's pattern matching.
func extractDOC(data []byte) (string, error) {
	const minRun = 4

	var (
		buf strings.Builder
		run []rune
	)
	flush := func() {
		if len(run) >= minRun {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(strings.TrimSpace(string(run)))
		}
		run = run[:0]
	}

	for _, b := range data {
		r := rune(b)
		if r == '\r' || r == '\n' || r == '\t' {
			flush()
			continue
		}
		if r >= 0x20 && r < 0x7f {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()

	text := strings.TrimFunc(buf.String(), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
