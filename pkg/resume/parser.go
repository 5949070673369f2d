// Package resume reads uploaded resumes and spots known skills in them.
package resume

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"

	"github.com/artem13815/talent/pkg/errs"
)

// MaxSize caps an uploaded resume.
const MaxSize = 5 << 20

var (
	ErrUnsupportedFormat = errs.Validation("Unsupported resume format: use pdf, docx or txt")
	ErrTooLarge          = errs.Validation("Resume exceeds 5 MB")
	ErrUnreadable        = errs.Validation("Resume could not be read")
)

var (
	reTags    = regexp.MustCompile(`<[^>]+>`)
	reBlanks  = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewline = regexp.MustCompile(`\n+`)
)

// Ext returns the lower-cased extension if the format is supported.
func Ext(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".docx", ".txt":
		return ext, nil
	}
	return "", ErrUnsupportedFormat
}

// ExtractText returns the plain text of a pdf, docx or txt resume.
func ExtractText(filename string, data []byte) (string, error) {
	if len(data) > MaxSize {
		return "", ErrTooLarge
	}
	ext, err := Ext(filename)
	if err != nil {
		return "", err
	}
	var text string
	switch ext {
	case ".pdf":
		text, err = fromPDF(data)
	case ".docx":
		text, err = fromDocx(data)
	default:
		if !utf8.Valid(data) {
			return "", ErrUnreadable
		}
		text = string(data)
	}
	if err != nil {
		return "", errs.Wrap(ErrUnreadable, err)
	}
	return normalizeWhitespace(text), nil
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func fromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		raw, err := io.ReadAll(io.LimitReader(rc, 4*MaxSize))
		if err != nil {
			return "", err
		}
		xml := strings.ReplaceAll(string(raw), "</w:p>", "\n")
		xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
		return reTags.ReplaceAllString(xml, " "), nil
	}
	return "", zip.ErrFormat
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	s = reNewline.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
