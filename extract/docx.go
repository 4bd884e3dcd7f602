package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/chalkline/docdex/core"
)

// DOCX extracts page text from Office Open XML word documents. Explicit
// page breaks split pages; a document without any yields a single page.
type DOCX struct{}

var _ Extractor = (*DOCX)(nil)

// Extract opens the DOCX container and parses word/document.xml into
// 1-indexed page texts.
func (e *DOCX) Extract(data []byte) ([]core.PageText, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
		}

		return splitDocumentPages(content)
	}

	return nil, fmt.Errorf("%w: missing word/document.xml", ErrUnreadableDocument)
}

// splitDocumentPages walks the document.xml token stream in order,
// starting a new page at every explicit page break. Text and breaks
// within a single run keep their document order.
func splitDocumentPages(content []byte) ([]core.PageText, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	var pages []core.PageText
	var current strings.Builder
	flush := func() {
		pages = append(pages, core.PageText{Number: len(pages) + 1, Text: current.String()})
		current.Reset()
	}

	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "br":
				for _, attr := range t.Attr {
					if attr.Name.Local == "type" && attr.Value == "page" {
						flush()
					}
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				current.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	flush()

	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	return pages, nil
}
