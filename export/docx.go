package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"yatra/models"
)

// Docx renders the snapshot as a Word document: the same content events as
// the PDF, expressed as a heading/paragraph/run tree and packed into the
// WordprocessingML container.
func Docx(snap models.ItinerarySnapshot) ([]byte, error) {
	sink := &docxSink{}
	Walk(snap, sink)
	return packDocx(sink.paras)
}

type docxRun struct {
	text string
	bold bool
}

type docxPara struct {
	style  string // "", "Title", "Heading1", "Heading2"
	indent int    // twentieths of a point, 0 for none
	runs   []docxRun
}

type docxSink struct {
	paras []docxPara
}

func (s *docxSink) Title(text string) {
	s.paras = append(s.paras, docxPara{style: "Title", runs: []docxRun{{text: text}}})
}

func (s *docxSink) Heading(text string) {
	s.paras = append(s.paras, docxPara{style: "Heading2", runs: []docxRun{{text: text}}})
}

func (s *docxSink) Field(label, value string) {
	s.paras = append(s.paras, docxPara{runs: []docxRun{
		{text: label + ": ", bold: true},
		{text: value},
	}})
}

func (s *docxSink) List(label string, items []string) {
	s.paras = append(s.paras, docxPara{runs: []docxRun{{text: label + ":", bold: true}}})
	for _, item := range items {
		s.paras = append(s.paras, docxPara{indent: 400, runs: []docxRun{{text: "- " + item}}})
	}
}

// packDocx writes the minimal OOXML package Word needs: content types, the
// package relationship, a style sheet for the heading levels, and the
// document body itself.
func packDocx(paras []docxPara) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/_rels/document.xml.rels", docxDocRels},
		{"word/styles.xml", docxStyles},
		{"word/document.xml", documentXML(paras)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func documentXML(paras []docxPara) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paras {
		b.WriteString(`<w:p>`)
		if p.style != "" || p.indent > 0 {
			b.WriteString(`<w:pPr>`)
			if p.style != "" {
				b.WriteString(`<w:pStyle w:val="` + p.style + `"/>`)
			}
			if p.indent > 0 {
				b.WriteString(`<w:ind w:left="` + strconv.Itoa(p.indent) + `"/>`)
			}
			b.WriteString(`</w:pPr>`)
		}
		for _, r := range p.runs {
			b.WriteString(`<w:r>`)
			if r.bold {
				b.WriteString(`<w:rPr><w:b/></w:rPr>`)
			}
			b.WriteString(`<w:t xml:space="preserve">`)
			b.WriteString(escapeXML(r.text))
			b.WriteString(`</w:t></w:r>`)
		}
		b.WriteString(`</w:p>`)
	}
	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return b.String()
}

func escapeXML(s string) string {
	var b bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never does.
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

const docxContentTypes = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const docxRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const docxDocRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

const docxStyles = xml.Header + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/>` +
	`<w:pPr><w:jc w:val="center"/><w:spacing w:after="400"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="48"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/>` +
	`<w:pPr><w:spacing w:before="200" w:after="200"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/>` +
	`<w:pPr><w:spacing w:before="400" w:after="200"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>` +
	`</w:styles>`
