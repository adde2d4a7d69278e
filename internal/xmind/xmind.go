// Package xmind converts XMind workbooks into mindmap YAML documents.
//
// Both workbook formats are read: XMind 8 stores its sheets in content.xml,
// XMind Zen and later in content.json. Topic titles become keys, subtopics
// become nested entries and topic hyperlinks become "hyperlink" attributes.
package xmind

import (
	"archive/zip"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoContent is returned for archives holding neither content.json nor
// content.xml.
var ErrNoContent = errors.New("xmind: no content.json or content.xml in archive")

const untitled = "(untitled)"

// Topic is one node of a sheet.
type Topic struct {
	Title    string
	Href     string
	Children []*Topic
}

// ReadFile opens the workbook at path and returns the root topic of every
// sheet.
func ReadFile(path string) ([]*Topic, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("xmind: open %s: %w", path, err)
	}
	defer zr.Close()
	return readArchive(&zr.Reader)
}

// Read reads a workbook from r.
func Read(r io.ReaderAt, size int64) ([]*Topic, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("xmind: %w", err)
	}
	return readArchive(zr)
}

func readArchive(zr *zip.Reader) ([]*Topic, error) {
	var xmlFile, jsonFile *zip.File
	for _, f := range zr.File {
		switch f.Name {
		case "content.json":
			jsonFile = f
		case "content.xml":
			xmlFile = f
		}
	}
	switch {
	case jsonFile != nil:
		return readEntry(jsonFile, parseJSON)
	case xmlFile != nil:
		return readEntry(xmlFile, parseXML)
	}
	return nil, ErrNoContent
}

func readEntry(f *zip.File, parse func(io.Reader) ([]*Topic, error)) ([]*Topic, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("xmind: %s: %w", f.Name, err)
	}
	defer rc.Close()
	sheets, err := parse(rc)
	if err != nil {
		return nil, fmt.Errorf("xmind: %s: %w", f.Name, err)
	}
	return sheets, nil
}

type xmlContent struct {
	Sheets []xmlSheet `xml:"sheet"`
}

type xmlSheet struct {
	Topic xmlTopic `xml:"topic"`
}

type xmlTopic struct {
	Title    string      `xml:"title"`
	Href     string      `xml:"http://www.w3.org/1999/xlink href,attr"`
	Children []xmlTopics `xml:"children>topics"`
}

type xmlTopics struct {
	Type   string     `xml:"type,attr"`
	Topics []xmlTopic `xml:"topic"`
}

func parseXML(r io.Reader) ([]*Topic, error) {
	var c xmlContent
	if err := xml.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	sheets := make([]*Topic, 0, len(c.Sheets))
	for _, s := range c.Sheets {
		sheets = append(sheets, fromXML(s.Topic))
	}
	return sheets, nil
}

func fromXML(x xmlTopic) *Topic {
	t := &Topic{Title: strings.TrimSpace(x.Title), Href: x.Href}
	for _, group := range x.Children {
		for _, c := range group.Topics {
			t.Children = append(t.Children, fromXML(c))
		}
	}
	return t
}

type jsonSheet struct {
	RootTopic jsonTopic `json:"rootTopic"`
}

type jsonTopic struct {
	Title    string `json:"title"`
	Href     string `json:"href"`
	Children struct {
		Attached []jsonTopic `json:"attached"`
	} `json:"children"`
}

func parseJSON(r io.Reader) ([]*Topic, error) {
	var c []jsonSheet
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	sheets := make([]*Topic, 0, len(c))
	for _, s := range c {
		sheets = append(sheets, fromJSON(s.RootTopic))
	}
	return sheets, nil
}

func fromJSON(j jsonTopic) *Topic {
	t := &Topic{Title: strings.TrimSpace(j.Title), Href: j.Href}
	for _, c := range j.Children.Attached {
		t.Children = append(t.Children, fromJSON(c))
	}
	return t
}
