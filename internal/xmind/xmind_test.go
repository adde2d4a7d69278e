package xmind

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentJSON = `[
  {
    "id": "sheet-1",
    "rootTopic": {
      "title": "Plan",
      "children": {
        "attached": [
          {"title": " Research ", "children": {"attached": [{"title": "Papers"}]}},
          {"title": "Site", "href": "https://example.com"}
        ]
      }
    }
  }
]`

const contentXML = `<?xml version="1.0" encoding="UTF-8"?>
<xmap-content xmlns="urn:xmind:xmap:xmlns:content:2.0" xmlns:xlink="http://www.w3.org/1999/xlink">
  <sheet id="s1">
    <topic id="t1">
      <title>Plan</title>
      <children>
        <topics type="attached">
          <topic id="t2"><title>Research</title></topic>
          <topic id="t3" xlink:href="https://example.com"><title>Site</title></topic>
        </topics>
        <topics type="detached">
          <topic id="t4"><title>Floating</title></topic>
        </topics>
      </children>
    </topic>
  </sheet>
  <sheet id="s2">
    <topic id="t5"><title>Second</title></topic>
  </sheet>
</xmap-content>`

func archive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func read(t *testing.T, files map[string]string) []*Topic {
	t.Helper()
	data := archive(t, files)
	sheets, err := Read(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return sheets
}

func TestReadJSON(t *testing.T) {
	sheets := read(t, map[string]string{"content.json": contentJSON})
	require.Len(t, sheets, 1)

	root := sheets[0]
	assert.Equal(t, "Plan", root.Title)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "Research", root.Children[0].Title)
	assert.Equal(t, "Papers", root.Children[0].Children[0].Title)
	assert.Equal(t, "https://example.com", root.Children[1].Href)
}

func TestReadXML(t *testing.T) {
	sheets := read(t, map[string]string{"content.xml": contentXML})
	require.Len(t, sheets, 2)

	root := sheets[0]
	assert.Equal(t, "Plan", root.Title)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "Research", root.Children[0].Title)
	assert.Equal(t, "https://example.com", root.Children[1].Href)
	assert.Equal(t, "Floating", root.Children[2].Title)
	assert.Equal(t, "Second", sheets[1].Title)
}

func TestReadPrefersJSON(t *testing.T) {
	sheets := read(t, map[string]string{
		"content.json": contentJSON,
		"content.xml":  contentXML,
	})
	assert.Len(t, sheets, 1)
}

func TestReadNoContent(t *testing.T) {
	data := archive(t, map[string]string{"manifest.json": "{}"})
	_, err := Read(bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestReadBadContent(t *testing.T) {
	data := archive(t, map[string]string{"content.json": "{not json"})
	_, err := Read(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content.json")
}

func TestReadNotAnArchive(t *testing.T) {
	data := []byte("plain text")
	_, err := Read(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xmind")
	require.NoError(t, os.WriteFile(path, archive(t, map[string]string{"content.json": contentJSON}), 0o644))

	sheets, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "Plan", sheets[0].Title)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.xmind"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
