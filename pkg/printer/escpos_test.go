package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStartsWithInit(t *testing.T) {
	doc := NewDocument(32)
	assert.True(t, bytes.HasPrefix(doc.Bytes(), []byte{ESC, '@'}))
}

func TestKeyValueAlignsToWidth(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("Subtotal:", "100.00")

	out := doc.Bytes()
	// Skip the init sequence, drop the trailing line feed
	line := string(out[2 : len(out)-1])
	assert.Len(t, line, 32)
	assert.Equal(t, "Subtotal:", line[:9])
	assert.Equal(t, "100.00", line[26:])
}

func TestKeyValueKeepsOneSpaceWhenTooWide(t *testing.T) {
	doc := NewDocument(10)
	doc.KeyValue("Descuento:", "-123.45")

	out := doc.Bytes()
	line := string(out[2 : len(out)-1])
	assert.Equal(t, "Descuento: -123.45", line)
}

func TestItemLine(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemLine(2, "Refresco 600ml", "36.00")

	out := doc.Bytes()
	line := string(out[2 : len(out)-1])
	assert.Len(t, line, 32)
	assert.Equal(t, "2x Refresco 600ml", line[:17])
	assert.Equal(t, "36.00", line[27:])
}

func TestSeparatorFillsWidth(t *testing.T) {
	doc := NewDocument(48)
	doc.Separator('-')

	out := doc.Bytes()
	line := string(out[2 : len(out)-1])
	assert.Len(t, line, 48)
}

func TestOpenDrawerAndCutCommands(t *testing.T) {
	doc := NewDocument(32)
	doc.OpenDrawer().PartialCut()

	out := doc.Bytes()
	assert.True(t, bytes.Contains(out, []byte{ESC, 'p', 0x00}))
	assert.True(t, bytes.HasSuffix(out, []byte{GS, 'V', 0x01}))
}

func TestZeroWidthDefaultsTo32(t *testing.T) {
	doc := NewDocument(0)
	doc.Separator('=')

	out := doc.Bytes()
	line := string(out[2 : len(out)-1])
	assert.Len(t, line, 32)
}
