// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Pages(t *testing.T) {
	_, page := openSinglePagePDF(t, "BT /F1 12 Tf 1 0 0 1 0 0 Tm (hi) Tj ET\n", "")
	r := page.V.r
	pages := r.Pages()
	require.Len(t, pages, 1)
	assert.False(t, pages[0].V.IsNull())
}

func TestDocument_PagesAndExtractText(t *testing.T) {
	stream := "BT /F1 12 Tf 1 0 0 1 0 0 Tm (hello) Tj ET\n"
	pdf := buildSinglePagePDF(t, stream, "")

	tmp := t.TempDir() + "/doc.pdf"
	require.NoError(t, os.WriteFile(tmp, pdf, 0o644))

	doc, err := open(tmp)
	require.NoError(t, err)
	defer doc.Close()

	pages := doc.pages()
	require.Len(t, pages, 1)

	text, err := pages[0].extract_text()
	require.NoError(t, err)
	assert.Contains(t, text, "hello")

	full, err := doc.extract_text()
	require.NoError(t, err)
	assert.Contains(t, full, "hello")

	content := pages[0].instructions()
	assert.NotEmpty(t, content.Text)
}
