// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"os"

	"github.com/sassoftware/pdf-xtract/logger"
)

// Pages returns every page in the document in order. Pages are
// resolved eagerly; a page that cannot be resolved (a torn or
// dangling node in the /Pages tree) comes back as the zero Page.
func (r *Reader) Pages() []Page {
	n := r.NumPage()
	pages := make([]Page, 0, n)
	for i := 1; i <= n; i++ {
		pages = append(pages, r.Page(i))
	}
	return pages
}

// Document is a thin adapter over Reader/Page exposing the lower-case
// library surface, for callers porting code written against that
// naming convention rather than the Reader/Page Go API directly. It
// carries no state of its own and never duplicates parsing logic.
type Document struct {
	r *Reader
	f *os.File
}

// open mirrors Document-surface callers expecting a lower-case entry
// point. It behaves exactly like Open: the returned Document owns the
// underlying file and must be closed with Close.
func open(path string) (*Document, error) {
	f, r, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &Document{r: r, f: f}, nil
}

// Close releases the underlying file, if the Document opened one.
func (d *Document) Close() error {
	if d.f == nil {
		return nil
	}
	return d.f.Close()
}

// pages returns every page in the document, wrapped for the
// Document-surface naming convention.
func (d *Document) pages() []Page {
	return d.r.Pages()
}

// extract_text concatenates the plain text of every page in the
// document, in page order.
func (d *Document) extract_text() (string, error) {
	rd, err := d.r.GetPlainText()
	if err != nil {
		return "", err
	}
	buf := make([]byte, 0, 4096)
	tmp := make([]byte, 4096)
	for {
		n, err := rd.Read(tmp)
		buf = append(buf, tmp[:n]...)
		if err != nil {
			break
		}
	}
	return string(buf), nil
}

// extract_text returns the plain text of a single page. Fonts are
// resolved fresh per call; callers extracting many pages should prefer
// Reader.GetPlainText, which caches font lookups across the document.
func (p Page) extract_text() (string, error) {
	fonts := make(map[string]*Font)
	for _, name := range p.Fonts() {
		if _, ok := fonts[name]; !ok {
			f := p.Font(name)
			fonts[name] = &f
		}
	}
	return p.GetPlainText(fonts)
}

// instructions returns the page's graphics instructions: positioned
// text runs and path rectangles, in content-stream order.
func (p Page) instructions() Content {
	logger.Debug("instructions: resolving page content")
	return p.Content()
}
