package page

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cdarip/cdarip/constant"
	"github.com/cdarip/cdarip/filesystem"
	"github.com/cdarip/cdarip/log"
)

// Title extracts the video title from saved page HTML. It falls back to
// constant.TitleNodeNotFound when the element is missing and to
// constant.TitleScriptFailed when the document cannot be read.
func Title(r io.Reader, selector string) string {
	if selector == "" {
		selector = constant.TitleSelector
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		log.Errorf("parse page html: %v", err)
		return constant.TitleScriptFailed
	}

	node := doc.Find(selector).First()
	if node.Length() == 0 {
		log.Warnf("title element %q not found", selector)
		return constant.TitleNodeNotFound
	}

	return strings.TrimSpace(node.Text())
}

// LoadTitle reads the title from the HTML file at path.
func LoadTitle(path, selector string) string {
	f, err := filesystem.Open(path)
	if err != nil {
		log.Errorf("open page html: %v", err)
		return constant.TitleScriptFailed
	}
	defer f.Close()

	return Title(f, selector)
}
