// Package page reads what the browser saw on a video page: the URLs of every
// loaded resource and the video title.
package page

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cdarip/cdarip/filesystem"
	"github.com/cdarip/cdarip/log"
	"github.com/samber/lo"
)

// ErrEmptyInput is returned when a resource dump holds nothing at all.
var ErrEmptyInput = errors.New("resource list is empty")

// Load reads a resource dump from path, or stdin when path is "-".
func Load(path string) ([]string, error) {
	f, err := filesystem.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resource list: %w", err)
	}
	defer f.Close()

	urls, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Infof("loaded %d resource urls from %s", len(urls), path)
	return urls, nil
}

// Parse detects the dump format by its first non-blank character:
// '{' is a HAR export, '[' is a Performance API entry list, anything else is
// a plain list with one URL per line.
func Parse(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}

	switch trimmed[0] {
	case '{':
		return ReadHAR(bytes.NewReader(trimmed))
	case '[':
		return ReadPerformance(bytes.NewReader(trimmed))
	default:
		return ReadURLs(bytes.NewReader(trimmed))
	}
}

// ReadURLs reads one URL per line. Blank lines and lines starting with # are skipped.
func ReadURLs(r io.Reader) ([]string, error) {
	var urls []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}

	return urls, nil
}

type harEntry struct {
	Request struct {
		URL string `json:"url"`
	} `json:"request"`
}

type har struct {
	Log struct {
		Entries []harEntry `json:"entries"`
	} `json:"log"`
}

// ReadHAR returns the request URLs of a devtools HAR export in entry order.
func ReadHAR(r io.Reader) ([]string, error) {
	var archive har
	if err := json.NewDecoder(r).Decode(&archive); err != nil {
		return nil, fmt.Errorf("decode har: %w", err)
	}

	urls := lo.FilterMap(archive.Log.Entries, func(e harEntry, _ int) (string, bool) {
		return e.Request.URL, e.Request.URL != ""
	})

	return urls, nil
}

// ReadPerformance accepts the output of performance.getEntriesByType('resource'),
// either as entry objects or already mapped to their names.
func ReadPerformance(r io.Reader) ([]string, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode resource entries: %w", err)
	}

	urls := make([]string, 0, len(raw))
	for i, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			urls = append(urls, name)
			continue
		}

		var entry struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &entry); err != nil {
			return nil, fmt.Errorf("decode resource entry %d: %w", i, err)
		}
		urls = append(urls, entry.Name)
	}

	return urls, nil
}
