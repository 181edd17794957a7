package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"neeleshreddy.com/portfolio/internal/portfolio/data"
	"neeleshreddy.com/portfolio/internal/videoid"
	"neeleshreddy.com/portfolio/pkg/utils/slug"
)

var validate = validator.New()

// LoadDefault loads the content file embedded in the binary.
func LoadDefault() (*Catalog, error) {
	f, err := data.FS.Open(data.DefaultFile)
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadFile loads a content file from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadPath loads path when set, and the embedded content otherwise.
func LoadPath(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

// Load decodes, validates and indexes a YAML content document. Unknown keys
// are rejected so typos in the content file surface at startup.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	for i := range doc.Projects {
		if strings.TrimSpace(doc.Projects[i].ID) == "" {
			doc.Projects[i].ID = slug.FromTitle(doc.Projects[i].Title)
		}
	}

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	if err := checkContent(doc); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}

	c := newCatalog(doc)
	slog.Info("Loaded content",
		"size", humanize.Bytes(uint64(len(raw))),
		"categories", len(doc.Work),
		"gallery_items", len(c.gallery),
		"filters", len(c.filters),
		"projects", len(doc.Projects),
	)
	return c, nil
}

// checkContent runs the cross-record checks the struct tags cannot express.
func checkContent(doc document) error {
	var errs []error

	projectIDs := make(map[string]string, len(doc.Projects))
	for _, p := range doc.Projects {
		if prev, dup := projectIDs[p.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate project id %q (%q and %q)", p.ID, prev, p.Title))
			continue
		}
		projectIDs[p.ID] = p.Title
	}

	errs = append(errs, checkCategoryIDs(doc.Work)...)
	errs = append(errs, checkDuplicateVideos(doc.Work)...)

	return errors.Join(errs...)
}

// checkCategoryIDs rejects category ids that collide, or where one id is the
// "{id}_" prefix of another: the category filter matches by that prefix, so
// such a pair would leak items between the two.
func checkCategoryIDs(categories []Category) []error {
	var errs []error
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, CategoryFilterID(c.Name))
	}
	sort.Strings(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			errs = append(errs, fmt.Errorf("duplicate category id %q", ids[i]))
		}
	}
	for _, a := range ids {
		for _, b := range ids {
			if a != b && strings.HasPrefix(b, a+"_") {
				errs = append(errs, fmt.Errorf("category id %q is ambiguous with %q", b, a))
			}
		}
	}
	return errs
}

// checkDuplicateVideos rejects a video that appears more than once in the
// work gallery, wherever it sits in the tree.
func checkDuplicateVideos(categories []Category) []error {
	var errs []error
	seen := make(map[string]string)
	visit := func(where string, items []WorkItem) {
		for _, item := range items {
			if !item.HasURL() {
				continue
			}
			key := videoid.VideoKey(item.URL)
			if prev, dup := seen[key]; dup {
				errs = append(errs, fmt.Errorf("duplicate video %s in %s (first seen in %s)", key, where, prev))
				continue
			}
			seen[key] = where
		}
	}
	for _, c := range categories {
		visit(c.Name, c.Items)
		for _, s := range c.Subcategories {
			visit(c.Name+"/"+s.Name, s.Items)
		}
	}
	return errs
}
