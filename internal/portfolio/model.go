package portfolio

import (
	"slices"
	"strings"

	"neeleshreddy.com/portfolio/internal/videoid"
	"neeleshreddy.com/portfolio/pkg/utils/markdown"
)

// ItemType tags the kind of content a WorkItem displays.
type ItemType string

const (
	ItemVideo   ItemType = "video"
	ItemProject ItemType = "project"
	ItemText    ItemType = "text"
)

// WorkItem is a single piece of gallery content. URL may be empty; only items
// with a URL are playable and take part in filtering.
type WorkItem struct {
	Type            ItemType   `yaml:"type" json:"type" validate:"required,oneof=video project text"`
	Title           string     `yaml:"title,omitempty" json:"title,omitempty" validate:"required_unless=Type video"`
	URL             string     `yaml:"url,omitempty" json:"url,omitempty"`
	Description     string     `yaml:"description,omitempty" json:"description,omitempty"`
	Role            string     `yaml:"role,omitempty" json:"role,omitempty"`
	BehindTheScenes []WorkItem `yaml:"bts,omitempty" json:"bts,omitempty" validate:"dive"`
}

// HasURL reports whether the item carries a playable link.
func (w WorkItem) HasURL() bool {
	return strings.TrimSpace(w.URL) != ""
}

// Subcategory groups items one level below a Category.
type Subcategory struct {
	Name  string     `yaml:"name" json:"name" validate:"required"`
	Items []WorkItem `yaml:"items" json:"items" validate:"dive"`
}

// Category is a top-level gallery section.
type Category struct {
	Name          string        `yaml:"category" json:"category" validate:"required"`
	Items         []WorkItem    `yaml:"items" json:"items" validate:"dive"`
	Subcategories []Subcategory `yaml:"subcategories,omitempty" json:"subcategories,omitempty" validate:"dive"`
}

// Project is an entry on the projects page.
type Project struct {
	ID           string             `yaml:"id,omitempty" json:"id" validate:"required"`
	Title        string             `yaml:"title" json:"title" validate:"required"`
	Description  *markdown.Markdown `yaml:"description" json:"description"`
	Category     string             `yaml:"category" json:"category" validate:"required"`
	VideoURL     string             `yaml:"videoUrl,omitempty" json:"video_url,omitempty"`
	ThumbnailURL string             `yaml:"thumbnailUrl,omitempty" json:"thumbnail_url,omitempty"`
	Images       []string           `yaml:"images,omitempty" json:"images,omitempty"`
	Tools        []string           `yaml:"tools,omitempty" json:"tools,omitempty"`
	Year         string             `yaml:"year,omitempty" json:"year,omitempty" validate:"omitempty,numeric,len=4"`
	Client       string             `yaml:"client,omitempty" json:"client,omitempty"`
	Role         string             `yaml:"role,omitempty" json:"role,omitempty"`
	Tags         []string           `yaml:"tags,omitempty" json:"tags,omitempty"`
	Featured     bool               `yaml:"featured,omitempty" json:"featured,omitempty"`
	Order        int                `yaml:"order,omitempty" json:"order,omitempty" validate:"min=0"`
}

// CoverImage returns the explicit thumbnail, else one derived from the video,
// else the first gallery image. It is empty when none apply.
func (p Project) CoverImage() string {
	if p.ThumbnailURL != "" {
		return p.ThumbnailURL
	}
	if thumb := videoid.ThumbnailURL(p.VideoURL); thumb != "" {
		return thumb
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// EmbedURL returns the player URL of the project video.
func (p Project) EmbedURL() string {
	return videoid.EmbedURL(p.VideoURL)
}

// PreviewURL returns the muted hover-preview variant of the project video.
func (p Project) PreviewURL() string {
	return videoid.PreviewEmbedURL(p.VideoURL)
}

// clone returns a copy of p that shares no slices or pointers with it.
func (p Project) clone() Project {
	p.Description = p.Description.Clone()
	p.Images = slices.Clone(p.Images)
	p.Tools = slices.Clone(p.Tools)
	p.Tags = slices.Clone(p.Tags)
	return p
}

// defaultProjectOrder sorts projects without an explicit order last.
const defaultProjectOrder = 999

func (p Project) sortOrder() int {
	if p.Order <= 0 {
		return defaultProjectOrder
	}
	return p.Order
}

// PersonalInfo is the site owner's profile.
type PersonalInfo struct {
	Name     string             `yaml:"name" json:"name" validate:"required"`
	Title    string             `yaml:"title" json:"title"`
	Subtitle string             `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Bio      *markdown.Markdown `yaml:"bio" json:"bio"`
	LinkedIn string             `yaml:"linkedIn,omitempty" json:"linked_in,omitempty" validate:"omitempty,url"`
	Email    string             `yaml:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
}

type Skill struct {
	ID          string `yaml:"id" json:"id" validate:"required"`
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
}

type Experience struct {
	Company          string   `yaml:"company" json:"company" validate:"required"`
	Position         string   `yaml:"position" json:"position" validate:"required"`
	Period           string   `yaml:"period" json:"period"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
}

type Education struct {
	Degree         string `yaml:"degree" json:"degree" validate:"required"`
	Institution    string `yaml:"institution" json:"institution" validate:"required"`
	Period         string `yaml:"period" json:"period"`
	Specialization string `yaml:"specialization,omitempty" json:"specialization,omitempty"`
}

// SiteMetadata carries the site-wide title and canonical URL.
type SiteMetadata struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
	SiteURL     string `yaml:"siteUrl" json:"site_url" validate:"omitempty,url"`
	DemoReelURL string `yaml:"demoReelUrl,omitempty" json:"demo_reel_url,omitempty"`
}

// document is the on-disk shape of the content file.
type document struct {
	Site       SiteMetadata `yaml:"site"`
	Personal   PersonalInfo `yaml:"personal"`
	Skills     []Skill      `yaml:"skills" validate:"dive"`
	Experience []Experience `yaml:"experience" validate:"dive"`
	Education  []Education  `yaml:"education" validate:"dive"`
	Work       []Category   `yaml:"work" validate:"dive"`
	Projects   []Project    `yaml:"projects" validate:"dive"`
}
