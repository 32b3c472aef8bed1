package domain

import "time"

// ContentType is the closed set of item types the platform serves.
type ContentType string

const (
	TypeMeme    ContentType = "meme"
	TypeStory   ContentType = "story"
	TypeVideo   ContentType = "video"
	TypeArticle ContentType = "article"
	TypePhoto   ContentType = "photo"
)

// ContentTypes lists all valid content types in a fixed order.
var ContentTypes = [...]ContentType{TypeMeme, TypeStory, TypeVideo, TypeArticle, TypePhoto}

// StyleTag is the closed set of optional style annotations on an item.
type StyleTag string

const (
	StyleNone        StyleTag = ""
	StyleHumor       StyleTag = "humor"
	StyleDrama       StyleTag = "drama"
	StyleEducational StyleTag = "educational"
	StyleAesthetic   StyleTag = "aesthetic"
	StyleEdgy        StyleTag = "edgy"
	StyleWholesome   StyleTag = "wholesome"
)

// StyleTags lists all valid non-empty style tags in a fixed order.
var StyleTags = [...]StyleTag{StyleHumor, StyleDrama, StyleEducational, StyleAesthetic, StyleEdgy, StyleWholesome}

func ValidContentType(t ContentType) bool {
	for _, ct := range ContentTypes {
		if t == ct {
			return true
		}
	}
	return false
}

func ValidStyleTag(s StyleTag) bool {
	if s == StyleNone {
		return true
	}
	for _, st := range StyleTags {
		if s == st {
			return true
		}
	}
	return false
}

// DefaultQualityPrior is assumed when an item carries no editorial prior.
const DefaultQualityPrior = 5.0

// EngagementStats holds the raw engagement counters attached to an item.
type EngagementStats struct {
	Approvals int64 `json:"approvals"`
	Reactions int64 `json:"reactions"`
	Shares    int64 `json:"shares"`
	Saves     int64 `json:"saves"`
	Views     int64 `json:"views"`
}

// CandidateItem is an item eligible to appear in a ranking result.
// It is read-only for the duration of a request.
type CandidateItem struct {
	ID           string          `json:"id"`
	AuthorID     string          `json:"author_id"`
	ContentType  ContentType     `json:"content_type"`
	StyleTag     StyleTag        `json:"style_tag,omitempty"`
	HasImage     bool            `json:"has_image"`
	HasVideo     bool            `json:"has_video"`
	TextLength   int             `json:"text_length"`
	QualityPrior float64         `json:"quality_prior"`
	Stats        EngagementStats `json:"stats"`
	CreatedAt    time.Time       `json:"created_at"`
}
