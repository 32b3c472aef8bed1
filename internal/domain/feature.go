package domain

// FeatureKey indexes one dimension of the shared feature space. Item
// features and profile preferences live in the same space so they can be
// compared by cosine similarity. The enumeration is closed: adding a new
// content type or style tag means adding a dimension here, never a
// dynamically-keyed map entry.
type FeatureKey int

const (
	FeatureTypeMeme FeatureKey = iota
	FeatureTypeStory
	FeatureTypeVideo
	FeatureTypeArticle
	FeatureTypePhoto
	FeatureStyleHumor
	FeatureStyleDrama
	FeatureStyleEducational
	FeatureStyleAesthetic
	FeatureStyleEdgy
	FeatureStyleWholesome
	FeatureHasImage
	FeatureHasVideo
	FeatureTextLength

	NumFeatures
)

// FeatureVector is a dense representation of the sparse feature mapping.
// All weights are >= 0; a zero vector means "no signal".
type FeatureVector [NumFeatures]float64

func (v FeatureVector) IsZero() bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}

// Sum returns the total weight across all dimensions.
func (v FeatureVector) Sum() float64 {
	var total float64
	for _, w := range v {
		total += w
	}
	return total
}

// TypeFeature maps a content type to its one-hot dimension.
func TypeFeature(t ContentType) (FeatureKey, bool) {
	switch t {
	case TypeMeme:
		return FeatureTypeMeme, true
	case TypeStory:
		return FeatureTypeStory, true
	case TypeVideo:
		return FeatureTypeVideo, true
	case TypeArticle:
		return FeatureTypeArticle, true
	case TypePhoto:
		return FeatureTypePhoto, true
	}
	return 0, false
}

// StyleFeature maps a style tag to its one-hot dimension.
func StyleFeature(s StyleTag) (FeatureKey, bool) {
	switch s {
	case StyleHumor:
		return FeatureStyleHumor, true
	case StyleDrama:
		return FeatureStyleDrama, true
	case StyleEducational:
		return FeatureStyleEducational, true
	case StyleAesthetic:
		return FeatureStyleAesthetic, true
	case StyleEdgy:
		return FeatureStyleEdgy, true
	case StyleWholesome:
		return FeatureStyleWholesome, true
	}
	return 0, false
}
