// Package feature converts candidate items into vectors in the fixed
// feature space shared with user preference profiles.
package feature

import (
	"math"

	"github.com/pulsefeed/ranking-service/internal/domain"
)

// textLengthScale is the character count at which the text-length feature
// saturates at 1.
const textLengthScale = 500.0

// Extract builds the feature vector for an item. It is a pure function:
// absent optional fields contribute zero-weight features, never errors.
func Extract(item domain.CandidateItem) domain.FeatureVector {
	var v domain.FeatureVector

	if key, ok := domain.TypeFeature(item.ContentType); ok {
		v[key] = 1
	}
	if key, ok := domain.StyleFeature(item.StyleTag); ok {
		v[key] = 1
	}
	if item.HasImage {
		v[domain.FeatureHasImage] = 1
	}
	if item.HasVideo {
		v[domain.FeatureHasVideo] = 1
	}
	if item.TextLength > 0 {
		v[domain.FeatureTextLength] = math.Min(float64(item.TextLength)/textLengthScale, 1)
	}

	return v
}

// Cosine returns the cosine similarity of two non-negative feature vectors.
// If either vector has zero norm the similarity is 0, never NaN.
func Cosine(a, b domain.FeatureVector) float64 {
	var dot, normA, normB float64
	for i := 0; i < int(domain.NumFeatures); i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
