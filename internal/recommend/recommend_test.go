package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitpatil/disha/internal/domain"
)

func TestClassifyStream(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    string
	}{
		{
			name: "five science three commerce",
			answers: []string{
				"science", "practical", "mathematical", "engineering", "systematic",
				"theoretical", "debate", "reading",
			},
			want: "science",
		},
		{
			name: "commerce majority",
			answers: []string{
				"commerce", "analytical", "business", "achievement",
				"science", "creative",
			},
			want: "commerce",
		},
		{
			name: "arts majority",
			answers: []string{
				"arts", "visual", "creative", "socializing", "helping",
				"science", "debate",
			},
			want: "arts",
		},
		{
			name:    "empty answer set falls back to first bucket",
			answers: nil,
			want:    "science",
		},
		{
			name:    "unknown tags score nothing and fall back to first bucket",
			answers: []string{"cooking", "gardening"},
			want:    "science",
		},
		{
			name:    "tie resolves to earlier declared bucket",
			answers: []string{"commerce", "arts"},
			want:    "commerce",
		},
		{
			name:    "three way tie resolves to first bucket",
			answers: []string{"science", "commerce", "arts"},
			want:    "science",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(StreamBuckets, tt.answers)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestClassifyCareer(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    string
	}{
		{
			name: "technology leaning",
			answers: []string{
				"remote", "growth", "technical", "flexible", "moderate",
				"technology", "systematic", "expert", "impact", "money",
			},
			want: "technology",
		},
		{
			name: "healthcare leaning",
			answers: []string{
				"impact", "client", "balanced", "communication", "very_important",
				"healthcare", "mentor", "technical", "money", "creative",
			},
			want: "healthcare",
		},
		{
			name: "education leaning",
			answers: []string{
				"creative", "recognition", "independent", "variable",
				"education", "leader", "low", "technical", "impact", "money",
			},
			want: "education",
		},
		{
			name:    "empty answers default to technology",
			answers: nil,
			want:    "technology",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(CareerBuckets, tt.answers)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestClassifyMultiBucketTags(t *testing.T) {
	// A tag listed by several buckets votes for each of them.
	buckets := []Bucket{
		{ID: "alpha", Tags: []string{"shared", "alpha_only"}},
		{ID: "beta", Tags: []string{"shared", "beta_only"}},
	}

	got := Classify(buckets, []string{"shared", "beta_only"})
	assert.Equal(t, "beta", got.ID)

	// Shared tags alone produce a tie, resolved by declaration order.
	got = Classify(buckets, []string{"shared", "shared"})
	assert.Equal(t, "alpha", got.ID)
}

func TestClassifyIsDeterministic(t *testing.T) {
	answers := []string{"science", "debate", "creative", "commerce", "arts"}
	first := Classify(StreamBuckets, answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.ID, Classify(StreamBuckets, answers).ID)
	}
}

func TestClassifyQuiz(t *testing.T) {
	got, err := ClassifyQuiz(QuizStreamSelector, []string{"commerce", "debate"})
	require.NoError(t, err)
	assert.Equal(t, "commerce", got.ID)

	_, err = ClassifyQuiz("astrology", nil)
	require.Error(t, err)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestBucketOrderIsStable(t *testing.T) {
	streamIDs := make([]string, len(StreamBuckets))
	for i, b := range StreamBuckets {
		streamIDs[i] = b.ID
	}
	assert.Equal(t, []string{"science", "commerce", "arts"}, streamIDs)

	careerIDs := make([]string, len(CareerBuckets))
	for i, b := range CareerBuckets {
		careerIDs[i] = b.ID
	}
	assert.Equal(t, []string{"technology", "healthcare", "business", "education"}, careerIDs)
}
