// Package recommend maps a completed set of quiz answer tags to a single
// outcome bucket.
//
// Classification is a keyword-membership tally: each bucket carries a fixed
// tag set, every answer increments every bucket whose set contains it, and
// the bucket with the strictly greatest tally wins. Ties, including the
// all-zero case from an empty answer set, resolve to the first bucket in
// declaration order. The heuristic is a pure function over the answer
// values; question order and text never influence the result.
package recommend

import "github.com/ankitpatil/disha/internal/domain"

// Quiz identifiers for the assessments whose answers this package classifies.
const (
	QuizStreamSelector = "stream_selector"
	QuizCareerCompass  = "career_compass"
)

// Payload is the static descriptive content attached to a bucket,
// rendered alongside the recommendation. Fields unused by a quiz type are
// left empty and omitted from JSON.
type Payload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Careers     []string `json:"careers"`
	Subjects    []string `json:"subjects,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	SalaryRange string   `json:"salary_range,omitempty"`
	Growth      string   `json:"growth,omitempty"`
}

// Bucket is one discrete classification outcome: an id, the tag set that
// votes for it, and its display payload.
type Bucket struct {
	ID      string
	Tags    []string
	Payload Payload
}

func (b Bucket) contains(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Buckets returns the bucket set for a quiz in declaration order.
func Buckets(quizID string) ([]Bucket, error) {
	switch quizID {
	case QuizStreamSelector:
		return StreamBuckets, nil
	case QuizCareerCompass:
		return CareerBuckets, nil
	}
	return nil, domain.NotFound("recommend.buckets", "quiz", quizID)
}

// Classify tallies the answers against each bucket's tag set and returns the
// winning bucket. An answer belonging to several tag sets increments each of
// them. Ties and empty input resolve to the first bucket; buckets must be
// non-empty.
func Classify(buckets []Bucket, answers []string) Bucket {
	tallies := make([]int, len(buckets))
	for _, answer := range answers {
		for i, b := range buckets {
			if b.contains(answer) {
				tallies[i]++
			}
		}
	}

	best := 0
	for i := 1; i < len(tallies); i++ {
		if tallies[i] > tallies[best] {
			best = i
		}
	}
	return buckets[best]
}

// ClassifyQuiz resolves the bucket set for a quiz id and classifies against it.
func ClassifyQuiz(quizID string, answers []string) (Bucket, error) {
	buckets, err := Buckets(quizID)
	if err != nil {
		return Bucket{}, err
	}
	return Classify(buckets, answers), nil
}
