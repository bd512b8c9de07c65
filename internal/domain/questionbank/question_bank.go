package questionbank

import (
	"math/rand"
	"slices"
	"sort"
)

// MaxSampleSize caps how many questions a single quiz session may draw.
const MaxSampleSize = 10

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID            int
	Theme         string
	Level         string
	Text          string
	Options       []string
	CorrectOption int
}

// IsCorrect reports whether the given option index is the correct answer.
func (q Question) IsCorrect(index int) bool {
	return index == q.CorrectOption
}

// Bank holds the validated question pool and answers filter/sample queries.
type Bank struct {
	Questions []Question
}

func New(questions []Question) *Bank {
	return &Bank{Questions: questions}
}

// ListThemes returns the distinct theme tags present, sorted.
func (b *Bank) ListThemes() []string {
	return distinctTags(b.Questions, func(q Question) string { return q.Theme })
}

// ListLevels returns the distinct difficulty tags present, sorted.
func (b *Bank) ListLevels() []string {
	return distinctTags(b.Questions, func(q Question) string { return q.Level })
}

// Filter returns the questions matching any of the given themes AND any of
// the given levels. A nil or empty filter is a no-op.
func (b *Bank) Filter(themes, levels []string) []Question {
	result := b.Questions
	if len(themes) > 0 {
		result = keep(result, func(q Question) bool { return slices.Contains(themes, q.Theme) })
	}
	if len(levels) > 0 {
		result = keep(result, func(q Question) bool { return slices.Contains(levels, q.Level) })
	}
	return result
}

// Sample draws up to min(count, MaxSampleSize) questions from the themed
// pool, without replacement and in random order. A count of zero or less
// asks for the default, MaxSampleSize. When the pool holds no more
// questions than requested the whole pool comes back shuffled. An empty
// pool yields an empty result; the caller decides whether that means
// "no quiz possible".
func (b *Bank) Sample(count int, themes []string) []Question {
	if count <= 0 || count > MaxSampleSize {
		count = MaxSampleSize
	}

	pool := shuffleQuestions(b.Filter(themes, nil))
	if len(pool) <= count {
		return pool
	}
	return pool[:count]
}

// shuffleQuestions returns a new slice with questions in random order.
func shuffleQuestions(questions []Question) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

func keep(questions []Question, match func(Question) bool) []Question {
	var result []Question
	for _, q := range questions {
		if match(q) {
			result = append(result, q)
		}
	}
	return result
}

func distinctTags(questions []Question, tag func(Question) string) []string {
	seen := make(map[string]struct{})
	for _, q := range questions {
		if t := tag(q); t != "" {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
