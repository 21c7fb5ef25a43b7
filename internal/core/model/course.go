package model

import "strings"

// SourceName identifies one of the recommendation sources
type SourceName string

const (
	SourceUdemy    SourceName = "udemy"
	SourceCoursera SourceName = "coursera"
	SourceYouTube  SourceName = "youtube"
)

// Sources lists every source in display order
var Sources = []SourceName{SourceUdemy, SourceCoursera, SourceYouTube}

// Label returns the platform label shown next to a course
func (s SourceName) Label() string {
	switch s {
	case SourceUdemy:
		return "Udemy"
	case SourceCoursera:
		return "Coursera"
	case SourceYouTube:
		return "YouTube"
	default:
		return string(s)
	}
}

// ParseSourceName resolves a user supplied source name, case-insensitively
func ParseSourceName(s string) (SourceName, bool) {
	switch SourceName(strings.ToLower(strings.TrimSpace(s))) {
	case SourceUdemy:
		return SourceUdemy, true
	case SourceCoursera:
		return SourceCoursera, true
	case SourceYouTube:
		return SourceYouTube, true
	}
	return "", false
}

// CourseRecord is a single normalized recommendation.
// Values are built once from a raw source record and never modified.
type CourseRecord struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Rating   float64 `json:"rating"`
	Platform string  `json:"platform"`
}

// NormalizedResult holds the per-source recommendation lists
type NormalizedResult struct {
	BySource map[SourceName][]CourseRecord `json:"bySource"`
}

// NewNormalizedResult returns a result with an empty list for every source
func NewNormalizedResult() *NormalizedResult {
	r := &NormalizedResult{BySource: make(map[SourceName][]CourseRecord, len(Sources))}
	for _, s := range Sources {
		r.BySource[s] = []CourseRecord{}
	}
	return r
}

// Courses returns the list for a source, never nil
func (r *NormalizedResult) Courses(source SourceName) []CourseRecord {
	if r == nil || r.BySource[source] == nil {
		return []CourseRecord{}
	}
	return r.BySource[source]
}

// Total returns the number of records across all sources
func (r *NormalizedResult) Total() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, courses := range r.BySource {
		total += len(courses)
	}
	return total
}

// Clone copies the per-source lists. Records themselves are values and are
// copied along with the slices.
func (r *NormalizedResult) Clone() *NormalizedResult {
	if r == nil {
		return nil
	}
	out := &NormalizedResult{BySource: make(map[SourceName][]CourseRecord, len(r.BySource))}
	for source, courses := range r.BySource {
		cp := make([]CourseRecord, len(courses))
		copy(cp, courses)
		out.BySource[source] = cp
	}
	return out
}
