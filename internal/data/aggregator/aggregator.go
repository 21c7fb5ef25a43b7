package aggregator

import (
	"sort"
	"strings"

	"github.com/penwyp/go-course-roadmap/internal/core/model"
	"github.com/penwyp/go-course-roadmap/internal/data/parser"
	"github.com/penwyp/go-course-roadmap/internal/util"
)

// Aggregator merges the per-source payloads of a recommendation response
// into one NormalizedResult. It holds no state and is safe for concurrent use.
type Aggregator struct{}

// NewAggregator creates a new Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate normalizes a raw response. It never fails: missing sections come
// back as empty lists and missing ratings as 0.
//
// Udemy and Coursera are ordered by rating, highest first; equal ratings keep
// the order the endpoint sent them in. YouTube keeps source order.
func (a *Aggregator) Aggregate(raw *parser.RawQueryResponse) *model.NormalizedResult {
	result := model.NewNormalizedResult()
	if raw == nil {
		return result
	}

	var dropped int
	udemy, n := rankedCourses(model.SourceUdemy, raw.Udemy)
	dropped += n
	coursera, n := rankedCourses(model.SourceCoursera, raw.Coursera)
	dropped += n
	youtube, n := youtubeCourses(raw.YouTube.Rows())
	dropped += n

	result.BySource[model.SourceUdemy] = udemy
	result.BySource[model.SourceCoursera] = coursera
	result.BySource[model.SourceYouTube] = youtube

	util.LogDebugf("Aggregated recommendations: udemy=%d coursera=%d youtube=%d dropped=%d",
		len(udemy), len(coursera), len(youtube), dropped)

	return result
}

func rankedCourses(source model.SourceName, raw []parser.RawCourse) ([]model.CourseRecord, int) {
	courses := make([]model.CourseRecord, 0, len(raw))
	dropped := 0
	for _, rc := range raw {
		record, ok := newCourseRecord(rc.Title, rc.CourseURL, float64(rc.AvgRating), source.Label())
		if !ok {
			dropped++
			continue
		}
		courses = append(courses, record)
	}
	SortByRating(courses)
	return courses, dropped
}

func youtubeCourses(rows []parser.YouTubeRow) ([]model.CourseRecord, int) {
	courses := make([]model.CourseRecord, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		platform := strings.TrimSpace(row.Platform)
		if platform == "" {
			platform = model.SourceYouTube.Label()
		}
		record, ok := newCourseRecord(row.Title, row.URL, 0, platform)
		if !ok {
			dropped++
			continue
		}
		courses = append(courses, record)
	}
	return courses, dropped
}

// SortByRating orders courses by rating, highest first. The sort is stable.
func SortByRating(courses []model.CourseRecord) {
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Rating > courses[j].Rating
	})
}

// newCourseRecord builds a record; ok is false when there is neither a title
// nor a url to show.
func newCourseRecord(title, url string, rating float64, platform string) (model.CourseRecord, bool) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" && url == "" {
		return model.CourseRecord{}, false
	}
	return model.CourseRecord{
		Title:    title,
		URL:      url,
		Rating:   rating,
		Platform: platform,
	}, true
}
