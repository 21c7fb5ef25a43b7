package parser

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"

	"github.com/penwyp/go-course-roadmap/internal/util"
)

// RawQueryResponse is the body returned by GET /recommend
type RawQueryResponse struct {
	Udemy    []RawCourse    `json:"udemy"`
	Coursera []RawCourse    `json:"coursera"`
	YouTube  YouTubeColumns `json:"youtube"`
}

// RawCourse is a Udemy or Coursera record as sent by the endpoint
type RawCourse struct {
	Title     string `json:"title"`
	CourseURL string `json:"course_url"`
	AvgRating Rating `json:"avg_rating"`
}

// Rating tolerates the shapes avg_rating shows up in:
// - missing or null (0)
// - a JSON number
// - a numeric string ("4.5")
// Anything else, NaN and infinities included, reads as 0.
type Rating float64

func (r *Rating) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*r = 0
		return nil
	}
	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			*r = 0
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*r = 0
		return nil
	}
	*r = Rating(v)
	return nil
}

// YouTubeColumns is the column-oriented YouTube payload: each field maps a
// row index (as a string key) to the cell value.
type YouTubeColumns struct {
	Title    Column `json:"title"`
	URL      Column `json:"url"`
	Platform Column `json:"platform"`
}

// YouTubeRow is one flattened YouTube result
type YouTubeRow struct {
	Index    string
	Title    string
	URL      string
	Platform string
}

// Column keeps the cells of one column together with their document order,
// which a plain map would lose.
type Column struct {
	keys   []string
	values map[string]string
}

// NewColumn builds a column from alternating key/value pairs, in order
func NewColumn(pairs ...string) Column {
	c := Column{values: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		c.set(pairs[i], pairs[i+1])
	}
	return c
}

func (c *Column) set(key, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Len returns the number of indices present in the column
func (c Column) Len() int {
	return len(c.keys)
}

// Get returns the cell stored under key
func (c Column) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// UnmarshalJSON walks the object with sonic's AST so keys come out in the
// order they were written. Arrays are accepted too and keyed by position.
func (c *Column) UnmarshalJSON(b []byte) error {
	*c = Column{values: make(map[string]string)}

	root, err := sonic.Get(b)
	if err != nil {
		return fmt.Errorf("youtube column: %w", err)
	}

	switch root.TypeSafe() {
	case ast.V_NULL, ast.V_NONE:
		return nil
	case ast.V_OBJECT, ast.V_ARRAY:
	default:
		util.LogDebugf("Ignoring youtube column of unexpected JSON type %d", root.TypeSafe())
		return nil
	}

	err = root.ForEach(func(path ast.Sequence, node *ast.Node) bool {
		key := strconv.Itoa(path.Index)
		if path.Key != nil {
			key = *path.Key
		}
		value, err := node.String()
		if err != nil {
			// nested objects/arrays carry no usable cell text
			value = ""
		}
		c.set(key, value)
		return true
	})
	if err != nil {
		return fmt.Errorf("youtube column: %w", err)
	}
	return nil
}

// Rows flattens the columns into ordered rows. The title column defines which
// indices exist. Integer indices come first in ascending numeric order, other
// keys follow in document order.
func (y YouTubeColumns) Rows() []YouTubeRow {
	keys := OrderedKeys(y.Title.keys)
	rows := make([]YouTubeRow, 0, len(keys))
	for _, k := range keys {
		title, _ := y.Title.Get(k)
		url, _ := y.URL.Get(k)
		platform, _ := y.Platform.Get(k)
		rows = append(rows, YouTubeRow{
			Index:    k,
			Title:    title,
			URL:      url,
			Platform: platform,
		})
	}
	return rows
}

// OrderedKeys returns keys in property iteration order: canonical
// non-negative integers ascending, then every other key as given.
func OrderedKeys(keys []string) []string {
	type indexed struct {
		key string
		n   uint64
	}
	var ints []indexed
	var rest []string
	for _, k := range keys {
		if n, ok := arrayIndex(k); ok {
			ints = append(ints, indexed{key: k, n: n})
			continue
		}
		rest = append(rest, k)
	}
	sort.SliceStable(ints, func(i, j int) bool { return ints[i].n < ints[j].n })

	out := make([]string, 0, len(keys))
	for _, i := range ints {
		out = append(out, i.key)
	}
	return append(out, rest...)
}

// arrayIndex reports whether k is a canonical unsigned integer ("0", "17", not "007" or "+1")
func arrayIndex(k string) (uint64, bool) {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return 0, false
	}
	for _, r := range k {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(k, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	return n, true
}

// Decode parses a /recommend response body
func Decode(body []byte) (*RawQueryResponse, error) {
	var resp RawQueryResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse recommendation response: %w", err)
	}
	util.LogDebugf("Decoded response: udemy=%d coursera=%d youtube=%d",
		len(resp.Udemy), len(resp.Coursera), resp.YouTube.Title.Len())
	return &resp, nil
}
