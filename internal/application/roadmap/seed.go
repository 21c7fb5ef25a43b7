package roadmap

import "github.com/penwyp/go-course-roadmap/internal/core/model"

// DefaultItems returns the milestones a new session starts with. IDs are
// fixed so they never collide with generated ones.
func DefaultItems() []model.RoadmapItem {
	return []model.RoadmapItem{
		{ID: "seed-1", Title: "Basics of C++", Description: "Basic syntax, loops, selection statements", ISODate: "2025-01-15", Month: "January", Year: "2025"},
		{ID: "seed-2", Title: "OOP Concepts", Description: "Inheritance, Overloading, Polymorphism", ISODate: "2025-02-01", Month: "February", Year: "2025"},
		{ID: "seed-3", Title: "STL", Description: "Data structures, implementations", ISODate: "2025-02-15", Month: "February", Year: "2025"},
		{ID: "seed-4", Title: "DSA", Description: "Questions on GFG, Leetcode", ISODate: "2025-03-01", Month: "March", Year: "2025"},
		{ID: "seed-5", Title: "Competitive Programming", Description: "Online/Offline cp events", ISODate: "2025-04-01", Month: "April", Year: "2025"},
	}
}
