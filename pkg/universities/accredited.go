package universities

// Category is a certification axis of the accreditation directory.
type Category string

// Certification categories, in build processing order.
const (
	CategoryDegree    Category = "degree"    // 학위과정
	CategoryLanguage  Category = "language"  // 어학연수과정
	CategoryExcellent Category = "excellent" // 우수 인증
)

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}

// Categories returns the certification categories in processing order.
func Categories() []Category {
	return []Category{CategoryDegree, CategoryLanguage, CategoryExcellent}
}

// CategoryList groups raw institution names by level bucket.
type CategoryList struct {
	University []string `json:"university" yaml:"university"`
	College    []string `json:"college" yaml:"college"`
	Graduate   []string `json:"graduate" yaml:"graduate"`
}

// Bucket returns the raw names listed under level.
func (l CategoryList) Bucket(level SchoolLevel) []string {
	switch level {
	case LevelUniversity:
		return l.University
	case LevelCollege:
		return l.College
	case LevelGraduate:
		return l.Graduate
	default:
		return nil
	}
}

// Len returns the number of raw names across all buckets.
func (l CategoryList) Len() int {
	return len(l.University) + len(l.College) + len(l.Graduate)
}

// AccreditedSource is the scraped accreditation-status directory.
type AccreditedSource struct {
	LastModified string       `json:"lastModified" yaml:"last_modified"`
	ScrapedAt    string       `json:"scrapedAt" yaml:"scraped_at"`
	Excellent    CategoryList `json:"excellent" yaml:"excellent"`
	Degree       CategoryList `json:"degree" yaml:"degree"`
	Language     CategoryList `json:"language" yaml:"language"`
}

// List returns the per-level name lists for category.
func (s *AccreditedSource) List(category Category) CategoryList {
	switch category {
	case CategoryDegree:
		return s.Degree
	case CategoryLanguage:
		return s.Language
	case CategoryExcellent:
		return s.Excellent
	default:
		return CategoryList{}
	}
}
