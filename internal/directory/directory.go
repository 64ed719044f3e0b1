// Package directory serves the static college, career, scholarship, and
// assessment catalogs with search and facet filtering.
//
// The data is a seeded in-memory list loaded once at process start; there
// is no write path. Search matches case-insensitive substrings, facet
// filters match exactly, and the value "all" (or empty) passes a facet
// through unfiltered.
package directory

import "strings"

// College is one institution entry.
type College struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Stream      string    `json:"stream"`
	Rating      float64   `json:"rating"`
	Students    int       `json:"students"`
	Established int       `json:"established"`
	Fees        Fees      `json:"fees"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Courses     []Course  `json:"courses"`
	Facilities  []string  `json:"facilities"`
	Placement   Placement `json:"placement"`
	Rankings    []Ranking `json:"rankings"`
	Admission   Admission `json:"admission"`
}

// Fees is the display-only fee breakdown for a college.
type Fees struct {
	Tuition string `json:"tuition"`
	Hostel  string `json:"hostel"`
	Total   string `json:"total"`
}

// Course is one programme offered by a college.
type Course struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Seats    int    `json:"seats"`
	Cutoff   string `json:"cutoff"`
}

// Placement summarizes a college's placement record.
type Placement struct {
	Average    string   `json:"average"`
	Highest    string   `json:"highest"`
	Companies  []string `json:"companies"`
	Percentage string   `json:"percentage"`
}

// Ranking is one external ranking entry. Rank is a string because some
// organizations publish banded ranks such as "201-250".
type Ranking struct {
	Organization string `json:"organization"`
	Rank         string `json:"rank"`
	Year         int    `json:"year"`
}

// Admission describes how to get in.
type Admission struct {
	Process      string   `json:"process"`
	Requirements []string `json:"requirements"`
	Documents    []string `json:"documents"`
}

// Career is one career-profile entry.
type Career struct {
	ID               int          `json:"id"`
	Title            string       `json:"title"`
	Category         string       `json:"category"`
	Rating           float64      `json:"rating"`
	Description      string       `json:"description"`
	Overview         string       `json:"overview"`
	Salary           SalaryBands  `json:"salary"`
	Growth           string       `json:"growth"`
	Demand           string       `json:"demand"`
	Experience       string       `json:"experience"`
	Education        string       `json:"education"`
	TechnicalSkills  []string     `json:"technical_skills"`
	SoftSkills       []string     `json:"soft_skills"`
	Responsibilities []string     `json:"responsibilities"`
	Requirements     []string     `json:"requirements"`
	CareerPath       []CareerStep `json:"career_path"`
	Certifications   []string     `json:"certifications"`
}

// SalaryBands is the display-only salary breakdown for a career.
type SalaryBands struct {
	Entry   string `json:"entry"`
	Mid     string `json:"mid"`
	Senior  string `json:"senior"`
	Average string `json:"average"`
}

// CareerStep is one rung of a career progression ladder.
type CareerStep struct {
	Level      string `json:"level"`
	Experience string `json:"experience"`
	Salary     string `json:"salary"`
}

// Scholarship is one scholarship listing.
type Scholarship struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Provider     string   `json:"provider"`
	Category     string   `json:"category"`
	Amount       string   `json:"amount"`
	Deadline     string   `json:"deadline"`
	Description  string   `json:"description"`
	Eligibility  []string `json:"eligibility"`
	Requirements []string `json:"requirements"`
	Status       string   `json:"status"`
	Applicants   int      `json:"applicants"`
}

// Assessment is one quiz listing shown on the assessments page. QuizID
// links it to the question bank and classifier; listings without a QuizID
// are informational only.
type Assessment struct {
	ID           int     `json:"id"`
	QuizID       string  `json:"quiz_id,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Duration     string  `json:"duration"`
	Questions    int     `json:"questions"`
	Difficulty   string  `json:"difficulty"`
	Rating       float64 `json:"rating"`
	Participants int     `json:"participants"`
}

// CollegeFilter narrows the college list. Zero values match everything.
type CollegeFilter struct {
	Search   string
	Location string
	Type     string
	Stream   string
}

// CareerFilter narrows the career list.
type CareerFilter struct {
	Search     string
	Category   string
	Experience string
	Salary     string
}

// ScholarshipFilter narrows the scholarship list.
type ScholarshipFilter struct {
	Search   string
	Category string
	Amount   string
}

// facetMatch reports whether a facet filter accepts a value. Empty and
// "all" pass everything through.
func facetMatch(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Colleges returns colleges matching the filter, in seed order.
func Colleges(f CollegeFilter) []College {
	out := make([]College, 0, len(colleges))
	for _, c := range colleges {
		if f.Search != "" && !containsFold(c.Name, f.Search) && !containsFold(c.Location, f.Search) {
			continue
		}
		if !facetMatch(f.Location, c.Location) || !facetMatch(f.Type, c.Type) || !facetMatch(f.Stream, c.Stream) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CollegeByID returns the college with the given id, or nil.
func CollegeByID(id int) *College {
	for i := range colleges {
		if colleges[i].ID == id {
			c := colleges[i]
			return &c
		}
	}
	return nil
}

// Careers returns careers matching the filter, in seed order.
func Careers(f CareerFilter) []Career {
	out := make([]Career, 0, len(careers))
	for _, c := range careers {
		if f.Search != "" && !containsFold(c.Title, f.Search) && !containsFold(c.Description, f.Search) {
			continue
		}
		if !facetMatch(f.Category, c.Category) || !facetMatch(f.Experience, c.Experience) || !facetMatch(f.Salary, c.Salary.Average) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CareerByID returns the career with the given id, or nil.
func CareerByID(id int) *Career {
	for i := range careers {
		if careers[i].ID == id {
			c := careers[i]
			return &c
		}
	}
	return nil
}

// Scholarships returns scholarships matching the filter, in seed order.
func Scholarships(f ScholarshipFilter) []Scholarship {
	out := make([]Scholarship, 0, len(scholarships))
	for _, s := range scholarships {
		if f.Search != "" && !containsFold(s.Title, f.Search) && !containsFold(s.Provider, f.Search) {
			continue
		}
		if !facetMatch(f.Category, s.Category) || !facetMatch(f.Amount, s.Amount) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ScholarshipByID returns the scholarship with the given id, or nil.
func ScholarshipByID(id int) *Scholarship {
	for i := range scholarships {
		if scholarships[i].ID == id {
			s := scholarships[i]
			return &s
		}
	}
	return nil
}

// Assessments returns quiz listings, optionally filtered by category.
func Assessments(category string) []Assessment {
	out := make([]Assessment, 0, len(assessments))
	for _, a := range assessments {
		if !facetMatch(category, a.Category) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AssessmentByID returns the assessment with the given id, or nil.
func AssessmentByID(id int) *Assessment {
	for i := range assessments {
		if assessments[i].ID == id {
			a := assessments[i]
			return &a
		}
	}
	return nil
}
