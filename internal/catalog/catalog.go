package catalog

import (
	"strings"
	"sync"
)

// Division is the competitive level of a school's football program.
type Division string

const (
	DivisionD1   Division = "D1"
	DivisionD2   Division = "D2"
	DivisionD3   Division = "D3"
	DivisionNAIA Division = "NAIA"
	DivisionJUCO Division = "JUCO"
)

// ParseDivision normalizes a user-supplied division string.
func ParseDivision(s string) (Division, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "D1", "DI", "DIVISION 1", "DIVISION I":
		return DivisionD1, true
	case "D2", "DII", "DIVISION 2", "DIVISION II":
		return DivisionD2, true
	case "D3", "DIII", "DIVISION 3", "DIVISION III":
		return DivisionD3, true
	case "NAIA":
		return DivisionNAIA, true
	case "JUCO", "NJCAA":
		return DivisionJUCO, true
	}
	return "", false
}

// College is one static catalog entry. Records are read-only reference data;
// the matcher clones them into MatchedSchool values per request.
type College struct {
	ID                   uint     `json:"id"`
	Name                 string   `json:"name"`
	Division             Division `json:"division"`
	Conference           string   `json:"conference"`
	Region               string   `json:"region"`
	State                string   `json:"state"`
	City                 string   `json:"city"`
	Public               bool     `json:"is_public"`
	Enrollment           int      `json:"enrollment"`
	AdmissionRate        float64  `json:"admission_rate"` // 0 when unknown
	AvgGPA               float64  `json:"avg_gpa"`        // 0 when unknown
	TuitionInState       int      `json:"tuition_in_state"`
	TuitionOutOfState    int      `json:"tuition_out_of_state"`
	AthleticScholarships bool     `json:"athletic_scholarships"`
	Sports               []string `json:"sports"`
	Programs             []string `json:"programs"`
	ActivelyRecruiting   []string `json:"actively_recruiting"`
	Facilities           string   `json:"facilities"`
	RecentSuccess        string   `json:"recent_success"`
}

var (
	loadOnce sync.Once
	colleges []College
)

func load() {
	loadOnce.Do(func() {
		colleges = seedColleges()
	})
}

// All returns the full catalog in seed order. The returned slice is a copy;
// callers cannot mutate the catalog through it.
func All() []College {
	load()
	out := make([]College, len(colleges))
	copy(out, colleges)
	return out
}

// ByID looks up a single college by its stable id.
func ByID(id uint) (College, bool) {
	load()
	for _, c := range colleges {
		if c.ID == id {
			return c, true
		}
	}
	return College{}, false
}

// ByDivision returns all colleges in the given division, in seed order.
func ByDivision(div Division) []College {
	load()
	var out []College
	for _, c := range colleges {
		if c.Division == div {
			out = append(out, c)
		}
	}
	return out
}

// Search performs a case-insensitive substring search over name, region,
// state and city.
func Search(query string) []College {
	load()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []College
	for _, c := range colleges {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Region), q) ||
			strings.Contains(strings.ToLower(c.State), q) ||
			strings.Contains(strings.ToLower(c.City), q) {
			out = append(out, c)
		}
	}
	return out
}
