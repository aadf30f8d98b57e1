// Package directory searches the school's students & teachers.
package directory

import (
	"net/mail"
	"sort"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/smartschool/connect/core"
)

const (
	KindStudent = "student"
	KindTeacher = "teacher"

	suggestMinRatio = 0.6
	suggestMax      = 3

	kindTag = "dirkind"
)

type (
	Student struct {
		ID         string `json:"id" yaml:"id"`
		Name       string `json:"name" yaml:"name"`
		Class      string `json:"class" yaml:"class"`
		Attendance string `json:"attendance" yaml:"attendance"`
		Grade      string `json:"grade" yaml:"grade"`
	}

	Teacher struct {
		ID         string `json:"id" yaml:"id"`
		Name       string `json:"name" yaml:"name"`
		Subject    string `json:"subject" yaml:"subject"`
		Classes    string `json:"classes" yaml:"classes"`
		Experience string `json:"experience" yaml:"experience"`
	}

	// Query is a directory search request.
	Query struct {
		Search string `json:"q" query:"q"`
		Kind   string `json:"type" query:"type" validate:"omitempty,dirkind"`
	}

	Result struct {
		Students    []Student `json:"students"`
		Teachers    []Teacher `json:"teachers"`
		Suggestions []string  `json:"suggestions"`
	}
)

func (q *Query) Validate(validate *validator.Validate) error {
	q.Search = core.CleanString(q.Search)
	q.Kind = core.CleanString(q.Kind, true)
	if q.Kind == "" {
		q.Kind = KindStudent
	}
	return validate.Struct(q)
}

// InitValidators registers the "dirkind" validation tag.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterOneOf(validate, translator, kindTag, []string{KindStudent, KindTeacher})
}

type Service struct {
	students []Student
	teachers []Teacher
	parents  map[string][]mail.Address // {class: parents}
}

func NewService(students []Student, teachers []Teacher, parents map[string][]mail.Address) *Service {
	return &Service{students: students, teachers: teachers, parents: parents}
}

// Search matches query against the names & IDs of the given kind, ignoring case.
// A blank query matches nothing. Suggestions are only computed when nothing matched.
func (svc *Service) Search(query, kind string) Result {
	res := Result{Students: []Student{}, Teachers: []Teacher{}, Suggestions: []string{}}
	query = strings.TrimSpace(query)
	if query == "" {
		return res
	}

	switch kind {
	case KindTeacher:
		for _, t := range svc.teachers {
			if core.ContainsFold(t.Name, query) || core.ContainsFold(t.ID, query) {
				res.Teachers = append(res.Teachers, t)
			}
		}
		if len(res.Teachers) > 0 {
			return res
		}
	default:
		for _, s := range svc.students {
			if core.ContainsFold(s.Name, query) || core.ContainsFold(s.ID, query) {
				res.Students = append(res.Students, s)
			}
		}
		if len(res.Students) > 0 {
			return res
		}
	}
	res.Suggestions = svc.Suggest(query, kind)
	return res
}

// Suggest returns up to 3 names close to query ("did you mean").
func (svc *Service) Suggest(query, kind string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []string{}
	}

	var names []string
	if kind == KindTeacher {
		for _, t := range svc.teachers {
			names = append(names, t.Name)
		}
	} else {
		for _, s := range svc.students {
			names = append(names, s.Name)
		}
	}

	type scored struct {
		name  string
		ratio float64
	}
	candidates := make([]scored, 0, len(names))
	for _, name := range names {
		if r := bestRatio(query, name); r >= suggestMinRatio {
			candidates = append(candidates, scored{name, r})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].ratio > candidates[j].ratio })

	suggestions := make([]string, 0, suggestMax)
	for i := 0; i < len(candidates) && i < suggestMax; i++ {
		suggestions = append(suggestions, candidates[i].name)
	}
	return suggestions
}

// bestRatio compares query with the full name and each of its words.
func bestRatio(query, name string) float64 {
	name = strings.ToLower(name)
	best := ratio(query, name)
	for _, word := range strings.Fields(name) {
		if r := ratio(query, word); r > best {
			best = r
		}
	}
	return best
}

func ratio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

// ParentsOf returns the parents' addresses of the students of class.
func (svc *Service) ParentsOf(class string) []mail.Address {
	return svc.parents[class]
}
