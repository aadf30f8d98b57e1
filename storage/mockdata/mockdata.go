// Package mockdata loads the demo content the site is populated with.
package mockdata

import (
	"io/fs"
	"net/mail"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/smartschool/connect/core/attendance"
	"github.com/smartschool/connect/core/dashboard"
	"github.com/smartschool/connect/core/directory"
	"github.com/smartschool/connect/core/landing"
	"github.com/smartschool/connect/core/message"
	"github.com/smartschool/connect/core/session"
	appfs "github.com/smartschool/connect/fs"
)

// DefaultPath is the path of the fixture within appfs.FS.
const DefaultPath = "assets/mockdata.yaml"

type (
	rosterEntry struct {
		attendance.Entry `yaml:",inline"`
		ParentName       string `yaml:"parent_name"`
		ParentEmail      string `yaml:"parent_email"`
	}

	Fixture struct {
		Classes        []string                           `yaml:"classes"`
		Subjects       []string                           `yaml:"subjects"`
		Landing        landing.Page                       `yaml:"landing"`
		Profiles       map[session.Role]dashboard.Profile `yaml:"profiles"`
		Dashboards     map[session.Role]dashboard.Content `yaml:"dashboards"`
		Students       []directory.Student                `yaml:"students"`
		Teachers       []directory.Teacher                `yaml:"teachers"`
		Rosters        map[string][]rosterEntry           `yaml:"rosters"`
		Messages       []message.Message                  `yaml:"messages"`
		AbsentStudents []message.AbsentStudent            `yaml:"absent_students"`
	}
)

// Load reads & checks the fixture at path within fsys.
func Load(fsys fs.FS, path string) (*Fixture, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrap(err, "reading mock data")
	}

	f := new(Fixture)
	if err = yaml.Unmarshal(data, f); err != nil {
		return nil, errors.Wrap(err, "decoding mock data")
	}
	if err = f.check(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadDefault loads the embedded fixture.
func LoadDefault() (*Fixture, error) {
	return Load(appfs.FS, DefaultPath)
}

func (f *Fixture) check() error {
	for _, r := range session.Roles {
		if _, ok := f.Profiles[r]; !ok {
			return errors.Errorf("mock data: no profile for role %q", r)
		}
		if _, ok := f.Dashboards[r]; !ok {
			return errors.Errorf("mock data: no dashboard for role %q", r)
		}
	}
	for role := range f.Profiles {
		if !role.Valid() {
			return errors.Errorf("mock data: unknown role %q", role)
		}
	}
	if len(f.Classes) == 0 || len(f.Subjects) == 0 {
		return errors.New("mock data: classes & subjects are required")
	}
	return nil
}

// RosterTemplates returns the roster template of each class.
func (f *Fixture) RosterTemplates() map[string][]attendance.Entry {
	res := make(map[string][]attendance.Entry, len(f.Rosters))
	for class, entries := range f.Rosters {
		for _, e := range entries {
			res[class] = append(res[class], e.Entry)
		}
	}
	return res
}

// Parents returns the parents' addresses of each class.
func (f *Fixture) Parents() map[string][]mail.Address {
	res := make(map[string][]mail.Address, len(f.Rosters))
	for class, entries := range f.Rosters {
		for _, e := range entries {
			if e.ParentEmail == "" {
				continue
			}
			res[class] = append(res[class], mail.Address{Name: e.ParentName, Address: e.ParentEmail})
		}
	}
	return res
}
