package greenstar

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/etnz/greenstar/date"
)

// Project is one Green Star certification record.
//
// A Project is immutable once created. Dates are kept as the dd/mm/yyyy text
// they were entered with; use RegisteredOn and CertifiedOn to parse them.
type Project struct {
	name       string
	location   string
	registered string
	certified  string
	ratingTool string
	rating     Rating
}

// NewProject creates a new Project. It does not validate its arguments, see Validate.
func NewProject(name, location, registered, certified, ratingTool string, rating Rating) Project {
	return Project{
		name:       name,
		location:   location,
		registered: registered,
		certified:  certified,
		ratingTool: ratingTool,
		rating:     rating,
	}
}

func (p Project) Name() string       { return p.name }
func (p Project) Location() string   { return p.location }
func (p Project) Registered() string { return p.registered }
func (p Project) Certified() string  { return p.certified }
func (p Project) RatingTool() string { return p.ratingTool }
func (p Project) Rating() Rating     { return p.rating }

// RegisteredOn parses the registered date.
func (p Project) RegisteredOn() (date.Date, error) {
	d, err := date.Parse(p.registered)
	if err != nil {
		return date.Date{}, fmt.Errorf("project %q registered date: %w", p.name, err)
	}
	return d, nil
}

// CertifiedOn parses the certified date.
func (p Project) CertifiedOn() (date.Date, error) {
	d, err := date.Parse(p.certified)
	if err != nil {
		return date.Date{}, fmt.Errorf("project %q certified date: %w", p.name, err)
	}
	return d, nil
}

// Validate checks that both dates are valid dd/mm/yyyy dates.
func (p Project) Validate() error {
	_, errR := p.RegisteredOn()
	_, errC := p.CertifiedOn()
	return errors.Join(errR, errC)
}

// MarshalJSON writes the project as a JSON object with a stable field order.
func (p Project) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.name)
	w.Optional("location", p.location)
	w.Append("registered", p.registered)
	w.Append("certified", p.certified)
	w.Optional("ratingTool", p.ratingTool)
	w.Append("rating", p.rating)
	return w.MarshalJSON()
}

// jproject is the json proxy of a Project.
type jproject struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	Registered string `json:"registered"`
	Certified  string `json:"certified"`
	RatingTool string `json:"ratingTool"`
	Rating     Rating `json:"rating"`
}

// UnmarshalJSON reads a project written by MarshalJSON.
func (p *Project) UnmarshalJSON(data []byte) error {
	var j jproject
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*p = NewProject(j.Name, j.Location, j.Registered, j.Certified, j.RatingTool, j.Rating)
	return nil
}
