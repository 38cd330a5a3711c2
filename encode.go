package greenstar

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
)

// gproject is the gob proxy of a Project. Gob only sees exported fields, and
// Project keeps its fields private.
type gproject struct {
	Name       string
	Location   string
	Registered string
	Certified  string
	RatingTool string
	Rating     int
	NA         bool
}

// gsnapshot is the top level value of a snapshot stream.
type gsnapshot struct {
	Projects []gproject
}

// EncodeProjects writes projects to w as a binary gob stream.
func EncodeProjects(w io.Writer, projects []Project) error {
	snap := gsnapshot{Projects: make([]gproject, 0, len(projects))}
	for _, p := range projects {
		snap.Projects = append(snap.Projects, gproject{
			Name:       p.name,
			Location:   p.location,
			Registered: p.registered,
			Certified:  p.certified,
			RatingTool: p.ratingTool,
			Rating:     p.rating.value,
			NA:         p.rating.na,
		})
	}
	if err := gob.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	return nil
}

// DecodeProjects reads a gob stream written by EncodeProjects.
//
// An empty stream is an error (io.EOF is wrapped), an empty list is not.
func DecodeProjects(r io.Reader) ([]Project, error) {
	var snap gsnapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding projects: %w", err)
	}
	projects := make([]Project, 0, len(snap.Projects))
	for _, g := range snap.Projects {
		if g.Rating < 0 {
			return nil, fmt.Errorf("decoding projects: project %q has a negative rating %d", g.Name, g.Rating)
		}
		rating := Rating{value: g.Rating}
		if g.NA {
			rating = NA
		}
		projects = append(projects, Project{
			name:       g.Name,
			location:   g.Location,
			registered: g.Registered,
			certified:  g.Certified,
			ratingTool: g.RatingTool,
			rating:     rating,
		})
	}
	return projects, nil
}

// EncodeJSONL writes projects to w, one JSON object per line.
func EncodeJSONL(w io.Writer, projects []Project) error {
	for _, p := range projects {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encoding project %q: %w", p.name, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// DecodeJSONL reads projects from a stream of JSONL data. Empty lines are
// skipped and each project is validated.
func DecodeJSONL(r io.Reader) ([]Project, error) {
	var projects []Project
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var p Project
		if err := json.Unmarshal(lineBytes, &p); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		projects = append(projects, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}
