package greenstar

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
)

// queryLanguage is JSONPath with the full gval operator set, so that filters
// can compare values (e.g. `$[?(@.rating >= 5)]`).
var queryLanguage = gval.Full(jsonpath.Language())

// Query evaluates a JSONPath expression against the JSON array of projects.
//
// Each project is seen with the same fields as its JSON form ("name",
// "location", "registered", "certified", "ratingTool", "rating").
func Query(projects []Project, path string) (any, error) {
	if projects == nil {
		projects = []Project{}
	}
	data, err := json.Marshal(projects)
	if err != nil {
		return nil, fmt.Errorf("encoding projects: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("decoding projects: %w", err)
	}
	jval, err := queryLanguage.Evaluate(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	return jval, nil
}
