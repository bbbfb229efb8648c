package reflow

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LoadProfiles parses the declarative profile list:
//
//	[
//	  {
//	    "name": "xl",
//	    "priority": 10,
//	    "condition": {"width": {"min": 1440}, "aspect": {"min": 1.4}},
//	    "canvas": {"width": 1440, "height": 810},
//	    "layers": {"hud": {"scale": 1.0, "visible": true}}
//	  },
//	  ...
//	]
//
// Unknown fields anywhere in the document are rejected: transform shapes
// are validated at load time, not silently accepted at apply time.
func LoadProfiles(jsonData []byte) ([]*Profile, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.DisallowUnknownFields()

	var raw []jsonProfile
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("reflow: failed to parse profiles: %w", err)
	}

	profiles := make([]*Profile, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, jp := range raw {
		if jp.Name == "" {
			return nil, fmt.Errorf("reflow: profile %d has no name", i)
		}
		if seen[jp.Name] {
			return nil, fmt.Errorf("reflow: duplicate profile name %q", jp.Name)
		}
		seen[jp.Name] = true
		p, err := jp.toProfile()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// LoadGroups parses the static group map: {"groupName": ["objectId", ...]}.
func LoadGroups(jsonData []byte) (GroupMap, error) {
	var groups GroupMap
	if err := json.Unmarshal(jsonData, &groups); err != nil {
		return nil, fmt.Errorf("reflow: failed to parse groups: %w", err)
	}
	for name, ids := range groups {
		for _, id := range ids {
			if id == "" {
				return nil, fmt.Errorf("reflow: group %q contains an empty object id", name)
			}
		}
	}
	return groups, nil
}

// --- JSON structure types ---

type jsonRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type jsonCondition struct {
	Width  *jsonRange `json:"width"`
	Height *jsonRange `json:"height"`
	Aspect *jsonRange `json:"aspect"`
	DPR    *jsonRange `json:"dpr"`
}

type jsonSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type jsonTransform struct {
	Scale        *float64 `json:"scale"`
	X            *float64 `json:"x"`
	Y            *float64 `json:"y"`
	Visible      *bool    `json:"visible"`
	MaxParticles *int     `json:"maxParticles"`
}

type jsonProfile struct {
	Name      string                   `json:"name"`
	Priority  int                      `json:"priority"`
	Condition jsonCondition            `json:"condition"`
	Canvas    *jsonSize                `json:"canvas"`
	Layers    map[string]jsonTransform `json:"layers"`
}

func (jp jsonProfile) toProfile() (*Profile, error) {
	p := &Profile{
		Name:     jp.Name,
		Priority: jp.Priority,
		Condition: Condition{
			Width:  toRange(jp.Condition.Width),
			Height: toRange(jp.Condition.Height),
			Aspect: toRange(jp.Condition.Aspect),
			DPR:    toRange(jp.Condition.DPR),
		},
	}
	for _, r := range []*Range{p.Condition.Width, p.Condition.Height, p.Condition.Aspect, p.Condition.DPR} {
		if r != nil && r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			return nil, fmt.Errorf("reflow: profile %q has an inverted range [%g, %g]", jp.Name, *r.Min, *r.Max)
		}
	}
	if jp.Canvas != nil {
		if jp.Canvas.Width <= 0 || jp.Canvas.Height <= 0 {
			return nil, fmt.Errorf("reflow: profile %q has a degenerate canvas %dx%d", jp.Name, jp.Canvas.Width, jp.Canvas.Height)
		}
		p.CanvasSize = &Size{Width: jp.Canvas.Width, Height: jp.Canvas.Height}
	}
	if len(jp.Layers) > 0 {
		p.Layers = make(map[string]Transform, len(jp.Layers))
		for name, jt := range jp.Layers {
			p.Layers[name] = Transform{
				Scale:        jt.Scale,
				X:            jt.X,
				Y:            jt.Y,
				Visible:      jt.Visible,
				MaxParticles: jt.MaxParticles,
			}
		}
	}
	return p, nil
}

func toRange(jr *jsonRange) *Range {
	if jr == nil {
		return nil
	}
	return &Range{Min: jr.Min, Max: jr.Max}
}
