package models

import (
	"time"
)

// DefaultTitle is the title of a freshly started project
const DefaultTitle = "Untitled Project"

// Project is the whole editable document: a title and an ordered clip list.
// Insertion order is display order.
type Project struct {
	Title string `json:"title"`
	Clips []Clip `json:"clips"`
}

// NewProject creates the initial empty project
func NewProject() Project {
	return Project{
		Title: DefaultTitle,
		Clips: []Clip{},
	}
}

// Clone returns a copy that shares no clip storage with p
func (p Project) Clone() Project {
	clips := make([]Clip, len(p.Clips))
	copy(clips, p.Clips)
	return Project{
		Title: p.Title,
		Clips: clips,
	}
}

// TotalDuration sums the durations of all clips
func (p Project) TotalDuration() time.Duration {
	var total time.Duration
	for _, clip := range p.Clips {
		total += clip.Duration()
	}
	return total
}

// Count returns the number of clips of the given media type
func (p Project) Count(mediaType MediaType) int {
	n := 0
	for _, clip := range p.Clips {
		if clip.Type == mediaType {
			n++
		}
	}
	return n
}

// FindClip returns the first clip with the given ID
func (p Project) FindClip(id string) (Clip, bool) {
	for _, clip := range p.Clips {
		if clip.ID == id {
			return clip, true
		}
	}
	return Clip{}, false
}
