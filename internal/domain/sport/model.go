package sport

import (
	"fmt"
	"strings"
)

// DefaultSelected is the sport selected before the viewer picks one.
const DefaultSelected = "basketball"

// Sport is a catalog entry the viewer can select.
type Sport struct {
	ID          int64
	Name        string
	ImageURL    string
	Description string
}

func (s Sport) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("sport id must be greater than zero")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("sport name is required")
	}

	return nil
}

// Key is the normalized identifier used for selection and team lookup.
func (s Sport) Key() string {
	return NormalizeKey(s.Name)
}

func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Find returns the sport whose name matches name case-insensitively.
func Find(items []Sport, name string) (Sport, bool) {
	key := NormalizeKey(name)
	if key == "" {
		return Sport{}, false
	}
	for _, item := range items {
		if item.Key() == key {
			return item, true
		}
	}

	return Sport{}, false
}
