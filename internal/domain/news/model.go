package news

import "fmt"

// Article is an informational news item; it carries no derived behavior.
type Article struct {
	ID       int64
	Title    string
	Summary  string
	Date     string
	ImageURL string
	Author   string
}

func (a Article) Validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("article id must be greater than zero")
	}
	if a.Title == "" {
		return fmt.Errorf("article title is required")
	}

	return nil
}
