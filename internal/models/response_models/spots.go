package response_models

// DefaultGrade is reported for records ingested without a grade.
const DefaultGrade = "Standard"

// TouristSpot keeps the knowledge-store field names so it can be embedded in
// prompts and returned to clients unchanged.
type TouristSpot struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"Name"`
	Type      string   `json:"Type,omitempty"`
	Address   string   `json:"Address,omitempty"`
	District  string   `json:"District,omitempty"`
	City      string   `json:"City,omitempty"`
	Province  string   `json:"Province,omitempty"`
	Grade     string   `json:"Grade"`
	ImageURLs []string `json:"image_urls"`
}

// SpotPromptEntry is the projection of a spot sent to the model. Addresses
// and image URLs stay out of the prompt.
type SpotPromptEntry struct {
	Name     string `json:"Name"`
	Type     string `json:"Type"`
	Grade    string `json:"Grade"`
	District string `json:"District"`
}

func (s TouristSpot) PromptEntry() SpotPromptEntry {
	return SpotPromptEntry{
		Name:     s.Name,
		Type:     s.Type,
		Grade:    s.Grade,
		District: s.District,
	}
}
