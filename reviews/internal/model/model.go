package model

import "encoding/json"

const (
	Reviewer1 = "Reviewer1"
	Reviewer2 = "Reviewer2"

	// NoStars marks a reviewer whose rating could not be obtained.
	NoStars = -1

	MinStars = 1
	MaxStars = 5

	RatingsUnavailable = "Ratings service is currently unavailable"
	HealthyStatus      = "Reviews is healthy"
)

type Health struct {
	Status string `json:"status"`
}

type ReviewRequest struct {
	ProductID int `param:"productId" validate:"min=0"`
}

// RatingsResult is what the ratings client hands back: either unavailable,
// or the stars it found per reviewer.
type RatingsResult struct {
	Available bool
	Stars     map[string]int
}

func Unavailable() RatingsResult {
	return RatingsResult{}
}

// StarsFor returns NoStars when the service was unavailable or the reviewer was not rated.
func (r RatingsResult) StarsFor(reviewer string) int {
	if !r.Available {
		return NoStars
	}
	stars, ok := r.Stars[reviewer]
	if !ok {
		return NoStars
	}
	return stars
}

// RatingsResponse is the body served by the ratings service. Only the
// ratings object is read, its values are decoded per reviewer.
type RatingsResponse struct {
	Ratings map[string]json.RawMessage `json:"ratings"`
}

// Stars returns the integer ratings of Reviewer1 and Reviewer2. A value that
// is not an integer is left out, so that reviewer alone reads as NoStars.
func (r RatingsResponse) Stars() map[string]int {
	stars := make(map[string]int, 2)
	for _, reviewer := range []string{Reviewer1, Reviewer2} {
		raw, ok := r.Ratings[reviewer]
		if !ok {
			continue
		}
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			continue
		}
		stars[reviewer] = n
	}
	return stars
}

type ReviewPayload struct {
	ID      string   `json:"id"`
	Reviews []Review `json:"reviews"`
}

type Review struct {
	Reviewer string  `json:"reviewer"`
	Text     string  `json:"text"`
	Rating   *Rating `json:"rating,omitempty"`
}

type Rating struct {
	Stars int    `json:"stars,omitempty"`
	Color string `json:"color,omitempty"`
	Error string `json:"error,omitempty"`
}
