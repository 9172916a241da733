package model

import "encoding/json"

const DefaultRating = 5

type Review struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Comment   string  `json:"comment"`
	Rating    float64 `json:"rating"`
	CreatedAt int64   `json:"createdAt"`
}

// Rating distinguishes an absent or non-numeric value from an explicit one,
// so the service can apply the default rating. No range clamping is applied.
type Rating struct {
	Value float64
	Set   bool
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	// JSON null leaves the target untouched on Unmarshal, which would read as
	// an explicit 0; treat it as absent instead.
	if string(data) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		// non-numeric rating is treated as absent
		return nil
	}

	r.Value = f
	r.Set = true
	return nil
}

type CreateReviewDTO struct {
	Name    string `json:"name" validate:"required"`
	Rating  Rating `json:"rating"`
	Comment string `json:"comment" validate:"required"`
}

type GetReviewsResponse = []Review
