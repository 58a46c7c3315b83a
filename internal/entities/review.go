package entities

// Review is a rating left by a user on someone else's place
type Review struct {
	BaseModel
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

// NewReview validates fields and builds a Review. It does not check that
// the place or the user exist.
func NewReview(fields Fields) (*Review, error) {
	text, err := ValidateReviewText(fields["text"])
	if err != nil {
		return nil, err
	}
	rating, err := ValidateRating(fields["rating"])
	if err != nil {
		return nil, err
	}
	placeID, err := ValidateReference(fields["place_id"], "place_id", "Place ID")
	if err != nil {
		return nil, err
	}
	userID, err := ValidateReference(fields["user_id"], "user_id", "User ID")
	if err != nil {
		return nil, err
	}

	return &Review{
		BaseModel: newBaseModel(),
		Text:      text,
		Rating:    rating,
		PlaceID:   placeID,
		UserID:    userID,
	}, nil
}

// Update applies text and rating; place_id and user_id are fixed at creation
func (r *Review) Update(fields Fields) error {
	staged := *r
	if value, ok := fields["text"]; ok {
		text, err := ValidateReviewText(value)
		if err != nil {
			return err
		}
		staged.Text = text
	}
	if value, ok := fields["rating"]; ok {
		rating, err := ValidateRating(value)
		if err != nil {
			return err
		}
		staged.Rating = rating
	}
	*r = staged
	r.Touch()
	return nil
}

func (r *Review) Attr(name string) (interface{}, bool) {
	switch name {
	case "text":
		return r.Text, true
	case "rating":
		return r.Rating, true
	case "place_id":
		return r.PlaceID, true
	case "user_id":
		return r.UserID, true
	}
	return r.baseAttr(name)
}

func (r *Review) SetAttr(name string, value interface{}) bool {
	switch name {
	case "text", "place_id", "user_id":
		s, ok := value.(string)
		if !ok {
			return false
		}
		switch name {
		case "text":
			r.Text = s
		case "place_id":
			r.PlaceID = s
		default:
			r.UserID = s
		}
		return true
	case "rating":
		i, ok := toInt(value)
		if ok {
			r.Rating = i
		}
		return ok
	}
	return false
}

func (r *Review) ToMap() map[string]interface{} {
	m := r.baseMap()
	m["text"] = r.Text
	m["rating"] = r.Rating
	m["place_id"] = r.PlaceID
	m["user_id"] = r.UserID
	return m
}

// Clone returns an independent copy
func (r *Review) Clone() *Review {
	c := *r
	return &c
}
