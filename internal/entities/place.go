package entities

var placeAttrs = []string{"title", "description", "price", "latitude", "longitude"}

// Place represents a listed property. Amenities and Reviews hold ids only.
type Place struct {
	BaseModel
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"` // membership only
	Reviews     []string `json:"reviews"`   // creation order
}

// NewPlace validates fields and builds a Place. Amenity ids in fields are not read;
// attaching them is up to the caller, which can check they exist.
func NewPlace(fields Fields) (*Place, error) {
	title, err := ValidateTitle(fields["title"])
	if err != nil {
		return nil, err
	}
	description, err := ValidateDescription(fields["description"])
	if err != nil {
		return nil, err
	}
	price, err := ValidatePrice(fields["price"])
	if err != nil {
		return nil, err
	}
	latitude, err := ValidateLatitude(fields["latitude"])
	if err != nil {
		return nil, err
	}
	longitude, err := ValidateLongitude(fields["longitude"])
	if err != nil {
		return nil, err
	}
	ownerID, err := ValidateReference(fields["owner_id"], "owner_id", "Owner ID")
	if err != nil {
		return nil, err
	}

	return &Place{
		BaseModel:   newBaseModel(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		Amenities:   []string{},
		Reviews:     []string{},
	}, nil
}

// Update applies the scalar attributes in fields. owner_id, amenities and reviews
// are not writable here.
func (p *Place) Update(fields Fields) error {
	staged := *p
	for _, key := range placeAttrs {
		value, ok := fields[key]
		if !ok {
			continue
		}
		var err error
		switch key {
		case "title":
			staged.Title, err = ValidateTitle(value)
		case "description":
			staged.Description, err = ValidateDescription(value)
		case "price":
			staged.Price, err = ValidatePrice(value)
		case "latitude":
			staged.Latitude, err = ValidateLatitude(value)
		case "longitude":
			staged.Longitude, err = ValidateLongitude(value)
		}
		if err != nil {
			return err
		}
	}
	*p = staged
	p.Touch()
	return nil
}

// AddAmenity is idempotent
func (p *Place) AddAmenity(amenityID string) {
	if !contains(p.Amenities, amenityID) {
		p.Amenities = append(p.Amenities, amenityID)
	}
}

// ClearAmenities drops every amenity reference
func (p *Place) ClearAmenities() {
	p.Amenities = []string{}
}

// AddReview is idempotent
func (p *Place) AddReview(reviewID string) {
	if !contains(p.Reviews, reviewID) {
		p.Reviews = append(p.Reviews, reviewID)
	}
}

// RemoveReview is a no-op when reviewID is absent
func (p *Place) RemoveReview(reviewID string) {
	for i, id := range p.Reviews {
		if id == reviewID {
			p.Reviews = append(p.Reviews[:i:i], p.Reviews[i+1:]...)
			return
		}
	}
}

func (p *Place) Attr(name string) (interface{}, bool) {
	switch name {
	case "title":
		return p.Title, true
	case "description":
		return p.Description, true
	case "price":
		return p.Price, true
	case "latitude":
		return p.Latitude, true
	case "longitude":
		return p.Longitude, true
	case "owner_id":
		return p.OwnerID, true
	case "amenities":
		return append([]string{}, p.Amenities...), true
	case "reviews":
		return append([]string{}, p.Reviews...), true
	}
	return p.baseAttr(name)
}

// SetAttr assigns scalar attributes without validation
func (p *Place) SetAttr(name string, value interface{}) bool {
	switch name {
	case "title", "description", "owner_id":
		s, ok := value.(string)
		if !ok {
			return false
		}
		switch name {
		case "title":
			p.Title = s
		case "description":
			p.Description = s
		default:
			p.OwnerID = s
		}
		return true
	case "price", "latitude", "longitude":
		f, ok := toFloat(value)
		if !ok {
			return false
		}
		switch name {
		case "price":
			p.Price = f
		case "latitude":
			p.Latitude = f
		default:
			p.Longitude = f
		}
		return true
	}
	return false
}

func (p *Place) ToMap() map[string]interface{} {
	m := p.baseMap()
	m["title"] = p.Title
	m["description"] = p.Description
	m["price"] = p.Price
	m["latitude"] = p.Latitude
	m["longitude"] = p.Longitude
	m["owner_id"] = p.OwnerID
	m["amenities"] = append([]string{}, p.Amenities...)
	m["reviews"] = append([]string{}, p.Reviews...)
	return m
}

// Clone copies the place including its id slices
func (p *Place) Clone() *Place {
	c := *p
	c.Amenities = append([]string{}, p.Amenities...)
	c.Reviews = append([]string{}, p.Reviews...)
	return &c
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
