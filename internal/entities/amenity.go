package entities

// Amenity is a named feature a place can offer
type Amenity struct {
	BaseModel
	Name string `json:"name"`
}

// NewAmenity validates fields and builds an Amenity
func NewAmenity(fields Fields) (*Amenity, error) {
	name, err := ValidateAmenityName(fields["name"])
	if err != nil {
		return nil, err
	}
	return &Amenity{
		BaseModel: newBaseModel(),
		Name:      name,
	}, nil
}

// Update applies the name, if present, and refreshes UpdatedAt
func (a *Amenity) Update(fields Fields) error {
	if value, ok := fields["name"]; ok {
		name, err := ValidateAmenityName(value)
		if err != nil {
			return err
		}
		a.Name = name
	}
	a.Touch()
	return nil
}

func (a *Amenity) Attr(name string) (interface{}, bool) {
	if name == "name" {
		return a.Name, true
	}
	return a.baseAttr(name)
}

func (a *Amenity) SetAttr(name string, value interface{}) bool {
	if name != "name" {
		return false
	}
	s, ok := value.(string)
	if ok {
		a.Name = s
	}
	return ok
}

func (a *Amenity) ToMap() map[string]interface{} {
	m := a.baseMap()
	m["name"] = a.Name
	return m
}

// Clone returns an independent copy
func (a *Amenity) Clone() *Amenity {
	c := *a
	return &c
}
