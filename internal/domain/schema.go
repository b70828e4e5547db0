package domain

// FormField describes one editable field for the admin UI: the name it is
// submitted under, its input type and the validation rules the UI should
// apply before submission. The same rules are enforced server-side, so the
// descriptors are advisory for UX only.
type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	MaxLen   int      `json:"max_len,omitempty"`
	Source   string   `json:"source,omitempty"` // endpoint supplying select options
	Rules    []string `json:"rules,omitempty"`
}

type FormSchema struct {
	Entity string      `json:"entity"`
	Fields []FormField `json:"fields"`
}

const nameMaxLen = 255

func ProvinceFormSchema() FormSchema {
	return FormSchema{
		Entity: "province",
		Fields: []FormField{
			{
				Name:     "name",
				Label:    "Name",
				Type:     "text",
				Required: true,
				MaxLen:   nameMaxLen,
				Rules:    []string{"required", "max=255", "unique"},
			},
		},
	}
}

func CityFormSchema() FormSchema {
	return FormSchema{
		Entity: "city",
		Fields: []FormField{
			{
				Name:     "province_id",
				Label:    "Province",
				Type:     "select",
				Required: true,
				Source:   "/api/v1/provinces",
				Rules:    []string{"required", "uuid"},
			},
			{
				Name:     "name",
				Label:    "Name",
				Type:     "text",
				Required: true,
				MaxLen:   nameMaxLen,
				Rules:    []string{"required", "max=255", "unique_in_province"},
			},
		},
	}
}
