package menu

import (
	"strings"

	"github.com/deppfellow/menu-api/internal/model"
	"github.com/deppfellow/menu-api/internal/validation"
)

const (
	MsgName        = "Name must be at least 3 characters long"
	MsgDescription = "Description must be at least 10 characters long"
	MsgPrice       = "Price must be greater than 0"
	MsgCategory    = "Category must be appetizer, entree, dessert, or beverage"
	MsgIngredients = "Ingredients must be an array with at least one item"
	MsgAvailable   = "Available must be true or false"
)

var categoryTag = func() string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return "oneof=" + strings.Join(names, " ")
}()

// ------------------------------------------------------------

// ListMenuItemsRequest carries no input; listing is unfiltered.
type ListMenuItemsRequest struct{}

func (r *ListMenuItemsRequest) Validate() error {
	return nil
}

// ------------------------------------------------------------

// MenuItemIDRequest addresses a single item through the :id path param.
//
// ID stays a string: a non-numeric id is a lookup miss (404), not a
// binding failure.
type MenuItemIDRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
}

func (r *MenuItemIDRequest) Validate() error {
	return validation.Struct(r)
}

// ------------------------------------------------------------

// MenuItemFields are the writable MenuItem attributes as they arrive on
// the wire. Each one tracks presence so create and update can apply
// different rules to the same shape.
type MenuItemFields struct {
	Name        model.Field[string]   `json:"name"`
	Description model.Field[string]   `json:"description"`
	Price       model.Field[float64]  `json:"price"`
	Category    model.Field[Category] `json:"category"`
	Ingredients model.Field[[]string] `json:"ingredients"`
	Available   model.Field[bool]     `json:"available"`
}

// fieldRules builds the six rules shared by create and update. When
// optional is true an absent field passes its rule; a present field must
// always satisfy the constraint.
func fieldRules(optional bool) []validation.Rule[*MenuItemFields] {
	check := func(set, valid bool, ok func() bool) bool {
		if !set {
			return optional
		}
		return valid && ok()
	}

	return []validation.Rule[*MenuItemFields]{
		{
			Field:   "name",
			Message: MsgName,
			Check: func(f *MenuItemFields) bool {
				return check(f.Name.Set, f.Name.Valid, func() bool {
					return validation.Var(f.Name.Value, "min=3")
				})
			},
		},
		{
			Field:   "description",
			Message: MsgDescription,
			Check: func(f *MenuItemFields) bool {
				return check(f.Description.Set, f.Description.Valid, func() bool {
					return validation.Var(f.Description.Value, "min=10")
				})
			},
		},
		{
			Field:   "price",
			Message: MsgPrice,
			Check: func(f *MenuItemFields) bool {
				return check(f.Price.Set, f.Price.Valid, func() bool {
					return validation.Var(f.Price.Value, "gt=0")
				})
			},
		},
		{
			Field:   "category",
			Message: MsgCategory,
			Check: func(f *MenuItemFields) bool {
				return check(f.Category.Set, f.Category.Valid, func() bool {
					return validation.Var(string(f.Category.Value), categoryTag)
				})
			},
		},
		{
			Field:   "ingredients",
			Message: MsgIngredients,
			Check: func(f *MenuItemFields) bool {
				return check(f.Ingredients.Set, f.Ingredients.Valid, func() bool {
					return validation.Var(f.Ingredients.Value, "min=1")
				})
			},
		},
		{
			Field:   "available",
			Message: MsgAvailable,
			Check: func(f *MenuItemFields) bool {
				// available is optional on create as well
				if !f.Available.Set {
					return true
				}
				return f.Available.Valid
			},
		},
	}
}

var (
	createRules = fieldRules(false)
	updateRules = fieldRules(true)
)

// ------------------------------------------------------------

// CreateMenuItemPayload is the POST /api/menu body.
type CreateMenuItemPayload struct {
	MenuItemFields
}

func (p *CreateMenuItemPayload) Validate() error {
	return validation.Run(&p.MenuItemFields, createRules)
}

// ToMenuItem builds the record stored for a validated payload.
// Fields are copied verbatim; an absent "available" stays absent.
func (p *CreateMenuItemPayload) ToMenuItem(id int) MenuItem {
	item := MenuItem{
		ID:          id,
		Name:        p.Name.Value,
		Description: p.Description.Value,
		Price:       p.Price.Value,
		Category:    p.Category.Value,
		Ingredients: append([]string(nil), p.Ingredients.Value...),
	}
	if p.Available.Present() {
		available := p.Available.Value
		item.Available = &available
	}
	return item
}

// ------------------------------------------------------------

// UpdateMenuItemPayload is the PUT /api/menu/:id body.
//
// Only the six writable fields are decoded. A client-supplied "id" or
// any unknown key is ignored, so an update can never re-key an item.
type UpdateMenuItemPayload struct {
	ID string `param:"id" json:"-"`
	MenuItemFields
}

func (p *UpdateMenuItemPayload) Validate() error {
	return validation.Run(&p.MenuItemFields, updateRules)
}

// ApplyTo overwrites the fields present in the payload onto item.
// Absent fields keep their previous values; ID is never touched.
func (p *UpdateMenuItemPayload) ApplyTo(item *MenuItem) {
	if p.Name.Present() {
		item.Name = p.Name.Value
	}
	if p.Description.Present() {
		item.Description = p.Description.Value
	}
	if p.Price.Present() {
		item.Price = p.Price.Value
	}
	if p.Category.Present() {
		item.Category = p.Category.Value
	}
	if p.Ingredients.Present() {
		item.Ingredients = append([]string(nil), p.Ingredients.Value...)
	}
	if p.Available.Present() {
		available := p.Available.Value
		item.Available = &available
	}
}
