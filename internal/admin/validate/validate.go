// Package validate performs client-side form validation for the login,
// product and category forms. Failures block submission and are rendered
// inline per field; they never reach the backend.
package validate

import (
	"errors"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to its user-visible message.
type FieldErrors map[string]string

// Any reports whether at least one field failed.
func (f FieldErrors) Any() bool { return len(f) > 0 }

// LoginForm carries the login credentials.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// ProductForm carries the product create/update fields.
type ProductForm struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description" validate:"required"`
	Price       float64 `form:"price" validate:"required,gt=0"`
	Stock       int     `form:"stock" validate:"gte=0"`
	CategoryID  string  `form:"category_id" validate:"required"`
}

// CategoryForm carries the category create/update fields.
type CategoryForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description" validate:"required"`
}

var (
	once     sync.Once
	instance *validator.Validate
)

// v keys validation errors by the form field name so they can be rendered
// next to the inputs that produced them.
func v() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
		instance.RegisterTagNameFunc(func(field reflect.StructField) string {
			if name := field.Tag.Get("form"); name != "" {
				return name
			}
			return field.Name
		})
	})
	return instance
}

// Login validates the login form.
func Login(form LoginForm) FieldErrors {
	return collect(v().Struct(form))
}

// Product validates the product form.
func Product(form ProductForm) FieldErrors {
	return collect(v().Struct(form))
}

// Category validates the category form.
func Category(form CategoryForm) FieldErrors {
	return collect(v().Struct(form))
}

func collect(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": "Formulario no válido"}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe.Field(), fe.Tag())
	}
	return out
}

func message(field, tag string) string {
	switch field {
	case "username":
		return "El usuario es requerido"
	case "password":
		return "La contraseña es requerida"
	case "name":
		return "El nombre es requerido"
	case "description":
		return "La descripción es requerida"
	case "price":
		if tag == "gt" {
			return "El precio debe ser positivo"
		}
		return "El precio es requerido"
	case "stock":
		return "El stock no puede ser negativo"
	case "category_id":
		return "Debe seleccionar una categoría"
	}
	return "Campo no válido"
}
