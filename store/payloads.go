package store

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is the region used to parse phone numbers submitted
// without a country prefix.
var DefaultPhoneRegion = "ET"

// ContentPayload is the create/update body shared by banners, products,
// services, and the about page.
type ContentPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImgURL      string `json:"img_url"`
}

func (p ContentPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&p.Description, validation.Required, validation.Length(2, 2000)),
		validation.Field(&p.ImgURL, validation.Length(0, 1000)),
	)
}

type StaffPayload struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Facebook string `json:"facebook"`
	Telegram string `json:"telegram"`
	ImgURL   string `json:"img_url"`
}

func (p StaffPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&p.Position, validation.Required, validation.Length(2, 100)),
		validation.Field(&p.Facebook, validation.Length(0, 500)),
		validation.Field(&p.Telegram, validation.Length(0, 500)),
		validation.Field(&p.ImgURL, validation.Length(0, 1000)),
	)
}

type MessagePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (p MessagePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(3, 100)),
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Phone, validation.Required, validation.Length(9, 20)),
		validation.Field(&p.Message, validation.Required, validation.Length(5, 500)),
	)
}

type InfoPayload struct {
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`
}

func (p InfoPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Location, validation.Required, validation.Length(3, 200)),
		validation.Field(&p.PhoneNumber, validation.Required, validation.By(validPhoneNumber)),
	)
}

func validPhoneNumber(value any) error {
	raw, _ := value.(string)
	num, err := phonenumbers.Parse(raw, DefaultPhoneRegion)
	if err != nil {
		return err
	}
	if !phonenumbers.IsValidNumber(num) {
		return errors.New("must be a valid phone number")
	}
	return nil
}

// The Apply helpers copy a payload onto a record so the create and
// update paths share one field mapping.

func (p ContentPayload) ApplyBanner(r *Banner) {
	r.Title = p.Title
	r.Description = p.Description
	r.ImgURL = p.ImgURL
}

func (p ContentPayload) ApplyProduct(r *Product) {
	r.Title = p.Title
	r.Description = p.Description
	r.ImgURL = p.ImgURL
}

func (p ContentPayload) ApplyService(r *Service) {
	r.Title = p.Title
	r.Description = p.Description
	r.ImgURL = p.ImgURL
}

func (p ContentPayload) ApplyAboutUs(r *AboutUs) {
	r.Title = p.Title
	r.Description = p.Description
	r.ImgURL = p.ImgURL
}

func (p StaffPayload) Apply(r *Staff) {
	r.Name = p.Name
	r.Position = p.Position
	r.Facebook = p.Facebook
	r.Telegram = p.Telegram
	r.ImgURL = p.ImgURL
}

func (p MessagePayload) Apply(r *Message) {
	r.Name = p.Name
	r.Email = p.Email
	r.Phone = p.Phone
	r.Message = p.Message
}

func (p InfoPayload) Apply(r *Info) {
	r.Location = p.Location
	r.PhoneNumber = p.PhoneNumber
}
