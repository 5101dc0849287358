package domain

import "strings"

// DeliveryAddress holds the contact fields captured at checkout. One per
// order; mutable afterwards only by the owning customer or an admin.
type DeliveryAddress struct {
	fullName string
	phone    string
	address  string
}

// NewDeliveryAddress validates the three required contact fields.
func NewDeliveryAddress(fullName, phone, address string) (DeliveryAddress, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)

	if fullName == "" || phone == "" || address == "" {
		return DeliveryAddress{}, ErrMissingDeliveryField
	}

	return DeliveryAddress{
		fullName: fullName,
		phone:    phone,
		address:  address,
	}, nil
}

func (a DeliveryAddress) FullName() string { return a.fullName }
func (a DeliveryAddress) Phone() string    { return a.phone }
func (a DeliveryAddress) Address() string  { return a.address }
