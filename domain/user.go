package domain

// User roles within a hotel.
const (
	RoleGuest        = "guest"
	RoleReceptionist = "receptionist"
)

// User is the stored record of an application user. PushToken is empty
// when the user never registered a device or logged out of it.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	PushToken string `json:"pushToken,omitempty"`
}
