package enums

import "fmt"

// PublicationStatus is the soft-delete axis for publications.
type PublicationStatus string

const (
	PublicationStatusActive   PublicationStatus = "active"
	PublicationStatusInactive PublicationStatus = "inactive"
)

var validPublicationStatuses = []PublicationStatus{
	PublicationStatusActive,
	PublicationStatusInactive,
}

// String implements fmt.Stringer.
func (p PublicationStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PublicationStatus.
func (p PublicationStatus) IsValid() bool {
	for _, candidate := range validPublicationStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePublicationStatus converts raw input into a PublicationStatus.
func ParsePublicationStatus(value string) (PublicationStatus, error) {
	for _, candidate := range validPublicationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid publication status %q", value)
}
