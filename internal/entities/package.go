package entities

type Package struct {
	InternalID         string            `json:"internal_id"`
	Tracking           string            `json:"tracking"`
	CustomerName       string            `json:"customer_name"`
	PhoneNumber        string            `json:"phone_number"`
	CustomerIndication string            `json:"customer_indication,omitempty"`
	Status             PackageStatusType `json:"status"`
	DeliveryType       DeliveryType      `json:"delivery_type"`
	IsProblematic      bool              `json:"is_problematic"`
	ModifiedByDriver   bool              `json:"modified_by_driver"`
}

type PackageStatusType string

const (
	PackagePending   PackageStatusType = "pending"
	PackageScanned   PackageStatusType = "scanned"
	PackageDelivered PackageStatusType = "delivered"
	PackageFailed    PackageStatusType = "failed"
)

const DefaultPackageStatus = PackagePending

func (t PackageStatusType) String() string {
	return string(t)
}

type DeliveryType string

const (
	DeliveryHome        DeliveryType = "home"
	DeliveryRcs         DeliveryType = "rcs"
	DeliveryPickupPoint DeliveryType = "pickup_point"
)

func (t DeliveryType) String() string {
	return string(t)
}
