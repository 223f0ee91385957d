package entities

type ChangeType string

const (
	ChangePackageScanned   ChangeType = "package_scanned"
	ChangeAddressUpdated   ChangeType = "address_updated"
	ChangeOrderChanged     ChangeType = "order_changed"
	ChangePackageDelivered ChangeType = "package_delivered"
	ChangePackageFailed    ChangeType = "package_failed"
)

func (t ChangeType) String() string {
	return string(t)
}

// Change иммутабельная запись локальной мутации, которую должен узнать сервер.
// Создается только через конструкторы ниже; Type определяет значимые поля.
// Сервер дедуплицирует повторную доставку по паре tracking+timestamp.
type Change struct {
	Type      ChangeType        `json:"type"`
	Timestamp int64             `json:"timestamp"`
	Tracking  string            `json:"tracking,omitempty"`
	NewStatus PackageStatusType `json:"new_status,omitempty"`

	AddressID    string   `json:"address_id,omitempty"`
	NewLabel     string   `json:"new_label,omitempty"`
	NewLatitude  *float64 `json:"new_latitude,omitempty"`
	NewLongitude *float64 `json:"new_longitude,omitempty"`

	PackageInternalID string `json:"package_internal_id,omitempty"`
	OldPosition       *int   `json:"old_position,omitempty"`
	NewPosition       *int   `json:"new_position,omitempty"`

	DeliveryProof string `json:"delivery_proof,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

func NewPackageScannedChange(tracking string, timestamp int64, newStatus PackageStatusType) Change {
	return Change{
		Type:      ChangePackageScanned,
		Timestamp: timestamp,
		Tracking:  tracking,
		NewStatus: newStatus,
	}
}

func NewAddressUpdatedChange(addressID, newLabel string, lat, lng float64, timestamp int64) Change {
	return Change{
		Type:         ChangeAddressUpdated,
		Timestamp:    timestamp,
		AddressID:    addressID,
		NewLabel:     newLabel,
		NewLatitude:  &lat,
		NewLongitude: &lng,
	}
}

func NewOrderChangedChange(packageInternalID string, oldPosition, newPosition int, timestamp int64) Change {
	return Change{
		Type:              ChangeOrderChanged,
		Timestamp:         timestamp,
		PackageInternalID: packageInternalID,
		OldPosition:       &oldPosition,
		NewPosition:       &newPosition,
	}
}

func NewPackageDeliveredChange(tracking string, timestamp int64, deliveryProof string) Change {
	return Change{
		Type:          ChangePackageDelivered,
		Timestamp:     timestamp,
		Tracking:      tracking,
		NewStatus:     PackageDelivered,
		DeliveryProof: deliveryProof,
	}
}

func NewPackageFailedChange(tracking string, timestamp int64, reason string) Change {
	return Change{
		Type:      ChangePackageFailed,
		Timestamp: timestamp,
		Tracking:  tracking,
		NewStatus: PackageFailed,
		Reason:    reason,
	}
}
