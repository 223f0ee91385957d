package entities

type Address struct {
	AddressID         string   `json:"address_id"`
	Label             string   `json:"label"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	DoorCode          string   `json:"door_code,omitempty"`
	MailboxAccess     bool     `json:"mailbox_access"`
	DriverNotes       string   `json:"driver_notes,omitempty"`
	PackageIDs        []string `json:"package_ids"`
	VisitOrder        int      `json:"visit_order"`
	CorrectedByDriver bool     `json:"corrected_by_driver"`
}
