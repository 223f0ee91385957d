package routeapi

import "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Societe  string `json:"societe"`
}

type packageDTO struct {
	InternalID         string `json:"internal_id"`
	Tracking           string `json:"tracking"`
	CustomerName       string `json:"customer_name"`
	PhoneNumber        string `json:"phone_number"`
	CustomerIndication string `json:"customer_indication"`
	Status             string `json:"status"`
	DeliveryType       string `json:"delivery_type"`
	IsProblematic      bool   `json:"is_problematic"`
	ModifiedByDriver   bool   `json:"modified_by_driver"`
}

type addressDTO struct {
	AddressID         string   `json:"address_id"`
	Label             string   `json:"label"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	DoorCode          string   `json:"door_code"`
	MailboxAccess     bool     `json:"mailbox_access"`
	DriverNotes       string   `json:"driver_notes"`
	PackageIDs        []string `json:"package_ids"`
	VisitOrder        int      `json:"visit_order"`
	CorrectedByDriver bool     `json:"corrected_by_driver"`
}

// Сервер отдает сессию списками, локальная модель держит map'ы.
type sessionDTO struct {
	SessionID   string       `json:"session_id"`
	Packages    []packageDTO `json:"packages"`
	Addresses   []addressDTO `json:"addresses"`
	IsOptimized bool         `json:"is_optimized"`
}

type createSessionResponse struct {
	Success   bool        `json:"success"`
	SessionID string      `json:"session_id,omitempty"`
	Session   *sessionDTO `json:"session,omitempty"`
	Error     string      `json:"error,omitempty"`
}

type fetchPackagesResponse struct {
	Success          bool        `json:"success"`
	Session          *sessionDTO `json:"session,omitempty"`
	NewPackagesCount int         `json:"new_packages_count,omitempty"`
	Error            string      `json:"error,omitempty"`
}

type scanRequest struct {
	SessionID string `json:"session_id"`
	Tracking  string `json:"tracking"`
}

type scanResponse struct {
	Found         bool        `json:"found"`
	Package       *packageDTO `json:"package,omitempty"`
	RoutePosition *int        `json:"route_position,omitempty"`
}

type syncRequest struct {
	SessionID string            `json:"session_id"`
	ClientID  string            `json:"client_id"`
	LastSync  int64             `json:"last_sync"`
	Changes   []entities.Change `json:"changes"`
}

type syncResponse struct {
	Success           bool        `json:"success"`
	Session           *sessionDTO `json:"session,omitempty"`
	ConflictsResolved int         `json:"conflicts_resolved"`
	ChangesApplied    int         `json:"changes_applied"`
	Error             string      `json:"error,omitempty"`
}
