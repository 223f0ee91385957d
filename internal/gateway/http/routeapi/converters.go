package routeapi

import "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"

func toDomainSession(dto *sessionDTO) *entities.DeliverySession {
	if dto == nil {
		return nil
	}

	session := &entities.DeliverySession{
		SessionID:   dto.SessionID,
		Packages:    make(map[string]entities.Package, len(dto.Packages)),
		Addresses:   make(map[string]entities.Address, len(dto.Addresses)),
		IsOptimized: dto.IsOptimized,
	}

	for _, pkg := range dto.Packages {
		session.Packages[pkg.InternalID] = toDomainPackage(pkg)
	}
	for _, addr := range dto.Addresses {
		session.Addresses[addr.AddressID] = entities.Address{
			AddressID:         addr.AddressID,
			Label:             addr.Label,
			Latitude:          addr.Latitude,
			Longitude:         addr.Longitude,
			DoorCode:          addr.DoorCode,
			MailboxAccess:     addr.MailboxAccess,
			DriverNotes:       addr.DriverNotes,
			PackageIDs:        append([]string(nil), addr.PackageIDs...),
			VisitOrder:        addr.VisitOrder,
			CorrectedByDriver: addr.CorrectedByDriver,
		}
	}

	session.Stats = entities.NewSessionStats(session.Packages)
	return session
}

func toDomainPackage(dto packageDTO) entities.Package {
	return entities.Package{
		InternalID:         dto.InternalID,
		Tracking:           dto.Tracking,
		CustomerName:       dto.CustomerName,
		PhoneNumber:        dto.PhoneNumber,
		CustomerIndication: dto.CustomerIndication,
		Status:             entities.PackageStatusType(dto.Status),
		DeliveryType:       entities.DeliveryType(dto.DeliveryType),
		IsProblematic:      dto.IsProblematic,
		ModifiedByDriver:   dto.ModifiedByDriver,
	}
}

func toCredentialsRequest(creds entities.Credentials) credentialsRequest {
	return credentialsRequest{
		Username: creds.Username,
		Password: creds.Password,
		Societe:  creds.Societe,
	}
}
