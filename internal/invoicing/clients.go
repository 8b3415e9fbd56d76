package invoicing

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"fattureincloud-mcp/pkg/models"
)

// ListClients lists up to one page of clients, optionally filtered by name.
func (s *Service) ListClients(ctx context.Context, args ListClientsArgs) ([]models.ClientSummary, error) {
	records, err := s.api.ListClients(ctx, pageSize)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "elenco clienti")
	}

	filter := newTextFilter(args.Query)
	clients := make([]models.ClientSummary, 0, len(records))
	for _, c := range records {
		if !filter.Match(c.Name) {
			continue
		}
		clients = append(clients, models.ClientSummary{
			ID:      c.ID,
			Name:    c.Name,
			Vat:     c.VatNumber,
			TaxCode: c.TaxCode,
			Email:   c.Email,
		})
	}
	return clients, nil
}

// CompanyInfo returns the profile of the connected company.
func (s *Service) CompanyInfo(ctx context.Context, _ CompanyInfoArgs) (*models.CompanyInfo, error) {
	info, err := s.api.GetCompanyInfo(ctx)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "lettura dati azienda")
	}

	p := info.Profile()
	return &models.CompanyInfo{
		Name:     p.Name,
		Vat:      p.VatNumber,
		Email:    p.Email,
		Address:  p.AddressStreet,
		City:     p.AddressCity,
		Province: p.AddressProvince,
	}, nil
}
