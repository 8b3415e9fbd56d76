package invoicing

import (
	"context"
	"sort"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"fattureincloud-mcp/internal/fic"
	"fattureincloud-mcp/pkg/models"
)

// maxUpcoming bounds the unpaid installments listed in the summary.
const maxUpcoming = 10

// Situation computes the yearly summary: invoiced, collected and outstanding
// amounts from issued invoices, costs from received expenses, and the unpaid
// installments with the earliest due dates.
func (s *Service) Situation(ctx context.Context, args SituationArgs) (*models.Situation, error) {
	year := s.now().Year()
	if args.Year != nil {
		year = *args.Year
	}
	query := YearQuery(year)

	issued, err := s.api.ListIssuedDocuments(ctx, fic.ListParams{
		Type:     fic.DocumentTypeInvoice,
		Query:    query,
		PerPage:  pageSize,
		Fieldset: fic.FieldsetDetailed,
	})
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "elenco fatture emesse")
	}

	invoiced := decimal.Zero
	collected := decimal.Zero
	upcoming := make([]models.UpcomingPayment, 0)
	for i := range issued {
		doc := &issued[i]
		invoiced = invoiced.Add(doc.Total())
		for _, p := range doc.PaymentsList {
			switch p.Status.Known() {
			case fic.PaymentPaid:
				collected = collected.Add(p.Amount)
			case fic.PaymentNotPaid:
				upcoming = append(upcoming, models.UpcomingPayment{
					Number:  doc.Number,
					Client:  doc.EntityName(),
					Amount:  p.Amount,
					DueDate: p.DueDate,
				})
			}
		}
	}

	received, err := s.api.ListReceivedDocuments(ctx, fic.ListParams{
		Type:     fic.DocumentTypeExpense,
		Query:    query,
		PerPage:  pageSize,
		Fieldset: fic.FieldsetDetailed,
	})
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "elenco documenti ricevuti")
	}

	costs := decimal.Zero
	for i := range received {
		costs = costs.Add(received[i].Amount())
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate < upcoming[j].DueDate
	})
	if len(upcoming) > maxUpcoming {
		upcoming = upcoming[:maxUpcoming]
	}

	s.log.Debug().
		Int("year", year).
		Int("issued", len(issued)).
		Int("received", len(received)).
		Msg("Computed yearly situation")

	return &models.Situation{
		Year:        year,
		Invoiced:    round2(invoiced),
		Collected:   round2(collected),
		Outstanding: round2(invoiced.Sub(collected)),
		Costs:       round2(costs),
		GrossMargin: round2(invoiced.Sub(costs)),
		Upcoming:    upcoming,
	}, nil
}
