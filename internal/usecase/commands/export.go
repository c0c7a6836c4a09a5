package commands

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"strconv"
	"time"

	"lead-exchange/internal/pkg/csvsafe"
	"lead-exchange/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExportForbidden = errs.New("sale does not belong to requesting client")
	ErrEmptyExport     = errs.New("export request contains no sales")
	ErrSaleNotFound    = errs.New("sale not found")
)

var exportHeader = []string{
	"sale_id", "lead_id", "age_bucket", "sold_at", "price_cents", "currency",
	"first_name", "last_name", "phone", "state", "county", "city", "zip",
	"classification", "lead_created_at",
}

type ExportCommands interface {
	// GenerateForSales renders the client's purchased leads as CSV. Every
	// requested sale must belong to the client; a single foreign sale fails
	// the whole export. Free-text lead fields are sanitized against formula
	// injection before encoding.
	GenerateForSales(ctx context.Context, clientID uuid.UUID, saleIDs []uuid.UUID) ([]byte, error)
}

type exportCommandsImpl struct {
	sales  SaleRepository
	leads  LeadRepository
	logger *slog.Logger
}

func NewExportCommands(sales SaleRepository, leads LeadRepository, logger *slog.Logger) ExportCommands {
	return &exportCommandsImpl{sales: sales, leads: leads, logger: logger}
}

func (c *exportCommandsImpl) GenerateForSales(ctx context.Context, clientID uuid.UUID, saleIDs []uuid.UUID) ([]byte, error) {
	if len(saleIDs) == 0 {
		return nil, ErrEmptyExport
	}

	sales, err := c.sales.FindByIDs(ctx, saleIDs)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load sales for export")
	}
	if len(sales) != len(saleIDs) {
		return nil, ErrSaleNotFound
	}

	for _, s := range sales {
		if s.ClientID() != clientID {
			c.logger.WarnContext(ctx, "export denied for foreign sale",
				"client_id", clientID, "sale_id", s.ID(), "owner_id", s.ClientID())
			return nil, ErrExportForbidden
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, errs.Wrap(err, "failed to write CSV header")
	}

	for _, s := range sales {
		l, err := c.leads.FindByID(ctx, s.LeadID())
		if err != nil {
			return nil, errs.Wrap(err, "failed to load lead for export")
		}

		row := []string{
			s.ID().String(),
			l.ID().String(),
			s.AgeBucket().String(),
			s.SoldAt().Format(time.RFC3339),
			strconv.FormatInt(s.PriceCents(), 10),
			s.Currency(),
			csvsafe.SanitizePtr(c.logger, "first_name", l.FirstName()),
			csvsafe.SanitizePtr(c.logger, "last_name", l.LastName()),
			csvsafe.SanitizePtr(c.logger, "phone", l.Phone()),
			csvsafe.Sanitize(c.logger, "state", l.State()),
			csvsafe.SanitizePtr(c.logger, "county", l.County()),
			csvsafe.SanitizePtr(c.logger, "city", l.City()),
			csvsafe.SanitizePtr(c.logger, "zip", l.Zip()),
			l.Classification().String(),
			l.CreatedAt().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, errs.Wrap(err, "failed to write CSV row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errs.Wrap(err, "failed to flush CSV")
	}
	return buf.Bytes(), nil
}
