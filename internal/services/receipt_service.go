package services

import (
	"context"
	"fmt"
	"time"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/metrics"
	"busexcursion/internal/pdfdoc"
	"busexcursion/internal/receipts"
	"busexcursion/internal/utils"
)

// LogoResolver turns an association logo source into a drawable image.
type LogoResolver interface {
	Fetch(ctx context.Context, src string) (*pdfdoc.Image, error)
}

// ReceiptFile is a rendered receipt PDF.
type ReceiptFile struct {
	Data     []byte
	Filename string
	Summary  receipts.Summary
}

type ReceiptService struct {
	Associations AssociationStore
	Excursions   ExcursionStore
	Passengers   PassengerStore
	Sequence     SequenceStore
	Logos        LogoResolver
	Engine       receipts.Engine
	Metrics      *metrics.Collector
	NewSurface   func(title string) pdfdoc.Surface
	RequestID    string
}

// PassengerReceipts renders one receipt per seated passenger, seat ascending.
func (s ReceiptService) PassengerReceipts(ctx context.Context, associationID, excursionID int64) (ReceiptFile, error) {
	e, err := s.Excursions.GetByID(ctx, associationID, excursionID)
	if err != nil {
		return ReceiptFile{}, err
	}
	ps, err := s.Passengers.ListByExcursion(ctx, excursionID)
	if err != nil {
		return ReceiptFile{}, err
	}
	if len(ps) == 0 {
		return ReceiptFile{}, domain.ValidationError{Field: "passengers", Msg: "belum ada penumpang"}
	}
	a, err := s.Associations.GetByID(ctx, associationID)
	if err != nil {
		return ReceiptFile{}, err
	}
	doc := receipts.Document{Association: a, Excursion: e, Logo: s.logo(ctx, a)}

	start := time.Now()
	surface := s.surface("Kwitansi " + e.Name)
	sum := s.engine().DrawPassengers(surface, doc, ps)
	out, err := surface.Output()
	if err != nil {
		return ReceiptFile{}, domain.InternalError{Msg: "gagal membuat PDF", Err: err}
	}
	s.Metrics.ObserveRender(time.Since(start).Seconds())
	s.Metrics.ObserveReceipts("passenger", sum.Receipts, sum.Pages)
	utils.LogEvent(s.RequestID, "receipts", "passenger_receipts",
		fmt.Sprintf("excursion_id=%d receipts=%d pages=%d", excursionID, sum.Receipts, sum.Pages))
	return ReceiptFile{Data: out, Filename: utils.SafeFilename("kwitansi", e.Name, "pdf"), Summary: sum}, nil
}

// BlankReceipts renders the bulk print of unfilled receipts for every seat of
// the largest bus. The sequence is read before drawing and advanced only after
// the PDF was produced. Two concurrent calls can read the same value.
func (s ReceiptService) BlankReceipts(ctx context.Context, associationID int64) (ReceiptFile, error) {
	a, err := s.Associations.GetByID(ctx, associationID)
	if err != nil {
		return ReceiptFile{}, err
	}
	seq, err := s.Sequence.Current(ctx)
	if err != nil {
		return ReceiptFile{}, err
	}
	doc := receipts.Document{Association: a, Logo: s.logo(ctx, a)}

	start := time.Now()
	surface := s.surface("Kwitansi Kosong " + a.Name)
	sum := s.engine().DrawBlank(surface, doc, seq)
	out, err := surface.Output()
	if err != nil {
		return ReceiptFile{}, domain.InternalError{Msg: "gagal membuat PDF", Err: err}
	}
	if err := s.Sequence.Save(ctx, sum.NextSequence); err != nil {
		return ReceiptFile{}, err
	}
	s.Metrics.ObserveRender(time.Since(start).Seconds())
	s.Metrics.ObserveReceipts("blank", sum.Receipts, sum.Pages)
	utils.LogEvent(s.RequestID, "receipts", "blank_receipts",
		fmt.Sprintf("association_id=%d from=%d to=%d", associationID, seq+1, sum.NextSequence))
	return ReceiptFile{Data: out, Filename: utils.SafeFilename("kwitansi-kosong", a.Name, "pdf"), Summary: sum}, nil
}

// logo degrades to no logo on any failure.
func (s ReceiptService) logo(ctx context.Context, a models.Association) *pdfdoc.Image {
	if s.Logos == nil || a.Logo == "" {
		return nil
	}
	img, err := s.Logos.Fetch(ctx, a.Logo)
	if err != nil {
		s.Metrics.ObserveLogoFailure()
		utils.LogEvent(s.RequestID, "receipts", "logo_fetch_failed", err.Error())
		return nil
	}
	return img
}

func (s ReceiptService) engine() receipts.Engine {
	if s.Engine.Geometry.ReceiptsPerPage == 0 {
		return receipts.NewEngine(receipts.DefaultGeometry())
	}
	return s.Engine
}

func (s ReceiptService) surface(title string) pdfdoc.Surface {
	if s.NewSurface != nil {
		return s.NewSurface(title)
	}
	return pdfdoc.NewPDF(title)
}
