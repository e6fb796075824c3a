package financial

import (
	domain "tender-crm-backend/internal/domain/financial"
	"tender-crm-backend/internal/domain/tender"
)

const (
	emdRefundPending = "Pending"
	pbgActive        = "Active"
)

// SlotFor resolves the tender slot a request type projects into.
// Other has no slot.
func SlotFor(t domain.Type) (tender.Slot, bool) {
	switch t {
	case domain.TypeEMD:
		return tender.SlotEMD, true
	case domain.TypePBG:
		return tender.SlotPBG, true
	case domain.TypeOther:
		return "", false
	}
	return tender.SlotSD, true
}

// Project replaces the slot's record with the request amount plus the instrument
// fields, then applies the slot default. The instrument's own amount is ignored.
func Project(t *tender.Tender, slot tender.Slot, fr *domain.Request) {
	rec := tender.FinancialRecord{Amount: fr.Amount}
	if in := fr.InstrumentDetails; in != nil {
		rec.Mode = in.Mode
		rec.ProcessedDate = in.ProcessedDate
		rec.ExpiryDate = in.ExpiryDate
		rec.IssuingBank = in.IssuingBank
		rec.DocumentURL = in.DocumentURL
	}
	switch slot {
	case tender.SlotEMD:
		rec.RefundStatus = emdRefundPending
	case tender.SlotPBG:
		rec.Status = pbgActive
	}
	*t.Record(slot) = rec
}
