package model

import "lodge/shared/model"

const (
	LineItemTableName  = "invoice_line_items"
	LineItemEntityName = "invoice_line_item"

	LineItemFieldID             = "id"
	LineItemFieldInvoiceID      = "invoice_id"
	LineItemFieldItemType       = "item_type"
	LineItemFieldDescription    = "description"
	LineItemFieldQuantity       = "quantity"
	LineItemFieldUnitPriceCents = "unit_price_cents"
	LineItemFieldLineTotalCents = "line_total_cents"
)

type LineItemType string

const (
	LineItemRoom        LineItemType = "ROOM"
	LineItemService     LineItemType = "SERVICE"
	LineItemTax         LineItemType = "TAX"
	LineItemDiscount    LineItemType = "DISCOUNT"
	LineItemExtraCharge LineItemType = "EXTRA_CHARGE"
)

// InvoiceLineItem is owned by its invoice; there is no back-pointer. DISCOUNT
// lines carry a negative total.
type InvoiceLineItem struct {
	ID             string       `db:"id"`
	InvoiceID      string       `db:"invoice_id"`
	ItemType       LineItemType `db:"item_type"`
	Description    string       `db:"description"`
	Quantity       int          `db:"quantity"`
	UnitPriceCents int64        `db:"unit_price_cents"`
	LineTotalCents int64        `db:"line_total_cents"`
	model.Metadata
}
