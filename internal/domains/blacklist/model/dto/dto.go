package dto

import (
	"time"

	"lodge/internal/domains/blacklist/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBlacklistEntryRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	Reason     string `json:"reason"      validate:"required,max=500"`
	ExpiresAt  string `json:"expires_at"  validate:"omitempty"`
}

func (c *CreateBlacklistEntryRequest) ParseExpiresAt() (*time.Time, error) {
	if c.ExpiresAt == constant.Empty {
		return nil, nil
	}

	expiresAt, err := timezone.Parse(constant.DateFormat, c.ExpiresAt)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	return &expiresAt, nil
}

func (c *CreateBlacklistEntryRequest) ToModel(user string, expiresAt *time.Time, now time.Time) model.BlacklistEntry {
	return model.BlacklistEntry{
		ID:         uuid.NewString(),
		CustomerID: c.CustomerID,
		Reason:     c.Reason,
		IssuedBy:   user,
		IssuedAt:   now,
		ExpiresAt:  expiresAt,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BlacklistEntryResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Reason     string `json:"reason"`
	IssuedBy   string `json:"issued_by"`
	IssuedAt   string `json:"issued_at"`
	ExpiresAt  string `json:"expires_at,omitempty"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *BlacklistEntryResponse) FromModel(model model.BlacklistEntry) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.Reason = model.Reason
	r.IssuedBy = model.IssuedBy
	r.IssuedAt = timezone.Format(model.IssuedAt, constant.DateFormat)
	r.Active = model.Active

	if model.ExpiresAt != nil {
		r.ExpiresAt = timezone.Format(*model.ExpiresAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBlacklistEntriesResponse struct {
	Entries   []BlacklistEntryResponse `json:"entries"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetBlacklistEntriesResponse) FromModels(models []model.BlacklistEntry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]BlacklistEntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}

type BlacklistStatusResponse struct {
	CustomerID  string `json:"customer_id"`
	Blacklisted bool   `json:"blacklisted"`
}
