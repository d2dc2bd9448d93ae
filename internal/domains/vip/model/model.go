package model

import (
	"time"

	"lodge/shared/dto"
	"lodge/shared/model"
)

const (
	TableName  = "vip_memberships"
	EntityName = "vip_membership"

	FieldID              = "id"
	FieldCustomerID      = "customer_id"
	FieldLevel           = "level"
	FieldDiscountPercent = "discount_percent"
	FieldBenefits        = "benefits"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldActive          = "active"
)

// Level is the membership tier. Each tier carries a default discount
// percentage which may be overridden per membership.
type Level string

const (
	LevelGold     Level = "GOLD"
	LevelPlatinum Level = "PLATINUM"
	LevelDiamond  Level = "DIAMOND"
)

func (l Level) Valid() bool {
	switch l {
	case LevelGold, LevelPlatinum, LevelDiamond:
		return true
	}

	return false
}

// Rank orders the tiers so upgrades can be told apart from lateral or
// downward promotions.
func (l Level) Rank() int {
	switch l {
	case LevelGold:
		return 1
	case LevelPlatinum:
		return 2
	case LevelDiamond:
		return 3
	}

	return 0
}

// DefaultDiscountPercent returns the tier's standard discount.
func (l Level) DefaultDiscountPercent() int64 {
	switch l {
	case LevelPlatinum:
		return 15
	case LevelDiamond:
		return 20
	default:
		return 10
	}
}

// DefaultBenefits returns the tier's standard benefits text.
func (l Level) DefaultBenefits() string {
	switch l {
	case LevelPlatinum:
		return "Late checkout, room upgrades, 15% off all stays"
	case LevelDiamond:
		return "Guaranteed upgrades, complimentary breakfast, 20% off all stays"
	default:
		return "Priority booking, 10% off all stays"
	}
}

// VIPMembership records a customer's tier. At most one membership per
// customer may be active at a time; a nil EndDate means lifetime.
type VIPMembership struct {
	ID              string     `db:"id"`
	CustomerID      string     `db:"customer_id"`
	Level           Level      `db:"level"`
	DiscountPercent int64      `db:"discount_percent"`
	Benefits        string     `db:"benefits"`
	StartDate       time.Time  `db:"start_date"`
	EndDate         *time.Time `db:"end_date"`
	Active          bool       `db:"active"`
	model.Metadata
}

// Valid reports whether the membership is active and unexpired at the given
// instant.
func (m *VIPMembership) Valid(now time.Time) bool {
	if !m.Active {
		return false
	}

	return m.EndDate == nil || m.EndDate.After(now)
}

// ValidMembershipFilter matches the customer's currently valid membership.
func ValidMembershipFilter(customerID string, now time.Time) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    FieldCustomerID,
				Operator: dto.FilterOperatorEq,
				Value:    customerID,
				Table:    TableName,
			},
			dto.Filter{
				Field:    FieldActive,
				Operator: dto.FilterOperatorEq,
				Value:    true,
				Table:    TableName,
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						Field:    FieldEndDate,
						Operator: dto.FilterIsNull,
						Table:    TableName,
					},
					dto.Filter{
						Field:    FieldEndDate,
						Operator: dto.FilterOperatorGreater,
						Value:    now,
						Table:    TableName,
					},
				},
			},
		},
	}
}

// ActiveMembershipFilter matches every membership still flagged active,
// expired or not. The renewal sweep walks these.
func ActiveMembershipFilter() dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    FieldActive,
				Operator: dto.FilterOperatorEq,
				Value:    true,
				Table:    TableName,
			},
		},
	}
}
