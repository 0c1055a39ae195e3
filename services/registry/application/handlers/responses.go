package handlers

import (
	"time"

	"github.com/google/uuid"

	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
	"github.com/ghuser/giftregistry/services/registry/domain/models"
)

// UserResponse is the caller's resolved identity.
type UserResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	DisplayName string    `json:"displayName" example:"Ada Lovelace"`
	Email       string    `json:"email"       example:"ada@example.com"`
} // @name UserResponse

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, DisplayName: u.DisplayName, Email: u.Email}
}

// InventoryResponse describes one inventory.
type InventoryResponse struct {
	ID        uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	OwnerID   uuid.UUID `json:"ownerId"   example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name"      example:"Grandma's house"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
} // @name InventoryResponse

func toInventoryResponse(inv *models.Inventory) InventoryResponse {
	return InventoryResponse{ID: inv.ID, OwnerID: inv.OwnerID, Name: inv.Name, CreatedAt: inv.CreatedAt}
}

// InventoryDetailResponse is an inventory with the caller's permissions.
type InventoryDetailResponse struct {
	InventoryResponse
	IsOwner    bool                `json:"isOwner"`
	Role       models.Role         `json:"role,omitempty"   example:"CLAIMANT"`
	Status     models.MemberStatus `json:"status,omitempty" example:"ACTIVE"`
	CanClaim   bool                `json:"canClaim"`
	CanManage  bool                `json:"canManage"`
	IsFinished bool                `json:"isFinished"`
} // @name InventoryDetailResponse

func toInventoryDetail(v *appsvcs.InventoryView) InventoryDetailResponse {
	out := InventoryDetailResponse{
		InventoryResponse: toInventoryResponse(v.Inventory),
		IsOwner:           v.Access.IsOwner,
		CanClaim:          v.Access.CanClaim(),
		CanManage:         v.Access.CanManage(),
		IsFinished:        v.Access.IsFinished(),
	}
	if m := v.Access.Member; m != nil {
		out.Role = m.Role
		out.Status = m.Status
	}
	return out
}

// CategoryResponse describes one category.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	InventoryID uuid.UUID `json:"inventoryId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name"        example:"Kitchen"`
	CreatedAt   time.Time `json:"createdAt"   example:"2024-01-15T10:30:00Z"`
} // @name CategoryResponse

func toCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, InventoryID: c.InventoryID, Name: c.Name, CreatedAt: c.CreatedAt}
}

// ItemResponse describes one item. MyClaimStatus is the caller's own claim
// status and is omitted when the caller has not claimed the item.
type ItemResponse struct {
	ID              uuid.UUID           `json:"id"                    example:"123e4567-e89b-12d3-a456-426614174000"`
	InventoryID     uuid.UUID           `json:"inventoryId"           example:"550e8400-e29b-41d4-a716-446655440000"`
	CategoryID      *uuid.UUID          `json:"categoryId,omitempty"`
	ReferenceNumber int                 `json:"referenceNumber"       example:"12"`
	Description     string              `json:"description"           example:"Blue teapot"`
	IsDeleted       bool                `json:"isDeleted"`
	IsCollected     bool                `json:"isCollected"`
	ClaimCount      int                 `json:"claimCount"            example:"2"`
	MyClaimID       *uuid.UUID          `json:"myClaimId,omitempty"`
	MyClaimStatus   *models.ClaimStatus `json:"myClaimStatus,omitempty" example:"INTERESTED"`
	CreatedAt       time.Time           `json:"createdAt"             example:"2024-01-15T10:30:00Z"`
	UpdatedAt       time.Time           `json:"updatedAt"             example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:              item.ID,
		InventoryID:     item.InventoryID,
		CategoryID:      item.CategoryID,
		ReferenceNumber: item.ReferenceNumber,
		Description:     item.Description,
		IsDeleted:       item.IsDeleted,
		IsCollected:     item.IsCollected,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func toItemViewResponse(v *appsvcs.ItemView) ItemResponse {
	out := toItemResponse(v.Item)
	out.ClaimCount = v.ClaimCount
	if v.MyClaim != nil {
		id, status := v.MyClaim.ID, v.MyClaim.Status
		out.MyClaimID = &id
		out.MyClaimStatus = &status
	}
	return out
}

// ClaimResponse describes one claim. UserName is only filled in on lists.
type ClaimResponse struct {
	ID        uuid.UUID          `json:"id"                 example:"123e4567-e89b-12d3-a456-426614174000"`
	ItemID    uuid.UUID          `json:"itemId"             example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    uuid.UUID          `json:"userId"             example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	UserName  string             `json:"userName,omitempty" example:"Ada Lovelace"`
	Status    models.ClaimStatus `json:"status"             example:"INTERESTED"`
	CreatedAt time.Time          `json:"createdAt"          example:"2024-01-15T10:30:00Z"`
} // @name ClaimResponse

func toClaimResponse(c *models.Claim) ClaimResponse {
	return ClaimResponse{ID: c.ID, ItemID: c.ItemID, UserID: c.UserID, Status: c.Status, CreatedAt: c.CreatedAt}
}

// MemberResponse describes one membership.
type MemberResponse struct {
	ID          uuid.UUID           `json:"id"                   example:"123e4567-e89b-12d3-a456-426614174000"`
	InventoryID uuid.UUID           `json:"inventoryId"          example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID      uuid.UUID           `json:"userId"               example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	UserName    string              `json:"userName,omitempty"   example:"Ada Lovelace"`
	Email       string              `json:"email,omitempty"      example:"ada@example.com"`
	Role        models.Role         `json:"role"                 example:"CLAIMANT"`
	Status      models.MemberStatus `json:"status"               example:"PENDING"`
	IsFinished  bool                `json:"isFinished"`
	FinishedAt  *time.Time          `json:"finishedAt,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"            example:"2024-01-15T10:30:00Z"`
} // @name MemberResponse

func toMemberResponse(m *models.Member) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		UserID:      m.UserID,
		Role:        m.Role,
		Status:      m.Status,
		IsFinished:  m.IsFinished(),
		FinishedAt:  m.FinishedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func toMemberViewResponse(v *appsvcs.MemberView) MemberResponse {
	out := toMemberResponse(v.Member)
	out.UserName = v.DisplayName
	out.Email = v.Email
	return out
}

// InvitationResponse describes one invitation. Token is only returned to
// the manager who issued it, so the link can be passed on.
type InvitationResponse struct {
	ID            uuid.UUID   `json:"id"              example:"123e4567-e89b-12d3-a456-426614174000"`
	InventoryID   uuid.UUID   `json:"inventoryId"     example:"550e8400-e29b-41d4-a716-446655440000"`
	InventoryName string      `json:"inventoryName"   example:"Grandma's house"`
	Email         string      `json:"email,omitempty" example:"ada@example.com"`
	Role          models.Role `json:"role"            example:"CLAIMANT"`
	Token         string      `json:"token,omitempty"`
	InvitedByName string      `json:"invitedByName"   example:"Olive Owner"`
	ExpiresAt     time.Time   `json:"expiresAt"       example:"2024-01-22T10:30:00Z"`
	CreatedAt     time.Time   `json:"createdAt"       example:"2024-01-15T10:30:00Z"`
	IsExpired     bool        `json:"isExpired"`
	IsAccepted    bool        `json:"isAccepted"`
} // @name InvitationResponse

func toInvitationResponse(v *appsvcs.InvitationView, now time.Time) InvitationResponse {
	return InvitationResponse{
		ID:            v.ID,
		InventoryID:   v.InventoryID,
		InventoryName: v.InventoryName,
		Email:         v.Email,
		Role:          v.Role,
		InvitedByName: v.InvitedByName,
		ExpiresAt:     v.ExpiresAt,
		CreatedAt:     v.CreatedAt,
		IsExpired:     v.IsExpired(now),
		IsAccepted:    v.IsAccepted(),
	}
}
