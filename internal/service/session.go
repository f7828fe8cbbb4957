package service

import (
	"context"

	"github.com/Beka01247/dormeats/internal/domain"
)

const (
	HomeAdminDashboard    = "admin_dashboard"
	HomeSellerHome        = "seller_home"
	HomeStoreRegistration = "store_registration"
)

type Session struct {
	UserID      string             `json:"userId"`
	Role        string             `json:"role"`
	Home        string             `json:"home"`
	StoreID     string             `json:"storeId,omitempty"`
	StoreStatus domain.StoreStatus `json:"storeStatus,omitempty"`
}

type SessionService struct {
	stores *StoreService
}

func NewSessionService(stores *StoreService) *SessionService {
	return &SessionService{stores: stores}
}

// Resolve decides which screen a signed-in user lands on.
func (s *SessionService) Resolve(ctx context.Context, actor Actor, role string) (*Session, error) {
	session := &Session{UserID: actor.UserID, Role: role}

	if actor.Admin {
		session.Home = HomeAdminDashboard
		return session, nil
	}

	store, status, err := s.stores.GetForOwner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	session.StoreStatus = status
	if store == nil {
		session.Home = HomeStoreRegistration
		return session, nil
	}

	session.StoreID = store.ID.Hex()
	session.Home = HomeSellerHome

	return session, nil
}
