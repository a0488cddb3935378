package shopify

//go:generate mockgen -source=session.go -destination=../../../tests/mock/shopify/session_mock.go -package=shopifymock

import (
	"context"

	"frame-pricing/internal/infra/repository"
	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/shared"
)

type SessionStore interface {
	Get(ctx context.Context, shop string) (*repository.ShopSession, error)
}

// SessionProvider resolves a shop to an admin client using its stored offline token.
type SessionProvider struct {
	store   SessionStore
	clients *ClientFactory
}

var _ shared.SessionProvider = (*SessionProvider)(nil)

func NewSessionProvider(store SessionStore, clients *ClientFactory) *SessionProvider {
	return &SessionProvider{store: store, clients: clients}
}

func (p *SessionProvider) ForShop(ctx context.Context, shop string) (*shared.Session, error) {
	if !ValidShopDomain(shop) {
		return nil, errs.Mark(errs.Newf("invalid shop domain %q", shop), errs.ErrUnauthorized)
	}
	s, err := p.store.Get(ctx, shop)
	if err != nil {
		return nil, err
	}
	return &shared.Session{
		Shop:  shop,
		Admin: p.clients.ForShop(shop, s.AccessToken),
	}, nil
}
